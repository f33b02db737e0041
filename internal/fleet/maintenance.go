package fleet

import (
	"context"
	"fmt"

	logrus "github.com/sirupsen/logrus"

	"fleetflow/internal/models"
)

// OpenMaintenance inserts an Open log and force-sets the vehicle to
// In Shop, whatever its prior status. Safety overrides availability: a
// vehicle flagged for service comes off the road even if a trip holds it.
func (e *Engine) OpenMaintenance(ctx context.Context, p Principal, log *models.MaintenanceLog) (*models.MaintenanceLog, error) {
	err := e.store.Transaction(ctx, func(tx Store) error {
		if _, err := tx.GetVehicle(ctx, log.VehicleID); err != nil {
			return fmt.Errorf("vehicle %d: %w", log.VehicleID, err)
		}
		log.Status = models.MaintOpen
		if err := tx.InsertMaintenanceLog(ctx, log); err != nil {
			return err
		}
		return tx.SetVehicleStatus(ctx, log.VehicleID, models.VehicleInShop)
	})
	if err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"log_id":     log.ID,
		"vehicle_id": log.VehicleID,
		"user":       p.Name,
	}).Info("maintenance opened, vehicle in shop")
	return log, nil
}

// CompleteMaintenance closes the log and restores the vehicle to Available
// only when it is still In Shop. The conditional write guards against a
// status that changed underneath for unrelated reasons, e.g. the vehicle
// was put Out of Service while in the shop.
func (e *Engine) CompleteMaintenance(ctx context.Context, p Principal, logID uint) (*models.MaintenanceLog, error) {
	var result *models.MaintenanceLog
	err := e.store.Transaction(ctx, func(tx Store) error {
		log, err := tx.GetMaintenanceLog(ctx, logID)
		if err != nil {
			return fmt.Errorf("maintenance log %d: %w", logID, err)
		}
		if log.Status == models.MaintCompleted {
			return fmt.Errorf("%w: maintenance log %d is already completed", ErrInvalidTransition, logID)
		}
		completed := e.now()
		if err := tx.CompleteMaintenanceLog(ctx, logID, completed); err != nil {
			return err
		}
		if _, err := tx.CompareAndSetVehicleStatus(ctx, log.VehicleID, models.VehicleInShop, models.VehicleAvailable); err != nil {
			return err
		}
		log.Status = models.MaintCompleted
		log.CompletedDate = &completed
		result = log
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"log_id": logID,
		"user":   p.Name,
	}).Info("maintenance completed")
	return result, nil
}
