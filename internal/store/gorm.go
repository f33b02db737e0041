// Package store provides the persistence backends behind fleet.Store: a
// gorm/Postgres implementation for the server and an in-memory double for
// tests.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

// Gorm implements fleet.Store on a *gorm.DB. Transaction scopes a child
// Gorm to the transaction handle, so every nested write commits as one
// unit or not at all.
type Gorm struct {
	db *gorm.DB
}

var _ fleet.Store = (*Gorm)(nil)

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// wrap maps driver errors into the core taxonomy.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fleet.ErrNotFound
	}
	return fmt.Errorf("%w: %v", fleet.ErrStorage, err)
}

func (s *Gorm) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &v, nil
}

func (s *Gorm) SetVehicleStatus(ctx context.Context, id uint, status models.VehicleStatus) error {
	return s.updateOne(ctx, &models.Vehicle{}, id, map[string]interface{}{"status": status})
}

func (s *Gorm) CompareAndSetVehicleStatus(ctx context.Context, id uint, expect, status models.VehicleStatus) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("id = ? AND status = ?", id, expect).
		Update("status", status)
	if res.Error != nil {
		return false, wrap(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *Gorm) SetVehicleOdometer(ctx context.Context, id uint, value float64) error {
	return s.updateOne(ctx, &models.Vehicle{}, id, map[string]interface{}{"odometer": value})
}

func (s *Gorm) GetDriver(ctx context.Context, id uint) (*models.Driver, error) {
	var d models.Driver
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &d, nil
}

func (s *Gorm) SetDriverStatus(ctx context.Context, id uint, status models.DriverStatus) error {
	return s.updateOne(ctx, &models.Driver{}, id, map[string]interface{}{"status": status})
}

func (s *Gorm) IncrementDriverTrips(ctx context.Context, id uint) error {
	return s.updateOne(ctx, &models.Driver{}, id, map[string]interface{}{
		"trips_completed": gorm.Expr("trips_completed + 1"),
	})
}

func (s *Gorm) GetTrip(ctx context.Context, id uint) (*models.Trip, error) {
	var t models.Trip
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &t, nil
}

func (s *Gorm) InsertTrip(ctx context.Context, trip *models.Trip) error {
	return wrap(s.db.WithContext(ctx).Create(trip).Error)
}

func (s *Gorm) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	return wrap(s.db.WithContext(ctx).Save(trip).Error)
}

func (s *Gorm) SetTripStatus(ctx context.Context, id uint, status models.TripStatus) error {
	return s.updateOne(ctx, &models.Trip{}, id, map[string]interface{}{"status": status})
}

func (s *Gorm) GetMaintenanceLog(ctx context.Context, id uint) (*models.MaintenanceLog, error) {
	var m models.MaintenanceLog
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &m, nil
}

func (s *Gorm) InsertMaintenanceLog(ctx context.Context, log *models.MaintenanceLog) error {
	return wrap(s.db.WithContext(ctx).Create(log).Error)
}

func (s *Gorm) CompleteMaintenanceLog(ctx context.Context, id uint, completed time.Time) error {
	return s.updateOne(ctx, &models.MaintenanceLog{}, id, map[string]interface{}{
		"status":         models.MaintCompleted,
		"completed_date": completed,
	})
}

// updateOne applies column updates to a single row, surfacing a missing
// row as ErrNotFound rather than a silent zero-row update.
func (s *Gorm) updateOne(ctx context.Context, model interface{}, id uint, updates map[string]interface{}) error {
	res := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return fleet.ErrNotFound
	}
	return nil
}

func (s *Gorm) FuelAggregates(ctx context.Context) ([]fleet.FuelAggregate, error) {
	var rows []fleet.FuelAggregate
	err := s.db.WithContext(ctx).Raw(`
		SELECT f.vehicle_id,
		       v.name AS vehicle_name,
		       v.license_plate,
		       v.odometer AS current_odometer,
		       SUM(f.liters) AS total_liters,
		       SUM(f.cost) AS total_cost,
		       MAX(f.odometer_reading) AS max_odometer,
		       MIN(f.odometer_reading) AS min_odometer,
		       COUNT(f.id) AS log_count
		FROM fuel_logs f
		LEFT JOIN vehicles v ON f.vehicle_id = v.id
		WHERE f.deleted_at IS NULL
		GROUP BY f.vehicle_id, v.name, v.license_plate, v.odometer`).
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err)
	}
	return rows, nil
}

func (s *Gorm) CostTotals(ctx context.Context) ([]fleet.CostTotal, error) {
	var rows []fleet.CostTotal
	err := s.db.WithContext(ctx).Raw(`
		SELECT v.id AS vehicle_id,
		       v.name AS vehicle_name,
		       v.license_plate,
		       COALESCE((SELECT SUM(f.cost) FROM fuel_logs f
		                 WHERE f.vehicle_id = v.id AND f.deleted_at IS NULL), 0) AS fuel_cost,
		       COALESCE((SELECT SUM(m.cost) FROM maintenance_logs m
		                 WHERE m.vehicle_id = v.id AND m.deleted_at IS NULL), 0) AS maint_cost
		FROM vehicles v
		WHERE v.deleted_at IS NULL`).
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err)
	}
	return rows, nil
}

func (s *Gorm) TripStatusCounts(ctx context.Context) (map[models.TripStatus]int64, error) {
	var rows []struct {
		Status models.TripStatus
		Cnt    int64
	}
	err := s.db.WithContext(ctx).Model(&models.Trip{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err)
	}
	counts := make(map[models.TripStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Cnt
	}
	return counts, nil
}

func (s *Gorm) MonthlyFuelCosts(ctx context.Context, months int) ([]fleet.MonthlyFuel, error) {
	var rows []fleet.MonthlyFuel
	err := s.db.WithContext(ctx).Raw(`
		SELECT to_char(log_date, 'YYYY-MM') AS month, SUM(cost) AS cost
		FROM fuel_logs
		WHERE deleted_at IS NULL
		GROUP BY month
		ORDER BY month DESC
		LIMIT ?`, months).
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err)
	}
	return rows, nil
}

func (s *Gorm) DriverStandings(ctx context.Context) ([]fleet.DriverStanding, error) {
	var rows []fleet.DriverStanding
	err := s.db.WithContext(ctx).Model(&models.Driver{}).
		Select("name, trips_completed, safety_score").
		Order("trips_completed DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap(err)
	}
	return rows, nil
}

func (s *Gorm) CountVehiclesByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, wrap(err)
}

func (s *Gorm) CountVehiclesInService(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("status <> ?", models.VehicleOutOfService).
		Count(&n).Error
	return n, wrap(err)
}

func (s *Gorm) CountDriversByStatus(ctx context.Context, status models.DriverStatus) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Driver{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, wrap(err)
}

func (s *Gorm) RecentTrips(ctx context.Context, limit int) ([]models.Trip, error) {
	var trips []models.Trip
	err := s.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Driver").
		Order("created_at DESC").
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		return nil, wrap(err)
	}
	return trips, nil
}

func (s *Gorm) DriversWithExpiringLicense(ctx context.Context, within time.Duration) ([]models.Driver, error) {
	now := time.Now()
	var drivers []models.Driver
	err := s.db.WithContext(ctx).
		Where("license_expiry >= ? AND license_expiry <= ?", now, now.Add(within)).
		Find(&drivers).Error
	if err != nil {
		return nil, wrap(err)
	}
	return drivers, nil
}

func (s *Gorm) Transaction(ctx context.Context, fn func(tx fleet.Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Gorm{db: tx})
	})
	if err == nil {
		return nil
	}
	// Core errors pass through untouched; anything raised by the driver
	// itself (begin/commit included) is a transient storage failure.
	if errors.Is(err, fleet.ErrNotFound) || errors.Is(err, fleet.ErrStorage) || fleet.IsValidation(err) {
		return err
	}
	return fmt.Errorf("%w: %v", fleet.ErrStorage, err)
}
