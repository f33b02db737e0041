package fleet

import (
	"context"
	"fmt"
	"time"

	logrus "github.com/sirupsen/logrus"

	"fleetflow/internal/models"
)

// Engine coordinates trip and maintenance lifecycles over the Store. Every
// transition that touches more than one entity runs inside a single store
// transaction, so a crash or a concurrent reader never observes a midpoint.
type Engine struct {
	store Store
	log   *logrus.Logger
	now   func() time.Time
}

func NewEngine(store Store, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{store: store, log: log, now: time.Now}
}

// CreateTripInput carries the fields for trip creation and Draft edits.
type CreateTripInput struct {
	VehicleID   uint
	DriverID    uint
	Origin      string
	Destination string
	CargoWeight float64
	CargoDesc   string
}

// TripResult is a trip plus any non-blocking warnings raised on the way.
type TripResult struct {
	Trip *models.Trip `json:"trip"`
	// LicenseExpired warns that the assigned driver's license has lapsed.
	// Assignment still goes through; suspension is the only hard block.
	LicenseExpired bool `json:"license_expired"`
}

// TransitionExtra carries optional data accompanying a status transition.
type TransitionExtra struct {
	// FinalOdometer, when set on a Completed/Cancelled transition,
	// overwrites the vehicle's odometer.
	FinalOdometer *float64
}

// CreateTrip validates resources and cargo, then inserts a Draft trip.
// A Draft reserves nothing: vehicle and driver statuses are untouched.
func (e *Engine) CreateTrip(ctx context.Context, p Principal, in CreateTripInput) (*TripResult, error) {
	var res *TripResult
	err := e.store.Transaction(ctx, func(tx Store) error {
		vehicle, err := tx.GetVehicle(ctx, in.VehicleID)
		if err != nil {
			return fmt.Errorf("vehicle %d: %w", in.VehicleID, err)
		}
		if vehicle.Status != models.VehicleAvailable {
			return fmt.Errorf("%w: vehicle %d is %s", ErrVehicleUnavailable, vehicle.ID, vehicle.Status)
		}
		driver, err := tx.GetDriver(ctx, in.DriverID)
		if err != nil {
			return fmt.Errorf("driver %d: %w", in.DriverID, err)
		}
		if driver.Status == models.DriverSuspended {
			return fmt.Errorf("%w: driver %d", ErrDriverSuspended, driver.ID)
		}
		if err := ValidateCapacity(in.CargoWeight, vehicle.MaxCapacity); err != nil {
			return err
		}

		trip := &models.Trip{
			VehicleID:   in.VehicleID,
			DriverID:    in.DriverID,
			Origin:      in.Origin,
			Destination: in.Destination,
			CargoWeight: in.CargoWeight,
			CargoDesc:   in.CargoDesc,
			Status:      models.TripDraft,
		}
		if err := tx.InsertTrip(ctx, trip); err != nil {
			return err
		}
		res = &TripResult{Trip: trip, LicenseExpired: driver.LicenseExpired(e.now())}
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"trip_id": res.Trip.ID,
		"user":    p.Name,
	}).Info("trip created")
	return res, nil
}

// EditTrip updates a trip's assignment and cargo. Only Draft trips are
// editable; anything past Draft is owned by the lifecycle engine.
func (e *Engine) EditTrip(ctx context.Context, p Principal, tripID uint, in CreateTripInput) (*TripResult, error) {
	var res *TripResult
	err := e.store.Transaction(ctx, func(tx Store) error {
		trip, err := tx.GetTrip(ctx, tripID)
		if err != nil {
			return fmt.Errorf("trip %d: %w", tripID, err)
		}
		if trip.Status != models.TripDraft {
			return fmt.Errorf("%w: only Draft trips are editable, trip %d is %s", ErrInvalidTransition, trip.ID, trip.Status)
		}
		vehicle, err := tx.GetVehicle(ctx, in.VehicleID)
		if err != nil {
			return fmt.Errorf("vehicle %d: %w", in.VehicleID, err)
		}
		driver, err := tx.GetDriver(ctx, in.DriverID)
		if err != nil {
			return fmt.Errorf("driver %d: %w", in.DriverID, err)
		}
		if driver.Status == models.DriverSuspended {
			return fmt.Errorf("%w: driver %d", ErrDriverSuspended, driver.ID)
		}
		if err := ValidateCapacity(in.CargoWeight, vehicle.MaxCapacity); err != nil {
			return err
		}

		trip.VehicleID = in.VehicleID
		trip.DriverID = in.DriverID
		trip.Origin = in.Origin
		trip.Destination = in.Destination
		trip.CargoWeight = in.CargoWeight
		trip.CargoDesc = in.CargoDesc
		if err := tx.UpdateTrip(ctx, trip); err != nil {
			return err
		}
		res = &TripResult{Trip: trip, LicenseExpired: driver.LicenseExpired(e.now())}
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"trip_id": tripID,
		"user":    p.Name,
	}).Info("trip updated")
	return res, nil
}

// TransitionTrip moves a trip to target and applies the resource side
// effects in the same transaction. The trip is re-read inside the
// transaction and checked against the legal-transition table, so a
// concurrent duplicate transition fails with ErrInvalidTransition instead
// of double-applying side effects.
func (e *Engine) TransitionTrip(ctx context.Context, p Principal, tripID uint, target models.TripStatus, extra TransitionExtra) (*models.Trip, error) {
	var result *models.Trip
	err := e.store.Transaction(ctx, func(tx Store) error {
		trip, err := tx.GetTrip(ctx, tripID)
		if err != nil {
			return fmt.Errorf("trip %d: %w", tripID, err)
		}
		from := trip.Status
		if !CanTransition(from, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, target)
		}

		switch target {
		case models.TripDispatched:
			if err := tx.SetVehicleStatus(ctx, trip.VehicleID, models.VehicleOnTrip); err != nil {
				return err
			}
			if err := tx.SetDriverStatus(ctx, trip.DriverID, models.DriverOnDuty); err != nil {
				return err
			}

		case models.TripCompleted, models.TripCancelled:
			// A Draft never reserved its resources, so releasing them only
			// applies when the trip actually left Dispatched.
			if from == models.TripDispatched {
				if err := e.applyFinalOdometer(ctx, tx, trip.VehicleID, extra.FinalOdometer); err != nil {
					return err
				}
				if err := tx.SetVehicleStatus(ctx, trip.VehicleID, models.VehicleAvailable); err != nil {
					return err
				}
				if err := tx.SetDriverStatus(ctx, trip.DriverID, models.DriverOnDuty); err != nil {
					return err
				}
				if target == models.TripCompleted {
					if err := tx.IncrementDriverTrips(ctx, trip.DriverID); err != nil {
						return err
					}
				}
			}
		}

		if err := tx.SetTripStatus(ctx, trip.ID, target); err != nil {
			return err
		}
		trip.Status = target
		result = trip
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"trip_id": tripID,
		"status":  target,
		"user":    p.Name,
	}).Info("trip transitioned")
	return result, nil
}

// applyFinalOdometer is the odometer update policy for trip close-out.
// Current policy: unconditional overwrite, backward jumps logged but not
// rejected. Kept separate from the state machine so it can be tightened
// without touching transition logic.
func (e *Engine) applyFinalOdometer(ctx context.Context, tx Store, vehicleID uint, final *float64) error {
	if final == nil {
		return nil
	}
	vehicle, err := tx.GetVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}
	if *final < vehicle.Odometer {
		e.log.WithFields(logrus.Fields{
			"vehicle_id": vehicleID,
			"previous":   vehicle.Odometer,
			"reported":   *final,
		}).Warn("odometer moved backwards")
	}
	return tx.SetVehicleOdometer(ctx, vehicleID, *final)
}
