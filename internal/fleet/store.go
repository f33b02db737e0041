package fleet

import (
	"context"
	"time"

	"fleetflow/internal/models"
)

// FuelAggregate is the per-vehicle rollup of all fuel logs, joined with the
// vehicle's own odometer. Max/Min are nil when no log carried a reading.
type FuelAggregate struct {
	VehicleID       uint
	VehicleName     string
	LicensePlate    string
	CurrentOdometer float64
	TotalLiters     float64
	TotalCost       float64
	MaxOdometer     *float64
	MinOdometer     *float64
	LogCount        int64
}

// CostTotal is the combined fuel + maintenance spend for one vehicle.
type CostTotal struct {
	VehicleID    uint
	VehicleName  string
	LicensePlate string
	FuelCost     float64
	MaintCost    float64
}

// MonthlyFuel is the fuel spend for one calendar month, keyed "YYYY-MM".
type MonthlyFuel struct {
	Month string
	Cost  float64
}

// DriverStanding is one row of the completed-trip leaderboard.
type DriverStanding struct {
	Name           string
	TripsCompleted uint
	SafetyScore    float64
}

// Store is the persistence surface the core consumes. Implementations must
// guarantee that all writes made inside Transaction commit together or not
// at all; the engine relies on that for every multi-entity transition.
// Missing records surface as ErrNotFound, everything else as ErrStorage.
type Store interface {
	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)
	SetVehicleStatus(ctx context.Context, id uint, status models.VehicleStatus) error
	// CompareAndSetVehicleStatus writes status only when the current value
	// matches expect, reporting whether the write happened.
	CompareAndSetVehicleStatus(ctx context.Context, id uint, expect, status models.VehicleStatus) (bool, error)
	SetVehicleOdometer(ctx context.Context, id uint, value float64) error

	GetDriver(ctx context.Context, id uint) (*models.Driver, error)
	SetDriverStatus(ctx context.Context, id uint, status models.DriverStatus) error
	IncrementDriverTrips(ctx context.Context, id uint) error

	GetTrip(ctx context.Context, id uint) (*models.Trip, error)
	InsertTrip(ctx context.Context, trip *models.Trip) error
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	SetTripStatus(ctx context.Context, id uint, status models.TripStatus) error

	GetMaintenanceLog(ctx context.Context, id uint) (*models.MaintenanceLog, error)
	InsertMaintenanceLog(ctx context.Context, log *models.MaintenanceLog) error
	CompleteMaintenanceLog(ctx context.Context, id uint, completed time.Time) error

	// Analytics reads.
	FuelAggregates(ctx context.Context) ([]FuelAggregate, error)
	CostTotals(ctx context.Context) ([]CostTotal, error)
	TripStatusCounts(ctx context.Context) (map[models.TripStatus]int64, error)
	MonthlyFuelCosts(ctx context.Context, months int) ([]MonthlyFuel, error)
	DriverStandings(ctx context.Context) ([]DriverStanding, error)

	// Dashboard reads.
	CountVehiclesByStatus(ctx context.Context, status models.VehicleStatus) (int64, error)
	CountVehiclesInService(ctx context.Context) (int64, error)
	CountDriversByStatus(ctx context.Context, status models.DriverStatus) (int64, error)
	RecentTrips(ctx context.Context, limit int) ([]models.Trip, error)
	DriversWithExpiringLicense(ctx context.Context, within time.Duration) ([]models.Driver, error)

	// Transaction runs fn against a store whose writes commit as one unit.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
