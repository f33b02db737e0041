package fleet_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

func ptr(f float64) *float64 { return &f }

func fuelLog(vehicleID uint, liters, cost float64, reading *float64, logged time.Time) models.FuelLog {
	return models.FuelLog{
		VehicleID:       vehicleID,
		Liters:          liters,
		Cost:            cost,
		OdometerReading: reading,
		LogDate:         logged,
	}
}

func fuelRow(t *testing.T, engine *fleet.Engine, vehicleID uint) fleet.VehicleEfficiency {
	t.Helper()
	report, err := engine.ComputeFleetAnalytics(context.Background())
	require.NoError(t, err)
	for _, row := range report.FuelData {
		if row.VehicleID == vehicleID {
			return row
		}
	}
	t.Fatalf("no fuel row for vehicle %d", vehicleID)
	return fleet.VehicleEfficiency{}
}

func TestEfficiencyFromOdometerSpread(t *testing.T) {
	engine, mem := newEngine()
	vid := seedVehicle(mem, models.VehicleAvailable, 1000, 9999)
	now := time.Now()
	mem.PutFuelLog(fuelLog(vid, 20, 3000, ptr(500), now))
	mem.PutFuelLog(fuelLog(vid, 30, 4500, ptr(1000), now))

	row := fuelRow(t, engine, vid)
	assert.Equal(t, 50.0, row.TotalLiters)
	assert.Equal(t, 500.0, row.KmDriven)
	require.NotNil(t, row.Efficiency)
	// the reading spread wins even though the lifetime odometer is larger
	assert.Equal(t, 10.0, *row.Efficiency)
}

func TestEfficiencyNoLitersMeansNoData(t *testing.T) {
	engine, mem := newEngine()
	vid := seedVehicle(mem, models.VehicleAvailable, 1000, 5000)
	mem.PutFuelLog(fuelLog(vid, 0, 0, ptr(500), time.Now()))

	row := fuelRow(t, engine, vid)
	assert.Zero(t, row.KmDriven)
	assert.Nil(t, row.Efficiency)
}

func TestEfficiencyFallsBackToVehicleOdometer(t *testing.T) {
	engine, mem := newEngine()
	vid := seedVehicle(mem, models.VehicleAvailable, 1000, 300)
	mem.PutFuelLog(fuelLog(vid, 20, 2800, nil, time.Now()))

	row := fuelRow(t, engine, vid)
	assert.Equal(t, 300.0, row.KmDriven)
	require.NotNil(t, row.Efficiency)
	assert.Equal(t, 15.0, *row.Efficiency)
}

func TestEfficiencyCurrentMinusMinReading(t *testing.T) {
	engine, mem := newEngine()
	// a single reading gives no spread, so distance is current minus min
	vid := seedVehicle(mem, models.VehicleAvailable, 1000, 300)
	mem.PutFuelLog(fuelLog(vid, 25, 3500, ptr(100), time.Now()))

	row := fuelRow(t, engine, vid)
	assert.Equal(t, 200.0, row.KmDriven)
	require.NotNil(t, row.Efficiency)
	assert.Equal(t, 8.0, *row.Efficiency)
}

func TestEfficiencyNoDistanceAtAll(t *testing.T) {
	engine, mem := newEngine()
	vid := seedVehicle(mem, models.VehicleAvailable, 1000, 0)
	mem.PutFuelLog(fuelLog(vid, 40, 5200, nil, time.Now()))

	row := fuelRow(t, engine, vid)
	assert.Equal(t, 40.0, row.TotalLiters)
	assert.Zero(t, row.KmDriven)
	assert.Nil(t, row.Efficiency)
}

func TestEfficiencyRounding(t *testing.T) {
	engine, mem := newEngine()
	vid := seedVehicle(mem, models.VehicleAvailable, 1000, 0)
	mem.PutFuelLog(fuelLog(vid, 30, 4000, ptr(100), time.Now()))
	mem.PutFuelLog(fuelLog(vid, 0, 0, ptr(200), time.Now()))

	row := fuelRow(t, engine, vid)
	assert.Equal(t, 100.0, row.KmDriven)
	require.NotNil(t, row.Efficiency)
	assert.Equal(t, 3.33, *row.Efficiency)
}

func TestCostRollup(t *testing.T) {
	ctx := context.Background()
	engine, mem := newEngine()
	vid := seedVehicle(mem, models.VehicleAvailable, 1000, 0)
	mem.PutFuelLog(fuelLog(vid, 20, 3000, nil, time.Now()))
	mem.PutFuelLog(fuelLog(vid, 10, 1500, nil, time.Now()))
	_, err := engine.OpenMaintenance(ctx, manager, serviceLog(vid, 2500))
	require.NoError(t, err)

	report, err := engine.ComputeFleetAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, report.CostData, 1)
	assert.Equal(t, 4500.0, report.CostData[0].FuelCost)
	assert.Equal(t, 2500.0, report.CostData[0].MaintCost)
	assert.Equal(t, 7000.0, report.CostData[0].TotalCost)
}

func TestTripStatusCounts(t *testing.T) {
	ctx := context.Background()
	engine, mem := newEngine()
	vid := seedVehicle(mem, models.VehicleAvailable, 1000, 0)
	did := seedDriver(mem, models.DriverOnDuty, time.Now().AddDate(1, 0, 0))
	mem.PutTrip(models.Trip{VehicleID: vid, DriverID: did, Status: models.TripDraft})
	mem.PutTrip(models.Trip{VehicleID: vid, DriverID: did, Status: models.TripDraft})
	mem.PutTrip(models.Trip{VehicleID: vid, DriverID: did, Status: models.TripCompleted})

	report, err := engine.ComputeFleetAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.TripStats[models.TripDraft])
	assert.Equal(t, int64(1), report.TripStats[models.TripCompleted])
	assert.Zero(t, report.TripStats[models.TripDispatched])
}

func TestMonthlyFuelNewestFirst(t *testing.T) {
	ctx := context.Background()
	engine, mem := newEngine()
	vid := seedVehicle(mem, models.VehicleAvailable, 1000, 0)
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mem.PutFuelLog(fuelLog(vid, 10, 1000, nil, jan))
	mem.PutFuelLog(fuelLog(vid, 10, 1200, nil, feb))
	mem.PutFuelLog(fuelLog(vid, 10, 800, nil, jan))

	report, err := engine.ComputeFleetAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, report.MonthlyFuel, 2)
	assert.Equal(t, "2026-02", report.MonthlyFuel[0].Month)
	assert.Equal(t, 1200.0, report.MonthlyFuel[0].Cost)
	assert.Equal(t, "2026-01", report.MonthlyFuel[1].Month)
	assert.Equal(t, 1800.0, report.MonthlyFuel[1].Cost)
}

func TestDriverStandingsByTripsCompleted(t *testing.T) {
	ctx := context.Background()
	engine, mem := newEngine()
	mem.PutDriver(models.Driver{Name: "Amina", TripsCompleted: 3, SafetyScore: 95})
	mem.PutDriver(models.Driver{Name: "Brian", TripsCompleted: 9, SafetyScore: 88})
	mem.PutDriver(models.Driver{Name: "Carol", TripsCompleted: 6, SafetyScore: 100})

	report, err := engine.ComputeFleetAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, report.DriverPerf, 3)
	assert.Equal(t, "Brian", report.DriverPerf[0].Name)
	assert.Equal(t, "Carol", report.DriverPerf[1].Name)
	assert.Equal(t, "Amina", report.DriverPerf[2].Name)
}

func TestDashboardUtilization(t *testing.T) {
	ctx := context.Background()
	engine, mem := newEngine()
	seedVehicle(mem, models.VehicleOnTrip, 1000, 0)
	seedVehicle(mem, models.VehicleAvailable, 1000, 0)
	// retired vehicles do not count toward the in-service denominator
	seedVehicle(mem, models.VehicleOutOfService, 1000, 0)
	did := seedDriver(mem, models.DriverOnDuty, time.Now().AddDate(1, 0, 0))
	mem.PutTrip(models.Trip{VehicleID: 1, DriverID: did, Status: models.TripDraft})

	stats, err := engine.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ActiveFleet)
	assert.Equal(t, int64(1), stats.AvailableVehicles)
	assert.Equal(t, 50.0, stats.Utilization)
	assert.Equal(t, int64(1), stats.PendingCargo)
	assert.Equal(t, int64(1), stats.OnDutyDrivers)
}

func TestDashboardEmptyFleet(t *testing.T) {
	ctx := context.Background()
	engine, _ := newEngine()

	stats, err := engine.Dashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Utilization)
	assert.Empty(t, stats.RecentTrips)
}

func TestDashboardLicenseAlertWindow(t *testing.T) {
	ctx := context.Background()
	engine, mem := newEngine()
	now := time.Now()
	soon := mem.PutDriver(models.Driver{Name: "Soon", LicenseExpiry: now.Add(10 * 24 * time.Hour)})
	mem.PutDriver(models.Driver{Name: "Lapsed", LicenseExpiry: now.Add(-24 * time.Hour)})
	mem.PutDriver(models.Driver{Name: "Far", LicenseExpiry: now.Add(90 * 24 * time.Hour)})

	stats, err := engine.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, stats.LicenseAlerts, 1)
	assert.Equal(t, soon, stats.LicenseAlerts[0].ID)
}

func TestAnalyticsPropagatesStorageErrors(t *testing.T) {
	ctx := context.Background()
	engine, mem := newEngine()
	mem.FailOn("FuelAggregates", fleet.ErrStorage)

	_, err := engine.ComputeFleetAnalytics(ctx)
	assert.ErrorIs(t, err, fleet.ErrStorage)
}
