package fleet

import (
	"context"
	"math"
	"sort"
	"time"

	"fleetflow/internal/models"
)

// VehicleEfficiency is one row of the fuel report. Efficiency is nil when
// no distance could be derived (the "no data" sentinel).
type VehicleEfficiency struct {
	VehicleID     uint     `json:"vehicle_id"`
	VehicleName   string   `json:"vehicle_name"`
	LicensePlate  string   `json:"license_plate"`
	TotalLiters   float64  `json:"total_liters"`
	TotalFuelCost float64  `json:"total_fuel_cost"`
	LogCount      int64    `json:"log_count"`
	KmDriven      float64  `json:"km_driven"`
	Efficiency    *float64 `json:"efficiency"` // km per liter
}

// VehicleCost is one row of the cost rollup.
type VehicleCost struct {
	VehicleID    uint    `json:"vehicle_id"`
	VehicleName  string  `json:"vehicle_name"`
	LicensePlate string  `json:"license_plate"`
	FuelCost     float64 `json:"fuel_cost"`
	MaintCost    float64 `json:"maint_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// FleetAnalytics is the full derived report, read-only over the store.
type FleetAnalytics struct {
	FuelData    []VehicleEfficiency         `json:"fuel_data"`
	CostData    []VehicleCost               `json:"cost_data"`
	TripStats   map[models.TripStatus]int64 `json:"trip_stats"`
	MonthlyFuel []MonthlyFuel               `json:"monthly_fuel"`
	DriverPerf  []DriverStanding            `json:"driver_perf"`
}

// deriveDistance resolves km driven from fuel log odometer readings,
// falling back to the vehicle's own odometer when readings are sparse.
// The branch order is load-bearing: a max/min spread always wins over any
// fallback, and the bare lifetime odometer is the coarsest last resort.
// Returns ok=false when no distance can be derived.
func deriveDistance(agg FuelAggregate) (km float64, ok bool) {
	maxOdo, minOdo := agg.MaxOdometer, agg.MinOdometer
	cur := agg.CurrentOdometer
	switch {
	case maxOdo != nil && minOdo != nil && *maxOdo > *minOdo:
		return *maxOdo - *minOdo, true
	case cur > 0 && minOdo != nil && cur > *minOdo:
		return cur - *minOdo, true
	case cur > 0:
		return cur, true
	}
	return 0, false
}

// efficiencyRow applies the fallback chain to one vehicle's aggregate.
func efficiencyRow(agg FuelAggregate) VehicleEfficiency {
	row := VehicleEfficiency{
		VehicleID:     agg.VehicleID,
		VehicleName:   agg.VehicleName,
		LicensePlate:  agg.LicensePlate,
		TotalLiters:   agg.TotalLiters,
		TotalFuelCost: agg.TotalCost,
		LogCount:      agg.LogCount,
	}
	if agg.TotalLiters <= 0 {
		return row
	}
	km, ok := deriveDistance(agg)
	if !ok {
		return row
	}
	row.KmDriven = math.Round(km*10) / 10
	eff := math.Round(km/agg.TotalLiters*100) / 100
	row.Efficiency = &eff
	return row
}

// ComputeFleetAnalytics derives the full analytics report. It only ever
// reads the store; no transaction is needed.
func (e *Engine) ComputeFleetAnalytics(ctx context.Context) (*FleetAnalytics, error) {
	aggs, err := e.store.FuelAggregates(ctx)
	if err != nil {
		return nil, err
	}
	fuel := make([]VehicleEfficiency, 0, len(aggs))
	for _, agg := range aggs {
		fuel = append(fuel, efficiencyRow(agg))
	}

	totals, err := e.store.CostTotals(ctx)
	if err != nil {
		return nil, err
	}
	costs := make([]VehicleCost, 0, len(totals))
	for _, t := range totals {
		costs = append(costs, VehicleCost{
			VehicleID:    t.VehicleID,
			VehicleName:  t.VehicleName,
			LicensePlate: t.LicensePlate,
			FuelCost:     t.FuelCost,
			MaintCost:    t.MaintCost,
			TotalCost:    t.FuelCost + t.MaintCost,
		})
	}

	tripStats, err := e.store.TripStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	monthly, err := e.store.MonthlyFuelCosts(ctx, 12)
	if err != nil {
		return nil, err
	}
	standings, err := e.store.DriverStandings(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TripsCompleted > standings[j].TripsCompleted
	})

	return &FleetAnalytics{
		FuelData:    fuel,
		CostData:    costs,
		TripStats:   tripStats,
		MonthlyFuel: monthly,
		DriverPerf:  standings,
	}, nil
}

// DashboardStats is the operational summary for the landing page.
type DashboardStats struct {
	ActiveFleet       int64           `json:"active_fleet"`
	MaintenanceAlerts int64           `json:"maintenance_alerts"`
	Utilization       float64         `json:"utilization"` // percent, 1 decimal
	PendingCargo      int64           `json:"pending_cargo"`
	AvailableVehicles int64           `json:"available_vehicles"`
	OnDutyDrivers     int64           `json:"on_duty_drivers"`
	RecentTrips       []models.Trip   `json:"recent_trips"`
	LicenseAlerts     []models.Driver `json:"license_alerts"`
}

// Dashboard assembles counters and alerts for the operations overview.
func (e *Engine) Dashboard(ctx context.Context) (*DashboardStats, error) {
	onTrip, err := e.store.CountVehiclesByStatus(ctx, models.VehicleOnTrip)
	if err != nil {
		return nil, err
	}
	inShop, err := e.store.CountVehiclesByStatus(ctx, models.VehicleInShop)
	if err != nil {
		return nil, err
	}
	inService, err := e.store.CountVehiclesInService(ctx)
	if err != nil {
		return nil, err
	}
	available, err := e.store.CountVehiclesByStatus(ctx, models.VehicleAvailable)
	if err != nil {
		return nil, err
	}
	tripCounts, err := e.store.TripStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	onDuty, err := e.store.CountDriversByStatus(ctx, models.DriverOnDuty)
	if err != nil {
		return nil, err
	}
	recent, err := e.store.RecentTrips(ctx, 5)
	if err != nil {
		return nil, err
	}
	alerts, err := e.store.DriversWithExpiringLicense(ctx, 30*24*time.Hour)
	if err != nil {
		return nil, err
	}

	utilization := 0.0
	if inService > 0 {
		utilization = math.Round(float64(onTrip)/float64(inService)*1000) / 10
	}
	return &DashboardStats{
		ActiveFleet:       onTrip,
		MaintenanceAlerts: inShop,
		Utilization:       utilization,
		PendingCargo:      tripCounts[models.TripDraft],
		AvailableVehicles: available,
		OnDutyDrivers:     onDuty,
		RecentTrips:       recent,
		LicenseAlerts:     alerts,
	}, nil
}
