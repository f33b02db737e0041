package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

// Memory is an in-memory fleet.Store for tests. Transaction snapshots the
// tables and restores them when fn fails, giving real all-or-nothing
// semantics without a database. It serializes transactions but does not
// otherwise lock: it is a single-goroutine test double, not a concurrent
// store.
type Memory struct {
	mu sync.Mutex

	vehicles    map[uint]models.Vehicle
	drivers     map[uint]models.Driver
	trips       map[uint]models.Trip
	maintenance map[uint]models.MaintenanceLog
	fuelLogs    []models.FuelLog
	nextID      uint

	// failOn forces failErr from the named operation, for exercising the
	// rollback path.
	failOn  string
	failErr error
}

var _ fleet.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		vehicles:    make(map[uint]models.Vehicle),
		drivers:     make(map[uint]models.Driver),
		trips:       make(map[uint]models.Trip),
		maintenance: make(map[uint]models.MaintenanceLog),
		nextID:      1,
	}
}

// FailOn makes the named store operation return err until cleared with
// FailOn("", nil).
func (m *Memory) FailOn(op string, err error) {
	m.failOn, m.failErr = op, err
}

func (m *Memory) fail(op string) error {
	if m.failOn == op {
		return m.failErr
	}
	return nil
}

func (m *Memory) id() uint {
	id := m.nextID
	m.nextID++
	return id
}

// Seed helpers for tests.

func (m *Memory) PutVehicle(v models.Vehicle) uint {
	if v.ID == 0 {
		v.ID = m.id()
	}
	m.vehicles[v.ID] = v
	return v.ID
}

func (m *Memory) PutDriver(d models.Driver) uint {
	if d.ID == 0 {
		d.ID = m.id()
	}
	m.drivers[d.ID] = d
	return d.ID
}

func (m *Memory) PutTrip(t models.Trip) uint {
	if t.ID == 0 {
		t.ID = m.id()
	}
	m.trips[t.ID] = t
	return t.ID
}

func (m *Memory) PutFuelLog(f models.FuelLog) {
	if f.ID == 0 {
		f.ID = m.id()
	}
	m.fuelLogs = append(m.fuelLogs, f)
}

func (m *Memory) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	v, ok := m.vehicles[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &v, nil
}

func (m *Memory) SetVehicleStatus(ctx context.Context, id uint, status models.VehicleStatus) error {
	if err := m.fail("SetVehicleStatus"); err != nil {
		return err
	}
	v, ok := m.vehicles[id]
	if !ok {
		return fleet.ErrNotFound
	}
	v.Status = status
	m.vehicles[id] = v
	return nil
}

func (m *Memory) CompareAndSetVehicleStatus(ctx context.Context, id uint, expect, status models.VehicleStatus) (bool, error) {
	if err := m.fail("CompareAndSetVehicleStatus"); err != nil {
		return false, err
	}
	v, ok := m.vehicles[id]
	if !ok || v.Status != expect {
		return false, nil
	}
	v.Status = status
	m.vehicles[id] = v
	return true, nil
}

func (m *Memory) SetVehicleOdometer(ctx context.Context, id uint, value float64) error {
	if err := m.fail("SetVehicleOdometer"); err != nil {
		return err
	}
	v, ok := m.vehicles[id]
	if !ok {
		return fleet.ErrNotFound
	}
	v.Odometer = value
	m.vehicles[id] = v
	return nil
}

func (m *Memory) GetDriver(ctx context.Context, id uint) (*models.Driver, error) {
	d, ok := m.drivers[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &d, nil
}

func (m *Memory) SetDriverStatus(ctx context.Context, id uint, status models.DriverStatus) error {
	if err := m.fail("SetDriverStatus"); err != nil {
		return err
	}
	d, ok := m.drivers[id]
	if !ok {
		return fleet.ErrNotFound
	}
	d.Status = status
	m.drivers[id] = d
	return nil
}

func (m *Memory) IncrementDriverTrips(ctx context.Context, id uint) error {
	if err := m.fail("IncrementDriverTrips"); err != nil {
		return err
	}
	d, ok := m.drivers[id]
	if !ok {
		return fleet.ErrNotFound
	}
	d.TripsCompleted++
	m.drivers[id] = d
	return nil
}

func (m *Memory) GetTrip(ctx context.Context, id uint) (*models.Trip, error) {
	t, ok := m.trips[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &t, nil
}

func (m *Memory) InsertTrip(ctx context.Context, trip *models.Trip) error {
	if err := m.fail("InsertTrip"); err != nil {
		return err
	}
	trip.ID = m.id()
	trip.CreatedAt = time.Now()
	m.trips[trip.ID] = *trip
	return nil
}

func (m *Memory) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	if err := m.fail("UpdateTrip"); err != nil {
		return err
	}
	if _, ok := m.trips[trip.ID]; !ok {
		return fleet.ErrNotFound
	}
	m.trips[trip.ID] = *trip
	return nil
}

func (m *Memory) SetTripStatus(ctx context.Context, id uint, status models.TripStatus) error {
	if err := m.fail("SetTripStatus"); err != nil {
		return err
	}
	t, ok := m.trips[id]
	if !ok {
		return fleet.ErrNotFound
	}
	t.Status = status
	m.trips[id] = t
	return nil
}

func (m *Memory) GetMaintenanceLog(ctx context.Context, id uint) (*models.MaintenanceLog, error) {
	l, ok := m.maintenance[id]
	if !ok {
		return nil, fleet.ErrNotFound
	}
	return &l, nil
}

func (m *Memory) InsertMaintenanceLog(ctx context.Context, log *models.MaintenanceLog) error {
	if err := m.fail("InsertMaintenanceLog"); err != nil {
		return err
	}
	log.ID = m.id()
	log.CreatedAt = time.Now()
	m.maintenance[log.ID] = *log
	return nil
}

func (m *Memory) CompleteMaintenanceLog(ctx context.Context, id uint, completed time.Time) error {
	if err := m.fail("CompleteMaintenanceLog"); err != nil {
		return err
	}
	l, ok := m.maintenance[id]
	if !ok {
		return fleet.ErrNotFound
	}
	l.Status = models.MaintCompleted
	l.CompletedDate = &completed
	m.maintenance[id] = l
	return nil
}

func (m *Memory) FuelAggregates(ctx context.Context) ([]fleet.FuelAggregate, error) {
	if err := m.fail("FuelAggregates"); err != nil {
		return nil, err
	}
	byVehicle := make(map[uint]*fleet.FuelAggregate)
	var order []uint
	for _, f := range m.fuelLogs {
		agg, ok := byVehicle[f.VehicleID]
		if !ok {
			agg = &fleet.FuelAggregate{VehicleID: f.VehicleID}
			if v, found := m.vehicles[f.VehicleID]; found {
				agg.VehicleName = v.Name
				agg.LicensePlate = v.LicensePlate
				agg.CurrentOdometer = v.Odometer
			}
			byVehicle[f.VehicleID] = agg
			order = append(order, f.VehicleID)
		}
		agg.TotalLiters += f.Liters
		agg.TotalCost += f.Cost
		agg.LogCount++
		if f.OdometerReading != nil {
			r := *f.OdometerReading
			if agg.MaxOdometer == nil || r > *agg.MaxOdometer {
				agg.MaxOdometer = &r
			}
			if agg.MinOdometer == nil || r < *agg.MinOdometer {
				v := r
				agg.MinOdometer = &v
			}
		}
	}
	out := make([]fleet.FuelAggregate, 0, len(order))
	for _, id := range order {
		out = append(out, *byVehicle[id])
	}
	return out, nil
}

func (m *Memory) CostTotals(ctx context.Context) ([]fleet.CostTotal, error) {
	ids := make([]uint, 0, len(m.vehicles))
	for id := range m.vehicles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]fleet.CostTotal, 0, len(ids))
	for _, id := range ids {
		v := m.vehicles[id]
		total := fleet.CostTotal{VehicleID: id, VehicleName: v.Name, LicensePlate: v.LicensePlate}
		for _, f := range m.fuelLogs {
			if f.VehicleID == id {
				total.FuelCost += f.Cost
			}
		}
		for _, l := range m.maintenance {
			if l.VehicleID == id {
				total.MaintCost += l.Cost
			}
		}
		out = append(out, total)
	}
	return out, nil
}

func (m *Memory) TripStatusCounts(ctx context.Context) (map[models.TripStatus]int64, error) {
	counts := make(map[models.TripStatus]int64)
	for _, t := range m.trips {
		counts[t.Status]++
	}
	return counts, nil
}

func (m *Memory) MonthlyFuelCosts(ctx context.Context, months int) ([]fleet.MonthlyFuel, error) {
	byMonth := make(map[string]float64)
	for _, f := range m.fuelLogs {
		byMonth[f.LogDate.Format("2006-01")] += f.Cost
	}
	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > months {
		keys = keys[:months]
	}
	out := make([]fleet.MonthlyFuel, 0, len(keys))
	for _, k := range keys {
		out = append(out, fleet.MonthlyFuel{Month: k, Cost: byMonth[k]})
	}
	return out, nil
}

func (m *Memory) DriverStandings(ctx context.Context) ([]fleet.DriverStanding, error) {
	out := make([]fleet.DriverStanding, 0, len(m.drivers))
	for _, d := range m.drivers {
		out = append(out, fleet.DriverStanding{
			Name:           d.Name,
			TripsCompleted: d.TripsCompleted,
			SafetyScore:    d.SafetyScore,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TripsCompleted > out[j].TripsCompleted })
	return out, nil
}

func (m *Memory) CountVehiclesByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	var n int64
	for _, v := range m.vehicles {
		if v.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *Memory) CountVehiclesInService(ctx context.Context) (int64, error) {
	var n int64
	for _, v := range m.vehicles {
		if v.Status != models.VehicleOutOfService {
			n++
		}
	}
	return n, nil
}

func (m *Memory) CountDriversByStatus(ctx context.Context, status models.DriverStatus) (int64, error) {
	var n int64
	for _, d := range m.drivers {
		if d.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *Memory) RecentTrips(ctx context.Context, limit int) ([]models.Trip, error) {
	trips := make([]models.Trip, 0, len(m.trips))
	for _, t := range m.trips {
		trips = append(trips, t)
	}
	sort.Slice(trips, func(i, j int) bool { return trips[i].CreatedAt.After(trips[j].CreatedAt) })
	if len(trips) > limit {
		trips = trips[:limit]
	}
	return trips, nil
}

func (m *Memory) DriversWithExpiringLicense(ctx context.Context, within time.Duration) ([]models.Driver, error) {
	now := time.Now()
	var out []models.Driver
	for _, d := range m.drivers {
		if !d.LicenseExpiry.IsZero() && !d.LicenseExpiry.Before(now) && !d.LicenseExpiry.After(now.Add(within)) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) Transaction(ctx context.Context, fn func(tx fleet.Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

type memorySnapshot struct {
	vehicles    map[uint]models.Vehicle
	drivers     map[uint]models.Driver
	trips       map[uint]models.Trip
	maintenance map[uint]models.MaintenanceLog
	fuelLogs    []models.FuelLog
	nextID      uint
}

func (m *Memory) snapshot() memorySnapshot {
	snap := memorySnapshot{
		vehicles:    make(map[uint]models.Vehicle, len(m.vehicles)),
		drivers:     make(map[uint]models.Driver, len(m.drivers)),
		trips:       make(map[uint]models.Trip, len(m.trips)),
		maintenance: make(map[uint]models.MaintenanceLog, len(m.maintenance)),
		fuelLogs:    append([]models.FuelLog(nil), m.fuelLogs...),
		nextID:      m.nextID,
	}
	for k, v := range m.vehicles {
		snap.vehicles[k] = v
	}
	for k, v := range m.drivers {
		snap.drivers[k] = v
	}
	for k, v := range m.trips {
		snap.trips[k] = v
	}
	for k, v := range m.maintenance {
		snap.maintenance[k] = v
	}
	return snap
}

func (m *Memory) restore(snap memorySnapshot) {
	m.vehicles = snap.vehicles
	m.drivers = snap.drivers
	m.trips = snap.trips
	m.maintenance = snap.maintenance
	m.fuelLogs = snap.fuelLogs
	m.nextID = snap.nextID
}
