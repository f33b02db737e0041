package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

func TestTransactionCommits(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	vid := mem.PutVehicle(models.Vehicle{Name: "Canter", Status: models.VehicleAvailable})

	err := mem.Transaction(ctx, func(tx fleet.Store) error {
		return tx.SetVehicleStatus(ctx, vid, models.VehicleOnTrip)
	})
	require.NoError(t, err)

	v, err := mem.GetVehicle(ctx, vid)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleOnTrip, v.Status)
}

func TestTransactionRollsBackEveryTable(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	vid := mem.PutVehicle(models.Vehicle{Name: "Canter", Status: models.VehicleAvailable})
	did := mem.PutDriver(models.Driver{Name: "Joe", Status: models.DriverOffDuty})
	tid := mem.PutTrip(models.Trip{VehicleID: vid, DriverID: did, Status: models.TripDraft})

	boom := errors.New("boom")
	err := mem.Transaction(ctx, func(tx fleet.Store) error {
		if err := tx.SetVehicleStatus(ctx, vid, models.VehicleOnTrip); err != nil {
			return err
		}
		if err := tx.SetDriverStatus(ctx, did, models.DriverOnDuty); err != nil {
			return err
		}
		if err := tx.SetTripStatus(ctx, tid, models.TripDispatched); err != nil {
			return err
		}
		if err := tx.InsertMaintenanceLog(ctx, &models.MaintenanceLog{VehicleID: vid}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	v, _ := mem.GetVehicle(ctx, vid)
	d, _ := mem.GetDriver(ctx, did)
	trip, _ := mem.GetTrip(ctx, tid)
	assert.Equal(t, models.VehicleAvailable, v.Status)
	assert.Equal(t, models.DriverOffDuty, d.Status)
	assert.Equal(t, models.TripDraft, trip.Status)
	_, err = mem.GetMaintenanceLog(ctx, 1)
	assert.ErrorIs(t, err, fleet.ErrNotFound)
}

func TestCompareAndSetVehicleStatus(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	vid := mem.PutVehicle(models.Vehicle{Name: "Canter", Status: models.VehicleInShop})

	swapped, err := mem.CompareAndSetVehicleStatus(ctx, vid, models.VehicleInShop, models.VehicleAvailable)
	require.NoError(t, err)
	assert.True(t, swapped)

	// second swap finds the wrong current status and leaves it alone
	swapped, err = mem.CompareAndSetVehicleStatus(ctx, vid, models.VehicleInShop, models.VehicleAvailable)
	require.NoError(t, err)
	assert.False(t, swapped)

	v, _ := mem.GetVehicle(ctx, vid)
	assert.Equal(t, models.VehicleAvailable, v.Status)
}

func TestUpdateMissingRowsReturnNotFound(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	assert.ErrorIs(t, mem.SetVehicleStatus(ctx, 9, models.VehicleAvailable), fleet.ErrNotFound)
	assert.ErrorIs(t, mem.SetDriverStatus(ctx, 9, models.DriverOnDuty), fleet.ErrNotFound)
	assert.ErrorIs(t, mem.SetTripStatus(ctx, 9, models.TripDraft), fleet.ErrNotFound)
	assert.ErrorIs(t, mem.IncrementDriverTrips(ctx, 9), fleet.ErrNotFound)
	assert.ErrorIs(t, mem.CompleteMaintenanceLog(ctx, 9, time.Now()), fleet.ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	vid := mem.PutVehicle(models.Vehicle{Name: "Canter", Status: models.VehicleAvailable})

	v, err := mem.GetVehicle(ctx, vid)
	require.NoError(t, err)
	v.Status = models.VehicleOutOfService

	again, err := mem.GetVehicle(ctx, vid)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, again.Status)
}
