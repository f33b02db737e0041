// internal/models/fuellog.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// FuelLog is append-only: once written it is never mutated, analytics
// reads it as-is.
type FuelLog struct {
	gorm.Model
	VehicleID       uint     `json:"vehicle_id" gorm:"index"`
	Vehicle         Vehicle  `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	TripID          *uint    `json:"trip_id,omitempty" gorm:"index"`
	Liters          float64  `json:"liters"`
	Cost            float64  `json:"cost"`
	OdometerReading *float64 `json:"odometer_reading,omitempty"`
	LogDate         time.Time `json:"log_date"`
	Notes           string    `json:"notes"`
}
