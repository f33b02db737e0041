// internal/models/driver.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type DriverStatus string

const (
	DriverOnDuty    DriverStatus = "On Duty"
	DriverOffDuty   DriverStatus = "Off Duty"
	DriverSuspended DriverStatus = "Suspended"
)

type Driver struct {
	gorm.Model
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	LicenseNumber   string       `json:"license_number"`
	LicenseExpiry   time.Time    `json:"license_expiry"`
	VehicleCategory string       `json:"vehicle_category" gorm:"default:'Any'"`
	Status          DriverStatus `json:"status" gorm:"type:varchar(16);default:'On Duty'"`
	TripsCompleted  uint         `json:"trips_completed" gorm:"default:0"`
	SafetyScore     float64      `json:"safety_score" gorm:"default:100"`
}

// LicenseExpired reports whether the driver's license has lapsed as of now.
// An expired license never blocks assignment, it only raises a warning.
func (d *Driver) LicenseExpired(now time.Time) bool {
	return !d.LicenseExpiry.IsZero() && d.LicenseExpiry.Before(now)
}
