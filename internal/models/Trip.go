// internal/models/trip.go
package models

import (
	"gorm.io/gorm"
)

type TripStatus string

const (
	TripDraft      TripStatus = "Draft"
	TripDispatched TripStatus = "Dispatched"
	TripCompleted  TripStatus = "Completed"
	TripCancelled  TripStatus = "Cancelled"
)

// Terminal reports whether the status allows no further transitions.
func (s TripStatus) Terminal() bool {
	return s == TripCompleted || s == TripCancelled
}

type Trip struct {
	gorm.Model
	VehicleID   uint       `json:"vehicle_id" gorm:"index"`
	DriverID    uint       `json:"driver_id" gorm:"index"`
	Vehicle     Vehicle    `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Driver      Driver     `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	CargoWeight float64    `json:"cargo_weight"` // kg
	CargoDesc   string     `json:"cargo_desc"`
	Status      TripStatus `json:"status" gorm:"type:varchar(16);index;default:'Draft'"`
}
