// internal/models/vehicle.go
package models

import (
	"gorm.io/gorm"
)

// VehicleStatus is persisted as the plain display string so the schema
// stays drop-in compatible with existing fleet data.
type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "Available"
	VehicleOnTrip       VehicleStatus = "On Trip"
	VehicleInShop       VehicleStatus = "In Shop"
	VehicleOutOfService VehicleStatus = "Out of Service"
)

type Vehicle struct {
	gorm.Model
	Name         string        `json:"name"`
	LicensePlate string        `json:"license_plate" gorm:"unique"`
	Type         string        `json:"type"`         // "Truck", "Van", "Refrigerated", ...
	MaxCapacity  float64       `json:"max_capacity"` // kg
	Odometer     float64       `json:"odometer"`     // km, non-decreasing under normal operation
	Status       VehicleStatus `json:"status" gorm:"type:varchar(16);default:'Available'"`
}
