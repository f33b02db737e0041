// internal/models/maintenancelog.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type MaintStatus string

const (
	MaintOpen      MaintStatus = "Open"
	MaintCompleted MaintStatus = "Completed"
)

type MaintenanceLog struct {
	gorm.Model
	VehicleID     uint        `json:"vehicle_id" gorm:"index"`
	Vehicle       Vehicle     `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	ServiceType   string      `json:"service_type"` // "Oil Change", "Brake Service", ...
	Description   string      `json:"description"`
	Cost          float64     `json:"cost"`
	ServiceDate   time.Time   `json:"service_date"`
	Mechanic      string      `json:"mechanic"`
	Status        MaintStatus `json:"status" gorm:"type:varchar(16);default:'Open'"`
	CompletedDate *time.Time  `json:"completed_date,omitempty"`
}
