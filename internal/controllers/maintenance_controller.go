package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/models"
)

func ListMaintenance(c *gin.Context) {
	var logs []models.MaintenanceLog
	err := config.DB.
		Preload("Vehicle").
		Order("service_date DESC").
		Find(&logs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing maintenance logs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}

// OpenMaintenance logs a service and pulls the vehicle into the shop
// through the coordinator, which force-sets In Shop whatever the vehicle
// was doing.
func OpenMaintenance(c *gin.Context) {
	var input struct {
		VehicleID   uint    `json:"vehicle_id" binding:"required"`
		ServiceType string  `json:"service_type" binding:"required"`
		Description string  `json:"description"`
		Cost        float64 `json:"cost"`
		ServiceDate string  `json:"service_date" binding:"required"` // "2006-01-02"
		Mechanic    string  `json:"mechanic"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance input: " + err.Error()})
		return
	}
	serviceDate, err := time.Parse("2006-01-02", input.ServiceDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_date must be YYYY-MM-DD"})
		return
	}

	log := &models.MaintenanceLog{
		VehicleID:   input.VehicleID,
		ServiceType: input.ServiceType,
		Description: input.Description,
		Cost:        input.Cost,
		ServiceDate: serviceDate,
		Mechanic:    input.Mechanic,
	}
	log, err = engine.OpenMaintenance(c.Request.Context(), principalFrom(c), log)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"log": log, "message": "Maintenance logged. Vehicle marked as In Shop."})
}

func CompleteMaintenance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance log ID format."})
		return
	}

	log, err := engine.CompleteMaintenance(c.Request.Context(), principalFrom(c), uint(id))
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"log": log})
}
