package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/models"
)

func ListFuelLogs(c *gin.Context) {
	var logs []models.FuelLog
	err := config.DB.
		Preload("Vehicle").
		Order("log_date DESC").
		Find(&logs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing fuel logs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}

// CreateFuelLog appends a fuel entry. Entries are analytics input and are
// never edited afterwards.
func CreateFuelLog(c *gin.Context) {
	var input struct {
		VehicleID       uint     `json:"vehicle_id" binding:"required"`
		TripID          *uint    `json:"trip_id"`
		Liters          float64  `json:"liters" binding:"required,gt=0"`
		Cost            float64  `json:"cost" binding:"required,gte=0"`
		OdometerReading *float64 `json:"odometer_reading"`
		LogDate         string   `json:"log_date" binding:"required"` // "2006-01-02"
		Notes           string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fuel log input: " + err.Error()})
		return
	}
	if input.OdometerReading != nil && *input.OdometerReading < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "odometer_reading cannot be negative"})
		return
	}
	logDate, err := time.Parse("2006-01-02", input.LogDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "log_date must be YYYY-MM-DD"})
		return
	}

	log := models.FuelLog{
		VehicleID:       input.VehicleID,
		TripID:          input.TripID,
		Liters:          input.Liters,
		Cost:            input.Cost,
		OdometerReading: input.OdometerReading,
		LogDate:         logDate,
		Notes:           input.Notes,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fuel log: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"log": log})
}
