package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/models"
)

// ListVehicles returns the fleet, optionally filtered by type and status.
func ListVehicles(c *gin.Context) {
	query := config.DB.Model(&models.Vehicle{})
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if s := c.Query("status"); s != "" {
		query = query.Where("status = ?", s)
	}

	var vehicles []models.Vehicle
	if err := query.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func CreateVehicle(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required"`
		LicensePlate string  `json:"license_plate" binding:"required"`
		Type         string  `json:"type" binding:"required"`
		MaxCapacity  float64 `json:"max_capacity" binding:"required,gt=0"`
		Odometer     float64 `json:"odometer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	vehicle := models.Vehicle{
		Name:         input.Name,
		LicensePlate: input.LicensePlate,
		Type:         input.Type,
		MaxCapacity:  input.MaxCapacity,
		Odometer:     input.Odometer,
		Status:       models.VehicleAvailable,
	}
	if err := config.DB.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

func UpdateVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var input struct {
		Name         string  `json:"name"`
		LicensePlate string  `json:"license_plate"`
		Type         string  `json:"type"`
		MaxCapacity  float64 `json:"max_capacity"`
		Odometer     float64 `json:"odometer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	vehicle.Name = input.Name
	vehicle.LicensePlate = input.LicensePlate
	vehicle.Type = input.Type
	vehicle.MaxCapacity = input.MaxCapacity
	vehicle.Odometer = input.Odometer
	config.DB.Save(&vehicle)

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// ToggleVehicle flips a vehicle between Out of Service and Available.
func ToggleVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	if vehicle.Status != models.VehicleOutOfService {
		vehicle.Status = models.VehicleOutOfService
	} else {
		vehicle.Status = models.VehicleAvailable
	}
	config.DB.Save(&vehicle)

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func DeleteVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	config.DB.Delete(&vehicle)
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}

// VehicleCapacity returns the rated capacity for trip-form validation.
func VehicleCapacity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID format."})
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, uint(id)).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"max_capacity": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{"max_capacity": vehicle.MaxCapacity})
}
