package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/models"
)

type driverInput struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	LicenseNumber   string  `json:"license_number" binding:"required"`
	LicenseExpiry   string  `json:"license_expiry" binding:"required"` // "2006-01-02"
	VehicleCategory string  `json:"vehicle_category"`
	SafetyScore     float64 `json:"safety_score"`
}

func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.Order("created_at DESC").Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

func CreateDriver(c *gin.Context) {
	var input driverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	expiry, err := time.Parse("2006-01-02", input.LicenseExpiry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "license_expiry must be YYYY-MM-DD"})
		return
	}

	category := input.VehicleCategory
	if category == "" {
		category = "Any"
	}
	driver := models.Driver{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		LicenseNumber:   input.LicenseNumber,
		LicenseExpiry:   expiry,
		VehicleCategory: category,
		Status:          models.DriverOnDuty,
		SafetyScore:     100,
	}
	if err := config.DB.Create(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

func UpdateDriver(c *gin.Context) {
	id := c.Param("id")

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	var input driverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}
	expiry, err := time.Parse("2006-01-02", input.LicenseExpiry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "license_expiry must be YYYY-MM-DD"})
		return
	}

	driver.Name = input.Name
	driver.Email = input.Email
	driver.Phone = input.Phone
	driver.LicenseNumber = input.LicenseNumber
	driver.LicenseExpiry = expiry
	if input.VehicleCategory != "" {
		driver.VehicleCategory = input.VehicleCategory
	}
	if input.SafetyScore > 0 {
		driver.SafetyScore = input.SafetyScore
	}
	config.DB.Save(&driver)

	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// SetDriverStatus moves a driver between On Duty, Off Duty and Suspended.
// Suspension is what blocks new trip assignments downstream.
func SetDriverStatus(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status models.DriverStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch body.Status {
	case models.DriverOnDuty, models.DriverOffDuty, models.DriverSuspended:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown driver status"})
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	driver.Status = body.Status
	config.DB.Save(&driver)

	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

func DeleteDriver(c *gin.Context) {
	id := c.Param("id")

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	config.DB.Delete(&driver)
	c.JSON(http.StatusOK, gin.H{"message": "Driver removed"})
}
