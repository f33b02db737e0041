package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/fleet"
	"fleetflow/internal/models"
)

type tripInput struct {
	VehicleID   uint    `json:"vehicle_id" binding:"required"`
	DriverID    uint    `json:"driver_id" binding:"required"`
	Origin      string  `json:"origin" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	CargoWeight float64 `json:"cargo_weight" binding:"required,gt=0"`
	CargoDesc   string  `json:"cargo_desc"`
}

func (in tripInput) toCore() fleet.CreateTripInput {
	return fleet.CreateTripInput{
		VehicleID:   in.VehicleID,
		DriverID:    in.DriverID,
		Origin:      in.Origin,
		Destination: in.Destination,
		CargoWeight: in.CargoWeight,
		CargoDesc:   in.CargoDesc,
	}
}

func ListTrips(c *gin.Context) {
	var trips []models.Trip
	err := config.DB.
		Preload("Vehicle").
		Preload("Driver").
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trips: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trips})
}

// CreateTrip validates resources through the lifecycle engine and inserts
// a Draft. The response surfaces the expired-license warning when the
// assigned driver's license has lapsed.
func CreateTrip(c *gin.Context) {
	var input tripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip input: " + err.Error()})
		return
	}

	res, err := engine.CreateTrip(c.Request.Context(), principalFrom(c), input.toCore())
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func EditTrip(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip ID format."})
		return
	}

	var input tripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip input: " + err.Error()})
		return
	}

	res, err := engine.EditTrip(c.Request.Context(), principalFrom(c), uint(id), input.toCore())
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// TransitionTrip drives the trip state machine. The optional
// final_odometer only applies when closing out a Dispatched trip.
func TransitionTrip(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip ID format."})
		return
	}

	var body struct {
		Status        models.TripStatus `json:"status" binding:"required"`
		FinalOdometer *float64          `json:"final_odometer"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := engine.TransitionTrip(
		c.Request.Context(),
		principalFrom(c),
		uint(id),
		body.Status,
		fleet.TransitionExtra{FinalOdometer: body.FinalOdometer},
	)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip})
}
