package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAnalytics returns the derived fleet report: fuel efficiency per
// vehicle, cost rollups, trip counts, monthly fuel spend and the driver
// leaderboard.
func GetAnalytics(c *gin.Context) {
	report, err := engine.ComputeFleetAnalytics(c.Request.Context())
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

// GetDashboard returns the operational overview counters and alerts.
func GetDashboard(c *gin.Context) {
	stats, err := engine.Dashboard(c.Request.Context())
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
