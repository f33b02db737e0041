package routes

import (
	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(r *gin.Engine) {
	analytics := r.Group("")
	analytics.Use(middleware.RequireAuth())
	{
		analytics.GET("/analytics", controllers.GetAnalytics)
		analytics.GET("/dashboard", controllers.GetDashboard)
	}
}
