package routes

import (
	"fleetflow/internal/controllers"
	"fleetflow/internal/fleet"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TripRoutes(r *gin.Engine) {
	trips := r.Group("/trips")
	trips.Use(middleware.RequireAuth())
	{
		trips.GET("/", controllers.ListTrips)

		write := trips.Group("")
		write.Use(middleware.RequireWrite(fleet.ModuleTrips))
		{
			write.POST("/", controllers.CreateTrip)
			write.PUT("/:id", controllers.EditTrip)
			write.POST("/:id/status", controllers.TransitionTrip)
		}
	}
}
