package routes

import (
	"fleetflow/internal/controllers"
	"fleetflow/internal/fleet"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.RequireAuth())
	{
		vehicles.GET("/", controllers.ListVehicles)
		vehicles.GET("/:id/capacity", controllers.VehicleCapacity)

		write := vehicles.Group("")
		write.Use(middleware.RequireWrite(fleet.ModuleVehicles))
		{
			write.POST("/", controllers.CreateVehicle)
			write.PUT("/:id", controllers.UpdateVehicle)
			write.POST("/:id/toggle", controllers.ToggleVehicle)
			write.DELETE("/:id", controllers.DeleteVehicle)
		}
	}
}
