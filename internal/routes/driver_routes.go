package routes

import (
	"fleetflow/internal/controllers"
	"fleetflow/internal/fleet"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	drivers := r.Group("/drivers")
	drivers.Use(middleware.RequireAuth())
	{
		drivers.GET("/", controllers.ListDrivers)

		write := drivers.Group("")
		write.Use(middleware.RequireWrite(fleet.ModuleDrivers))
		{
			write.POST("/", controllers.CreateDriver)
			write.PUT("/:id", controllers.UpdateDriver)
			write.POST("/:id/status", controllers.SetDriverStatus)
			write.DELETE("/:id", controllers.DeleteDriver)
		}
	}
}
