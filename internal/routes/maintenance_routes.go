package routes

import (
	"fleetflow/internal/controllers"
	"fleetflow/internal/fleet"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func MaintenanceRoutes(r *gin.Engine) {
	maintenance := r.Group("/maintenance")
	maintenance.Use(middleware.RequireAuth())
	{
		maintenance.GET("/", controllers.ListMaintenance)

		write := maintenance.Group("")
		write.Use(middleware.RequireWrite(fleet.ModuleMaintenance))
		{
			write.POST("/", controllers.OpenMaintenance)
			write.POST("/:id/complete", controllers.CompleteMaintenance)
		}
	}
}
