package routes

import (
	"fleetflow/internal/controllers"
	"fleetflow/internal/fleet"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ExpenseRoutes(r *gin.Engine) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.RequireAuth())
	{
		expenses.GET("/", controllers.ListFuelLogs)

		write := expenses.Group("")
		write.Use(middleware.RequireWrite(fleet.ModuleExpenses))
		{
			write.POST("/", controllers.CreateFuelLog)
		}
	}
}
