package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging; registered before the route groups so every
	// handler picks it up.
	r.Use(ginlogger.SetLogger(
		ginlogger.WithLogger(func(_ *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.Output(gin.DefaultWriter).With().Str("component", "http").Logger()
		}),
	))

	AuthRoutes(r)
	VehicleRoutes(r)
	DriverRoutes(r)
	TripRoutes(r)
	MaintenanceRoutes(r)
	ExpenseRoutes(r)
	AnalyticsRoutes(r)

	return r
}
