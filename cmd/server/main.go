package main

import (
	"log"
	"net/http"

	"fleetflow/internal/config"
	"fleetflow/internal/controllers"
	"fleetflow/internal/fleet"
	"fleetflow/internal/logger"
	"fleetflow/internal/middleware"
	"fleetflow/internal/routes"
	"fleetflow/internal/store"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Wire the fleet core onto the store
	engine := fleet.NewEngine(store.NewGorm(config.DB), logger.App())
	controllers.Init(engine)

	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Printf("FleetFlow server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
