package main

import (
	"chiclon/config"
	"chiclon/di"
	"chiclon/shared/logger"
)

// @title Chiclon Booking API
// @version 1.0
// @description Appointment booking for the Chiclon barbershop.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
