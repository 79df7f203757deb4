package main

import (
	"database/sql"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"guestlist/config"
	_ "guestlist/docs"
	delivery "guestlist/internal/delivery/http"
	"guestlist/internal/delivery/http/controllers"
	"guestlist/internal/delivery/http/middleware"
	"guestlist/internal/repository/postgres"
	"guestlist/internal/services"
)

// @title Guestlist API
// @version 1.0
// @description Event publishing and guest RSVP service.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	guestRepo := postgres.NewGuestRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)

	eventService := services.NewEventService(eventRepo, attendanceRepo)
	rsvpService := services.NewRSVPService(eventRepo, guestRepo, attendanceRepo)

	eventController := controllers.NewEventController(logger, eventService, rsvpService)
	guestController := controllers.NewGuestController(logger, rsvpService)

	mux := delivery.NewRouter(eventController, guestController)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
