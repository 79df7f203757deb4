package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"guestlist/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, guestController *controllers.GuestController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /{$}", eventController.ListEvents)
	mux.HandleFunc("GET /create", eventController.ShowCreateForm)
	mux.HandleFunc("POST /create", eventController.CreateEvent)
	mux.HandleFunc("GET /event/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("POST /event/{eventID}", eventController.RegisterRSVP)

	// Guests
	mux.HandleFunc("GET /guest/{guestID}", guestController.GetGuestByID)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
