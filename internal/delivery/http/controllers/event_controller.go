package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"guestlist/internal/delivery/http/helpers"
	"guestlist/internal/domain"
	"guestlist/internal/services"
)

// CreateEventForm is the form body for POST /create.
// date is expected as YYYY-MM-DD and time as HH:MM (24-hour clock).
type CreateEventForm struct {
	Title       string
	Description string
	Date        string
	Time        string
}

// DecodeForm implements helpers.FormDecoder.
func (f *CreateEventForm) DecodeForm(r *http.Request) {
	f.Title = r.PostFormValue("title")
	f.Description = r.PostFormValue("description")
	f.Date = r.PostFormValue("date")
	f.Time = r.PostFormValue("time")
}

// CreateFormFields describes the blank create-event form for GET /create.
type CreateFormFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DateFormat  string `json:"date_format"`
	TimeFormat  string `json:"time_format"`
}

// CreateFormSuccessResponse is the success response envelope for GET /create (200).
type CreateFormSuccessResponse struct {
	Data  CreateFormFields  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsSuccessResponse is the success response envelope for GET / (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventDetailSuccessResponse is the success response envelope for GET /event/{eventID} (200).
type EventDetailSuccessResponse struct {
	Data  *domain.EventDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type EventController struct {
	Logger *slog.Logger
	Events domain.EventService
	RSVPs  domain.RSVPService
}

func NewEventController(logger *slog.Logger, events domain.EventService, rsvps domain.RSVPService) *EventController {
	return &EventController{
		Logger: logger,
		Events: events,
		RSVPs:  rsvps,
	}
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every published event in store order.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains the events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router / [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ShowCreateForm godoc
// @Summary Show the create-event form
// @Description Returns a blank creation form payload with the expected field formats.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.CreateFormSuccessResponse "data contains the blank form"
// @Router /create [get]
func (c *EventController) ShowCreateForm(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, CreateFormFields{
		DateFormat: "YYYY-MM-DD",
		TimeFormat: "HH:MM",
	})
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Accepts a form-encoded body with title, description, date (YYYY-MM-DD), and time (HH:MM). On success sets a flash notification and redirects to the event list.
// @Tags events
// @Accept x-www-form-urlencoded
// @Param title formData string false "Event title"
// @Param description formData string false "Event description"
// @Param date formData string true "Event date (YYYY-MM-DD)"
// @Param time formData string true "Event time (HH:MM)"
// @Success 303 "redirects to /"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unparseable date/time)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /create [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var form CreateEventForm
	if !helpers.ParseAndValidate(w, r, &form) {
		return
	}
	_, err := c.Events.CreateEvent(r.Context(), form.Title, form.Description, form.Date, form.Time)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, verr.Message)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.Redirect(w, r, "/", "Event created.")
}

// GetEventByID godoc
// @Summary View an event
// @Description Returns the event and its guest list.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventDetailSuccessResponse "data contains event and guests"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	detail, err := c.Events.GetEventDetail(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// RSVPForm is the form body for POST /event/{eventID}. A non-empty returning
// value selects the returning-guest flow.
type RSVPForm struct {
	Returning bool
	GuestName string
	Email     *string
	Phone     *string
}

// DecodeForm implements helpers.FormDecoder.
func (f *RSVPForm) DecodeForm(r *http.Request) {
	f.Returning = r.PostFormValue("returning") != ""
	f.GuestName = r.PostFormValue("guest_name")
	f.Email = helpers.OptionalFormValue(r, "email")
	f.Phone = helpers.OptionalFormValue(r, "phone")
}

// Validate implements helpers.FormValidator. A new guest needs a name; the
// returning flow resolves the name through the lookup instead.
func (f *RSVPForm) Validate() []string {
	var errs []string
	if !f.Returning && f.GuestName == "" {
		errs = append(errs, "guest_name is required")
	}
	return errs
}

// RegisterRSVP godoc
// @Summary RSVP to an event
// @Description Accepts a form-encoded body with returning, guest_name, email, and phone. Returning guests are matched by exact name; otherwise a new guest is created. On success sets a flash notification and redirects back to the event.
// @Tags events
// @Accept x-www-form-urlencoded
// @Param eventID path int true "Event ID"
// @Param returning formData string false "Set to any value for the returning-guest flow"
// @Param guest_name formData string true "Guest name"
// @Param email formData string false "Guest email"
// @Param phone formData string false "Guest phone"
// @Success 303 "redirects to /event/{eventID}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown event or returning guest)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event/{eventID} [post]
func (c *EventController) RegisterRSVP(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var form RSVPForm
	if !helpers.ParseAndValidate(w, r, &form) {
		return
	}
	_, err := c.RSVPs.Register(r.Context(), eventID, form.Returning, form.GuestName, form.Email, form.Phone)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "error, guest does not exist!")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, verr.Message)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.Redirect(w, r, fmt.Sprintf("/event/%d", eventID), "You have successfully RSVP'd! See you there!")
}

// pathID parses the named path value as a positive integer id. On failure it
// writes a 400 JSON error and returns ok=false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
