package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"guestlist/internal/delivery/http/helpers"
	"guestlist/internal/domain"
)

// GuestDetailSuccessResponse is the success response envelope for GET /guest/{guestID} (200).
type GuestDetailSuccessResponse struct {
	Data  *domain.GuestDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type GuestController struct {
	Logger *slog.Logger
	RSVPs  domain.RSVPService
}

func NewGuestController(logger *slog.Logger, rsvps domain.RSVPService) *GuestController {
	return &GuestController{
		Logger: logger,
		RSVPs:  rsvps,
	}
}

// GetGuestByID godoc
// @Summary View a guest
// @Description Returns the guest and the events they are attending.
// @Tags guests
// @Produce json
// @Param guestID path int true "Guest ID"
// @Success 200 {object} controllers.GuestDetailSuccessResponse "data contains guest and attending events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guest/{guestID} [get]
func (c *GuestController) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	guestID, ok := pathID(w, r, "guestID")
	if !ok {
		return
	}
	detail, err := c.RSVPs.GetGuestDetail(r.Context(), guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "guest not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}
