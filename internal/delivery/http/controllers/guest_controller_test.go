package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guestlist/internal/domain"
)

func TestGuestController_GetGuestByID_Success(t *testing.T) {
	rsvps := &mockRSVPService{
		guestDetail: &domain.GuestDetail{
			Guest:  &domain.Guest{ID: 7, Name: "Ada Lovelace"},
			Events: []*domain.Event{{ID: 1, Title: "Launch Party"}},
		},
	}
	ctrl := NewGuestController(testLogger(), rsvps)

	req := httptest.NewRequest(http.MethodGet, "/guest/7", nil)
	req.SetPathValue("guestID", "7")
	w := httptest.NewRecorder()

	ctrl.GetGuestByID(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "Launch Party") {
		t.Fatalf("expected attending events in payload, got %s", w.Body.String())
	}
}

func TestGuestController_GetGuestByID_NotFound(t *testing.T) {
	rsvps := &mockRSVPService{detailErr: domain.ErrNotFound}
	ctrl := NewGuestController(testLogger(), rsvps)

	req := httptest.NewRequest(http.MethodGet, "/guest/42", nil)
	req.SetPathValue("guestID", "42")
	w := httptest.NewRecorder()

	ctrl.GetGuestByID(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGuestController_GetGuestByID_InvalidID(t *testing.T) {
	ctrl := NewGuestController(testLogger(), &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/guest/abc", nil)
	req.SetPathValue("guestID", "abc")
	w := httptest.NewRecorder()

	ctrl.GetGuestByID(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
