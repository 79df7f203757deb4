package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"guestlist/internal/delivery/http/helpers"
	"guestlist/internal/domain"
	"guestlist/internal/services"
)

type mockEventService struct {
	events    []*domain.Event
	created   *domain.Event
	detail    *domain.EventDetail
	createErr error
	listErr   error
	detailErr error

	gotTitle, gotDescription, gotDate, gotTime string
}

func (m *mockEventService) CreateEvent(ctx context.Context, title, description, date, timeOfDay string) (*domain.Event, error) {
	m.gotTitle, m.gotDescription, m.gotDate, m.gotTime = title, description, date, timeOfDay
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockEventService) GetEventDetail(ctx context.Context, id int64) (*domain.EventDetail, error) {
	if m.detailErr != nil {
		return nil, m.detailErr
	}
	return m.detail, nil
}

type mockRSVPService struct {
	guest       *domain.Guest
	guestDetail *domain.GuestDetail
	registerErr error
	detailErr   error

	gotEventID   int64
	gotReturning bool
	gotName      string
}

func (m *mockRSVPService) Register(ctx context.Context, eventID int64, returning bool, name string, email, phone *string) (*domain.Guest, error) {
	m.gotEventID, m.gotReturning, m.gotName = eventID, returning, name
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.guest, nil
}

func (m *mockRSVPService) GetGuestDetail(ctx context.Context, guestID int64) (*domain.GuestDetail, error) {
	if m.detailErr != nil {
		return nil, m.detailErr
	}
	return m.guestDetail, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestEventController_ListEvents_Success(t *testing.T) {
	svc := &mockEventService{
		events: []*domain.Event{{ID: 1, Title: "Launch Party"}},
	}
	ctrl := NewEventController(testLogger(), svc, &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	ctrl.ListEvents(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestEventController_ListEvents_Error(t *testing.T) {
	svc := &mockEventService{listErr: errors.New("service error")}
	ctrl := NewEventController(testLogger(), svc, &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	ctrl.ListEvents(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestEventController_ShowCreateForm(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{}, &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/create", nil)
	w := httptest.NewRecorder()

	ctrl.ShowCreateForm(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "YYYY-MM-DD") {
		t.Fatalf("expected blank form payload with date format, got %s", w.Body.String())
	}
}

func TestEventController_CreateEvent_Success(t *testing.T) {
	svc := &mockEventService{
		created: &domain.Event{ID: 1, Title: "Launch Party", DateAndTime: time.Date(2024, 7, 1, 18, 30, 0, 0, time.UTC)},
	}
	ctrl := NewEventController(testLogger(), svc, &mockRSVPService{})

	req := formRequest(http.MethodPost, "/create", url.Values{
		"title":       {"Launch Party"},
		"description": {"Kickoff"},
		"date":        {"2024-07-01"},
		"time":        {"18:30"},
	})
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if svc.gotDate != "2024-07-01" || svc.gotTime != "18:30" {
		t.Fatalf("expected form fields to reach the service, got date=%q time=%q", svc.gotDate, svc.gotTime)
	}
	flash := flashMessage(t, w.Result().Cookies())
	if flash != "Event created." {
		t.Fatalf("expected flash %q, got %q", "Event created.", flash)
	}
}

func TestEventController_CreateEvent_BadDatetime(t *testing.T) {
	svc := &mockEventService{
		createErr: domain.NewValidationError(services.ErrBadDateTime),
	}
	ctrl := NewEventController(testLogger(), svc, &mockRSVPService{})

	req := formRequest(http.MethodPost, "/create", url.Values{
		"title": {"Launch Party"},
		"date":  {"tomorrow"},
		"time":  {"evening"},
	})
	w := httptest.NewRecorder()

	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if !strings.Contains(w.Body.String(), "Incorrect datetime format! Please try again.") {
		t.Fatalf("expected datetime validation message, got %s", w.Body.String())
	}
}

func TestEventController_GetEventByID_Success(t *testing.T) {
	svc := &mockEventService{
		detail: &domain.EventDetail{
			Event:  &domain.Event{ID: 1, Title: "Launch Party"},
			Guests: []*domain.Guest{{ID: 7, Name: "Ada Lovelace"}},
		},
	}
	ctrl := NewEventController(testLogger(), svc, &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/event/1", nil)
	req.SetPathValue("eventID", "1")
	w := httptest.NewRecorder()

	ctrl.GetEventByID(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ada Lovelace") {
		t.Fatalf("expected guest list in payload, got %s", w.Body.String())
	}
}

func TestEventController_GetEventByID_NotFound(t *testing.T) {
	svc := &mockEventService{detailErr: domain.ErrNotFound}
	ctrl := NewEventController(testLogger(), svc, &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/event/99", nil)
	req.SetPathValue("eventID", "99")
	w := httptest.NewRecorder()

	ctrl.GetEventByID(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_GetEventByID_InvalidID(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{}, &mockRSVPService{})

	req := httptest.NewRequest(http.MethodGet, "/event/abc", nil)
	req.SetPathValue("eventID", "abc")
	w := httptest.NewRecorder()

	ctrl.GetEventByID(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_RegisterRSVP_NewGuest(t *testing.T) {
	rsvps := &mockRSVPService{
		guest: &domain.Guest{ID: 7, Name: "Ada Lovelace"},
	}
	ctrl := NewEventController(testLogger(), &mockEventService{}, rsvps)

	req := formRequest(http.MethodPost, "/event/1", url.Values{
		"guest_name": {"Ada Lovelace"},
		"email":      {"ada@example.com"},
		"phone":      {"555-0100"},
	})
	req.SetPathValue("eventID", "1")
	w := httptest.NewRecorder()

	ctrl.RegisterRSVP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/event/1" {
		t.Fatalf("expected redirect to /event/1, got %q", loc)
	}
	if rsvps.gotReturning {
		t.Fatalf("expected new-guest flow when returning is absent")
	}
	if rsvps.gotEventID != 1 || rsvps.gotName != "Ada Lovelace" {
		t.Fatalf("expected form fields to reach the service, got eventID=%d name=%q", rsvps.gotEventID, rsvps.gotName)
	}
	flash := flashMessage(t, w.Result().Cookies())
	if flash != "You have successfully RSVP'd! See you there!" {
		t.Fatalf("unexpected flash message %q", flash)
	}
}

func TestEventController_RegisterRSVP_ReturningFlag(t *testing.T) {
	rsvps := &mockRSVPService{guest: &domain.Guest{ID: 7, Name: "Ada Lovelace"}}
	ctrl := NewEventController(testLogger(), &mockEventService{}, rsvps)

	req := formRequest(http.MethodPost, "/event/1", url.Values{
		"returning":  {"yes"},
		"guest_name": {"Ada Lovelace"},
	})
	req.SetPathValue("eventID", "1")
	w := httptest.NewRecorder()

	ctrl.RegisterRSVP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, w.Code)
	}
	if !rsvps.gotReturning {
		t.Fatalf("expected returning flow when returning field is present")
	}
}

func TestEventController_RegisterRSVP_GuestDoesNotExist(t *testing.T) {
	rsvps := &mockRSVPService{registerErr: services.ErrGuestNotFound}
	ctrl := NewEventController(testLogger(), &mockEventService{}, rsvps)

	req := formRequest(http.MethodPost, "/event/1", url.Values{
		"returning":  {"yes"},
		"guest_name": {"Nobody"},
	})
	req.SetPathValue("eventID", "1")
	w := httptest.NewRecorder()

	ctrl.RegisterRSVP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if !strings.Contains(w.Body.String(), "error, guest does not exist!") {
		t.Fatalf("expected guest-not-found message, got %s", w.Body.String())
	}
}

func TestEventController_RegisterRSVP_EventNotFound(t *testing.T) {
	rsvps := &mockRSVPService{registerErr: domain.ErrNotFound}
	ctrl := NewEventController(testLogger(), &mockEventService{}, rsvps)

	req := formRequest(http.MethodPost, "/event/99", url.Values{
		"guest_name": {"Ada Lovelace"},
	})
	req.SetPathValue("eventID", "99")
	w := httptest.NewRecorder()

	ctrl.RegisterRSVP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_RegisterRSVP_MissingNewGuestName(t *testing.T) {
	ctrl := NewEventController(testLogger(), &mockEventService{}, &mockRSVPService{})

	req := formRequest(http.MethodPost, "/event/1", url.Values{
		"email": {"ada@example.com"},
	})
	req.SetPathValue("eventID", "1")
	w := httptest.NewRecorder()

	ctrl.RegisterRSVP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if !strings.Contains(w.Body.String(), "guest_name is required") {
		t.Fatalf("expected validation message, got %s", w.Body.String())
	}
}

// flashMessage finds and decodes the flash cookie set on a response.
func flashMessage(t *testing.T, cookies []*http.Cookie) string {
	t.Helper()
	for _, c := range cookies {
		if c.Name == "flash" {
			v, err := url.QueryUnescape(c.Value)
			if err != nil {
				t.Fatalf("failed to decode flash cookie: %v", err)
			}
			return v
		}
	}
	t.Fatalf("expected a flash cookie on the response")
	return ""
}
