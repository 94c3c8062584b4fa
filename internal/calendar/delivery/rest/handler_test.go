package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-gateway/internal/cache"
	"calendar-gateway/internal/calendar"
	"calendar-gateway/internal/calendar/delivery/rest"
	"calendar-gateway/internal/model"
	"calendar-gateway/pkg/gcal"
	"calendar-gateway/pkg/response"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                 {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}

type fakeUseCase struct {
	events    []model.CanonicalEvent
	eventsErr error
	stats     cache.Stats
	statsErr  error
	cleared   int
	clearErr  error
}

func (f *fakeUseCase) GetEvents(ctx context.Context, input calendar.GetEventsInput) ([]model.CanonicalEvent, error) {
	return f.events, f.eventsErr
}

func (f *fakeUseCase) TestConnection(ctx context.Context, calendarID string) ([]model.CanonicalEvent, error) {
	return f.events, f.eventsErr
}

func (f *fakeUseCase) CacheStats(ctx context.Context) (cache.Stats, error) {
	return f.stats, f.statsErr
}

func (f *fakeUseCase) ClearCache(ctx context.Context) (int, error) {
	return f.cleared, f.clearErr
}

func serveRequest(t *testing.T, uc calendar.UseCase, method, target string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	h := rest.New(mockLogger{}, uc)

	router := gin.New()
	router.GET("/api/v1/events", h.GetEvents)
	router.GET("/api/v1/calendar/id", h.ResolveCalendarID)
	router.GET("/api/v1/calendar/test", h.TestConnection)
	router.GET("/api/v1/cache/stats", h.CacheStats)
	router.DELETE("/api/v1/cache", h.ClearCache)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("undecodable response body %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestGetEventsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &fakeUseCase{events: []model.CanonicalEvent{
			{ID: "ev1", Title: "Planning", Start: "2024-03-05T10:00:00Z"},
		}}

		w, resp := serveRequest(t, uc, http.MethodGet,
			"/api/v1/events?calendar_id=user@example.com&start_date=2024-03-01&end_date=2024-03-31")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data, ok := resp.Data.(map[string]any)
		if !ok {
			t.Fatalf("unexpected data %v", resp.Data)
		}
		if data["count"] != float64(1) {
			t.Errorf("expected count 1, got %v", data["count"])
		}
	})

	t.Run("Domain Errors Are Bad Requests", func(t *testing.T) {
		for _, err := range []error{
			calendar.ErrAPIKeyNotConfigured,
			calendar.ErrCalendarIDRequired,
			calendar.ErrInvalidDate,
		} {
			uc := &fakeUseCase{eventsErr: err}
			w, resp := serveRequest(t, uc, http.MethodGet, "/api/v1/events")

			if w.Code != http.StatusBadRequest {
				t.Errorf("%v: expected 400, got %d", err, w.Code)
			}
			if resp.Message != err.Error() {
				t.Errorf("%v: expected message passthrough, got %q", err, resp.Message)
			}
		}
	})

	t.Run("Upstream Errors Are Bad Gateway", func(t *testing.T) {
		uc := &fakeUseCase{eventsErr: &gcal.UpstreamError{StatusCode: 403, Message: "API key not valid"}}
		w, resp := serveRequest(t, uc, http.MethodGet, "/api/v1/events")

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if resp.Message != "API Error 403: API key not valid" {
			t.Errorf("expected provider message passthrough, got %q", resp.Message)
		}
	})

	t.Run("Transport Errors Are Bad Gateway", func(t *testing.T) {
		uc := &fakeUseCase{eventsErr: &gcal.TransportError{Err: context.DeadlineExceeded}}
		w, _ := serveRequest(t, uc, http.MethodGet, "/api/v1/events")

		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})
}

func TestResolveCalendarIDHandler(t *testing.T) {
	w, resp := serveRequest(t, &fakeUseCase{}, http.MethodGet,
		"/api/v1/calendar/id?input=https%3A%2F%2Fcalendar.google.com%2Fcalendar%2Fembed%3Fcid%3DdXNlckBleGFtcGxlLmNvbQ%3D%3D")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := resp.Data.(map[string]any)
	if data["calendar_id"] != "user@example.com" {
		t.Errorf("expected resolved id, got %v", data["calendar_id"])
	}
}

func TestCacheHandlers(t *testing.T) {
	t.Run("Stats", func(t *testing.T) {
		uc := &fakeUseCase{stats: cache.Stats{TotalCached: 3, Prefix: "gcal_events_"}}
		w, resp := serveRequest(t, uc, http.MethodGet, "/api/v1/cache/stats")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := resp.Data.(map[string]any)
		if data["total_cached"] != float64(3) || data["prefix"] != "gcal_events_" {
			t.Errorf("unexpected stats payload %v", data)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		uc := &fakeUseCase{cleared: 2}
		w, resp := serveRequest(t, uc, http.MethodDelete, "/api/v1/cache")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := resp.Data.(map[string]any)
		if data["deleted"] != float64(2) {
			t.Errorf("expected 2 deleted, got %v", data["deleted"])
		}
	})
}
