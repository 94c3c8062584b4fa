package usecase_test

import (
	"context"
	"sync"

	"calendar-gateway/pkg/gcal"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeFetcher is a scriptable upstream for testing. Master lookups run
// concurrently, so the counters are mutex-protected.
type fakeFetcher struct {
	mu sync.Mutex

	listFunc func(req gcal.ListEventsRequest) ([]gcal.Event, error)
	getFunc  func(calendarID, eventID string) (*gcal.Event, error)

	listCalls int
	getCalls  int
	lastList  gcal.ListEventsRequest
}

func (f *fakeFetcher) ListEvents(ctx context.Context, req gcal.ListEventsRequest) ([]gcal.Event, error) {
	f.mu.Lock()
	f.listCalls++
	f.lastList = req
	fn := f.listFunc
	f.mu.Unlock()

	if fn == nil {
		return []gcal.Event{}, nil
	}
	return fn(req)
}

func (f *fakeFetcher) GetEvent(ctx context.Context, calendarID, eventID string) (*gcal.Event, error) {
	f.mu.Lock()
	f.getCalls++
	fn := f.getFunc
	f.mu.Unlock()

	if fn == nil {
		return nil, &gcal.UpstreamError{StatusCode: 404, Message: "Not Found"}
	}
	return fn(calendarID, eventID)
}

func (f *fakeFetcher) stats() (listCalls, getCalls int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.getCalls
}
