package calendar

import (
	"context"

	"calendar-gateway/internal/cache"
	"calendar-gateway/internal/model"
	"calendar-gateway/pkg/gcal"
)

// UseCase defines the business logic interface for the calendar domain.
type UseCase interface {
	// GetEvents returns the canonical event list for a calendar and date
	// window, serving from cache when possible.
	GetEvents(ctx context.Context, input GetEventsInput) ([]model.CanonicalEvent, error)

	// TestConnection fetches a one-day window anchored on today to verify
	// the calendar is reachable with the configured credentials.
	TestConnection(ctx context.Context, calendarID string) ([]model.CanonicalEvent, error)

	// CacheStats reports the current cache population.
	CacheStats(ctx context.Context) (cache.Stats, error)

	// ClearCache drops every cached calendar result and returns the number
	// of entries removed.
	ClearCache(ctx context.Context) (int, error)
}

// EventFetcher is the upstream capability the use case depends on. The
// gcal.Client satisfies it; tests substitute fakes.
type EventFetcher interface {
	ListEvents(ctx context.Context, req gcal.ListEventsRequest) ([]gcal.Event, error)
	GetEvent(ctx context.Context, calendarID, eventID string) (*gcal.Event, error)
}

// CredentialProvider reports the upstream API credential.
type CredentialProvider interface {
	// APIKey returns the configured API key, empty when the service
	// authenticates another way or not at all.
	APIKey() string
	// Configured reports whether any upstream credential is available.
	Configured() bool
}

// StaticCredentials adapts static configuration to CredentialProvider.
type StaticCredentials struct {
	Key string
	// ServiceAccount is true when an OAuth2 service-account transport is
	// wired into the upstream client instead of an API key.
	ServiceAccount bool
}

func (s StaticCredentials) APIKey() string { return s.Key }

func (s StaticCredentials) Configured() bool { return s.Key != "" || s.ServiceAccount }
