package gcal

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
)

// ReadonlyScope is the OAuth scope needed to read calendars and events.
const ReadonlyScope = "https://www.googleapis.com/auth/calendar.readonly"

// NewHTTPClientFromServiceAccount builds an OAuth2-authenticated HTTP client
// from a Service Account JSON key file. Use it with WithHTTPClient when a
// calendar is not public enough for plain API-key access.
func NewHTTPClientFromServiceAccount(ctx context.Context, credentialsPath string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, ReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	hc := config.Client(ctx)
	hc.Timeout = DefaultTimeout
	return hc, nil
}
