package calendar

import "errors"

// Domain-specific errors for the calendar package. Upstream transport and
// API errors are defined in pkg/gcal.
var (
	ErrAPIKeyNotConfigured = errors.New("google calendar api key is not configured")
	ErrCalendarIDRequired  = errors.New("calendar id is required")
	ErrInvalidDate         = errors.New("dates must be in YYYY-MM-DD format")
)
