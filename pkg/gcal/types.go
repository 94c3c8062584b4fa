package gcal

import "time"

// EventTime is the start/end block of a Google Calendar event. Exactly one
// of Date (all-day, bare YYYY-MM-DD) or DateTime (RFC3339) is set.
type EventTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Event is the raw provider event record. Optional fields stay explicit so
// downstream fallback chains can be exhaustive instead of probing a map.
type Event struct {
	ID               string     `json:"id"`
	Status           string     `json:"status,omitempty"`
	Summary          string     `json:"summary,omitempty"`
	Title            string     `json:"title,omitempty"`
	Description      string     `json:"description,omitempty"`
	Location         string     `json:"location,omitempty"`
	HTMLLink         string     `json:"htmlLink,omitempty"`
	BackgroundColor  string     `json:"backgroundColor,omitempty"`
	Start            *EventTime `json:"start,omitempty"`
	End              *EventTime `json:"end,omitempty"`
	RecurringEventID string     `json:"recurringEventId,omitempty"`
}

// ListEventsRequest is the input for listing events within a window.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
}
