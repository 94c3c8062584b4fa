package model

// DefaultEventColor is the accent color applied when the provider does not
// supply one.
const DefaultEventColor = "#3b82f6"

// CanonicalEvent is the normalized, renderer-ready representation of a
// calendar event. Field names follow the FullCalendar event object so the
// list can be handed to a calendar widget unchanged.
type CanonicalEvent struct {
	ID     string `json:"id"`
	Title  string `json:"title"` // never empty, see the transform fallback chain
	Start  string `json:"start"` // ISO-8601, bare date for all-day events
	End    string `json:"end,omitempty"`
	AllDay bool   `json:"allDay"`

	Description     string `json:"description"`
	Location        string `json:"location"`
	URL             string `json:"url"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`

	// Raw provider fields preserved for diagnostics.
	OriginalSummary string `json:"originalSummary"`
	OriginalTitle   string `json:"originalTitle"`
}
