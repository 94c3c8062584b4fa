package calendar

// GetEventsInput is the input for fetching a calendar window.
type GetEventsInput struct {
	// CalendarID is a calendar identifier, share URL, or base64 token; it
	// is normalized through ExtractCalendarID before use.
	CalendarID string
	StartDate  string // YYYY-MM-DD or a relative token ("today", "+1w")
	EndDate    string // YYYY-MM-DD or a relative token ("today", "+1w")
}
