package usecase

import (
	"context"
	"time"

	"calendar-gateway/internal/calendar"
	"calendar-gateway/internal/model"
	"calendar-gateway/pkg/datemath"
)

// TestConnection verifies the calendar is reachable by fetching a one-day
// window anchored on the current date. It reuses GetEvents, so a passing
// test also exercises the cache and transform paths.
func (uc *implUseCase) TestConnection(ctx context.Context, calendarID string) ([]model.CanonicalEvent, error) {
	today := time.Now().UTC()

	return uc.GetEvents(ctx, calendar.GetEventsInput{
		CalendarID: calendarID,
		StartDate:  today.Format(datemath.DateLayout),
		EndDate:    today.AddDate(0, 0, 1).Format(datemath.DateLayout),
	})
}
