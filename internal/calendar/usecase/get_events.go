package usecase

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"calendar-gateway/internal/cache"
	"calendar-gateway/internal/calendar"
	"calendar-gateway/internal/model"
	"calendar-gateway/pkg/datemath"
	"calendar-gateway/pkg/gcal"
)

const cacheKeyPrefix = "gcal_events_"

// eventsCacheKey derives the cache key for one query. Identical triples
// always hash to the same key.
func eventsCacheKey(calendarID, startDate, endDate string) string {
	sum := md5.Sum([]byte(calendarID + startDate + endDate))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// GetEvents returns the canonical event list for a calendar and date window.
// Cached results are served directly; on a miss the provider is queried once
// (no retries) and only successful transforms are written back to the cache.
func (uc *implUseCase) GetEvents(ctx context.Context, input calendar.GetEventsInput) ([]model.CanonicalEvent, error) {
	if !uc.creds.Configured() {
		return nil, calendar.ErrAPIKeyNotConfigured
	}

	calendarID := calendar.ExtractCalendarID(input.CalendarID)
	if calendarID == "" {
		return nil, calendar.ErrCalendarIDRequired
	}

	timeMin, err := datemath.Resolve(input.StartDate, time.Now())
	if err != nil {
		return nil, calendar.ErrInvalidDate
	}
	timeMax, err := datemath.Resolve(input.EndDate, time.Now())
	if err != nil {
		return nil, calendar.ErrInvalidDate
	}

	// Relative tokens resolve to a different date tomorrow, so the key is
	// derived from the resolved dates rather than the raw inputs.
	startDate := timeMin.Format(datemath.DateLayout)
	endDate := timeMax.Format(datemath.DateLayout)

	key := eventsCacheKey(calendarID, startDate, endDate)
	if raw, ok := uc.store.Get(key); ok {
		var events []model.CanonicalEvent
		if err := json.Unmarshal(raw, &events); err == nil {
			uc.l.Debugf(ctx, "GetEvents: cache hit for %s [%s..%s]", calendarID, startDate, endDate)
			return events, nil
		}
		uc.l.Warnf(ctx, "GetEvents: dropping corrupt cache entry %s: %v", key, err)
		_ = uc.store.Delete(key)
	}

	rawEvents, err := uc.fetcher.ListEvents(ctx, gcal.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    timeMin,
		TimeMax:    timeMax,
	})
	if err != nil {
		// Failures surface immediately and are never cached.
		uc.l.Errorf(ctx, "GetEvents: upstream fetch failed for %s: %v", calendarID, err)
		return nil, err
	}

	events := uc.transformEvents(ctx, rawEvents, calendarID)

	payload, err := json.Marshal(events)
	if err != nil {
		uc.l.Errorf(ctx, "GetEvents: failed to serialize events for caching: %v", err)
		return events, nil
	}
	if err := uc.store.Set(key, payload, cache.DefaultTTL); err != nil {
		uc.l.Warnf(ctx, "GetEvents: cache write failed for %s: %v", key, err)
	}

	uc.l.Infof(ctx, "GetEvents: fetched %d events for %s [%s..%s]", len(events), calendarID, startDate, endDate)
	return events, nil
}
