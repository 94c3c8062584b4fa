package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"calendar-gateway/internal/model"
	"calendar-gateway/pkg/datemath"
	"calendar-gateway/pkg/gcal"
)

// recurringInstanceID matches provider IDs of recurring-event instances,
// e.g. "abc123_20240115T090000Z". The first group is the series base ID.
var recurringInstanceID = regexp.MustCompile(`^(.+)_\d{8}T\d{6}Z$`)

const (
	// maxLookupConcurrency bounds concurrent master-event lookups.
	maxLookupConcurrency = 4

	// titleSnippetLen is how much of a description is promoted into a
	// missing title.
	titleSnippetLen = 50
)

// transformEvents converts raw provider events into canonical events, in
// original order. Recurring instances inherit the title of their series
// master when a secondary lookup can resolve it; each raw event is emitted
// at most once.
func (uc *implUseCase) transformEvents(ctx context.Context, rawEvents []gcal.Event, calendarID string) []model.CanonicalEvent {
	events := make([]model.CanonicalEvent, 0, len(rawEvents))
	if len(rawEvents) == 0 {
		return events
	}

	// Distinct series IDs, first-seen order.
	seen := make(map[string]bool)
	var baseIDs []string
	for _, ev := range rawEvents {
		if m := recurringInstanceID.FindStringSubmatch(ev.ID); m != nil && !seen[m[1]] {
			seen[m[1]] = true
			baseIDs = append(baseIDs, m[1])
		}
	}

	masterTitles := uc.resolveMasterTitles(ctx, calendarID, baseIDs)

	for _, ev := range rawEvents {
		if m := recurringInstanceID.FindStringSubmatch(ev.ID); m != nil {
			if title, ok := masterTitles[m[1]]; ok {
				ev.Summary = title
			}
		}
		if canonical, ok := transformSingleEvent(ev); ok {
			events = append(events, canonical)
		}
	}
	return events
}

// resolveMasterTitles looks up each series master and collects its summary.
// Lookups are independent, so they run concurrently with a small bound.
// Failures are soft: the instance keeps its own title.
func (uc *implUseCase) resolveMasterTitles(ctx context.Context, calendarID string, baseIDs []string) map[string]string {
	titles := make(map[string]string, len(baseIDs))
	if len(baseIDs) == 0 {
		return titles
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLookupConcurrency)

	for _, baseID := range baseIDs {
		baseID := baseID // per-iteration copy; required under go < 1.22 loop semantics
		g.Go(func() error {
			master, err := uc.fetcher.GetEvent(gctx, calendarID, baseID)
			if err != nil {
				uc.l.Warnf(gctx, "resolveMasterTitles: lookup failed for %s: %v", baseID, err)
				return nil
			}
			if master != nil && master.Summary != "" {
				mu.Lock()
				titles[baseID] = master.Summary
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return titles
}

// transformSingleEvent maps one provider event to the canonical model. The
// second return value is false for events without a usable start, which are
// dropped.
func transformSingleEvent(ev gcal.Event) (model.CanonicalEvent, bool) {
	if ev.Start == nil {
		return model.CanonicalEvent{}, false
	}

	start := ev.Start.DateTime
	if start == "" {
		start = ev.Start.Date
	}
	if start == "" {
		return model.CanonicalEvent{}, false
	}
	allDay := ev.Start.Date != "" && ev.Start.DateTime == ""

	var end string
	if ev.End != nil {
		end = ev.End.DateTime
		if end == "" {
			end = ev.End.Date
		}
	}

	background := ev.BackgroundColor
	if background == "" {
		background = model.DefaultEventColor
	}

	return model.CanonicalEvent{
		ID:              ev.ID,
		Title:           eventTitle(ev, start),
		Start:           start,
		End:             end,
		AllDay:          allDay,
		Description:     ev.Description,
		Location:        ev.Location,
		URL:             ev.HTMLLink,
		BackgroundColor: background,
		BorderColor:     background,
		OriginalSummary: ev.Summary,
		OriginalTitle:   ev.Title,
	}, true
}

// eventTitle resolves the display title through the fallback chain:
// summary, title, truncated description, synthesized from the start time.
func eventTitle(ev gcal.Event, start string) string {
	if ev.Summary != "" {
		return ev.Summary
	}
	if ev.Title != "" {
		return ev.Title
	}
	if ev.Description != "" {
		runes := []rune(ev.Description)
		if len(runes) > titleSnippetLen {
			return string(runes[:titleSnippetLen]) + "..."
		}
		return ev.Description
	}
	return fallbackTitle(start)
}

func fallbackTitle(start string) string {
	t, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t, err = time.Parse(datemath.DateLayout, start)
	}
	if err != nil {
		return "Untitled Event"
	}
	return fmt.Sprintf("Event on %s at %s", t.Format("Jan 2"), t.Format("3:04 PM"))
}
