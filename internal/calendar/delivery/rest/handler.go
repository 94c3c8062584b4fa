package rest

import (
	"github.com/gin-gonic/gin"

	"calendar-gateway/internal/calendar"
	pkgLog "calendar-gateway/pkg/log"
	pkgResponse "calendar-gateway/pkg/response"
)

type handler struct {
	l  pkgLog.Logger
	uc calendar.UseCase
}

// GetEvents lists the canonical events of a calendar window.
// @Summary List calendar events
// @Description Fetch normalized events for a calendar and date range, served from cache when fresh
// @Tags Calendar
// @Produce json
// @Param calendar_id query string true "Calendar ID, share URL, or base64 token"
// @Param start_date query string true "Window start (YYYY-MM-DD or a relative token like today, +1w)"
// @Param end_date query string true "Window end (YYYY-MM-DD or a relative token like today, +1w)"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/events [get]
func (h *handler) GetEvents(c *gin.Context) {
	ctx := c.Request.Context()

	input := calendar.GetEventsInput{
		CalendarID: c.Query("calendar_id"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}

	events, err := h.uc.GetEvents(ctx, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// TestConnection checks calendar reachability with a one-day window.
// @Summary Test calendar connection
// @Tags Calendar
// @Produce json
// @Param calendar_id query string true "Calendar ID, share URL, or base64 token"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/calendar/test [get]
func (h *handler) TestConnection(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.uc.TestConnection(ctx, c.Query("calendar_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{
		"status": "connected",
		"count":  len(events),
	})
}

// ResolveCalendarID normalizes user-entered calendar input.
// @Summary Resolve a calendar identifier
// @Description Extract the canonical calendar ID from a direct ID, share URL, or base64 token
// @Tags Calendar
// @Produce json
// @Param input query string true "Raw calendar input"
// @Success 200 {object} response.Resp
// @Router /api/v1/calendar/id [get]
func (h *handler) ResolveCalendarID(c *gin.Context) {
	pkgResponse.OK(c, gin.H{
		"calendar_id": calendar.ExtractCalendarID(c.Query("input")),
	})
}

// CacheStats reports the cache population.
// @Summary Cache statistics
// @Tags Cache
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/cache/stats [get]
func (h *handler) CacheStats(c *gin.Context) {
	stats, err := h.uc.CacheStats(c.Request.Context())
	if err != nil {
		h.l.Errorf(c.Request.Context(), "rest handler: cache stats failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, stats)
}

// ClearCache drops every cached calendar result.
// @Summary Clear the calendar cache
// @Tags Cache
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/cache [delete]
func (h *handler) ClearCache(c *gin.Context) {
	deleted, err := h.uc.ClearCache(c.Request.Context())
	if err != nil {
		h.l.Errorf(c.Request.Context(), "rest handler: cache clear failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"deleted": deleted})
}
