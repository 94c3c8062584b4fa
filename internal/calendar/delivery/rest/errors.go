package rest

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-gateway/internal/calendar"
	"calendar-gateway/pkg/gcal"
	pkgResponse "calendar-gateway/pkg/response"
)

// respondError maps domain and upstream errors to HTTP responses.
// Configuration problems are the caller's to fix (400); provider failures
// surface as bad gateway with the provider's message passed through.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calendar.ErrAPIKeyNotConfigured),
		errors.Is(err, calendar.ErrCalendarIDRequired),
		errors.Is(err, calendar.ErrInvalidDate):
		pkgResponse.Error(c, err, nil)
		return
	}

	var (
		upstream  *gcal.UpstreamError
		transport *gcal.TransportError
		malformed *gcal.MalformedResponseError
	)
	if errors.As(err, &upstream) || errors.As(err, &transport) || errors.As(err, &malformed) {
		pkgResponse.BadGateway(c, err)
		return
	}

	h.l.Errorf(c.Request.Context(), "rest handler: unexpected error: %v", err)
	pkgResponse.InternalError(c, err)
}
