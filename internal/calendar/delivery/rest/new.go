package rest

import (
	"github.com/gin-gonic/gin"

	"calendar-gateway/internal/calendar"
	pkgLog "calendar-gateway/pkg/log"
)

// Handler is the interface for the calendar REST delivery handler.
type Handler interface {
	GetEvents(c *gin.Context)
	TestConnection(c *gin.Context)
	ResolveCalendarID(c *gin.Context)
	CacheStats(c *gin.Context)
	ClearCache(c *gin.Context)
}

// New creates a new calendar REST delivery handler.
func New(l pkgLog.Logger, uc calendar.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
