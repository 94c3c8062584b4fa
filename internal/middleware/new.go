package middleware

import (
	"calendar-gateway/pkg/log"
)

// Middleware bundles the HTTP middlewares and their dependencies.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
