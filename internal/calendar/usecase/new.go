package usecase

import (
	"calendar-gateway/internal/cache"
	"calendar-gateway/internal/calendar"
	pkgLog "calendar-gateway/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	creds   calendar.CredentialProvider
	fetcher calendar.EventFetcher
	store   cache.Store
}

// New creates a new calendar UseCase instance.
func New(
	l pkgLog.Logger,
	creds calendar.CredentialProvider,
	fetcher calendar.EventFetcher,
	store cache.Store,
) *implUseCase {
	return &implUseCase{
		l:       l,
		creds:   creds,
		fetcher: fetcher,
		store:   store,
	}
}
