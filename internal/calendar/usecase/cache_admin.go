package usecase

import (
	"context"

	"calendar-gateway/internal/cache"
)

// CacheStats reports the current cache population.
func (uc *implUseCase) CacheStats(ctx context.Context) (cache.Stats, error) {
	return uc.store.Stats()
}

// ClearCache drops every cached calendar result.
func (uc *implUseCase) ClearCache(ctx context.Context) (int, error) {
	deleted, err := uc.store.ClearAll()
	if err != nil {
		uc.l.Errorf(ctx, "ClearCache: bulk clear failed: %v", err)
		return 0, err
	}
	uc.l.Infof(ctx, "ClearCache: removed %d cached entries", deleted)
	return deleted, nil
}
