package workers

import (
	"sync"
	"time"

	"listora/logger"
	"listora/models"
	"listora/store"
)

// assetKeys are the partition keys whose changes require a recompute.
var assetKeys = func() map[string]bool {
	keys := make(map[string]bool, len(models.Categories))
	for _, c := range models.Categories {
		keys[c.StorageKey()] = true
	}
	return keys
}()

// StartCountRefresher keeps the assetCounts cache current: it recomputes
// on every asset-partition change and reconciles on a slow ticker in
// case a change was dropped. The returned stop func shuts the worker
// down and releases its subscription.
func StartCountRefresher(s *store.Store, log *logger.Logger, reconcile time.Duration) (stop func()) {
	log = log.With("worker", "CountRefresher")
	changes, cancel := s.Broadcaster().Subscribe()
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(reconcile)
		defer ticker.Stop()
		defer cancel()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				refresh(s, log)
			case change, ok := <-changes:
				if !ok {
					return
				}
				if !assetKeys[change.Key] {
					continue
				}
				refresh(s, log)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

func refresh(s *store.Store, log *logger.Logger) {
	if _, err := s.RecomputeCounts(); err != nil {
		log.Warn("count recompute failed", "error", err)
	}
}
