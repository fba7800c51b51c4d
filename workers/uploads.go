package workers

import (
	"sync"
	"time"

	"listora/logger"
	"listora/models"
	"listora/store"
)

// UploadProcessor completes upload intake after a fixed processing
// delay. The delay is a deferred completion, not real I/O: the timer
// source is injectable so tests resolve it immediately instead of
// sleeping. There is no cancellation; an enqueued completion always
// runs.
type UploadProcessor struct {
	store *store.Store
	log   *logger.Logger
	delay time.Duration
	after func(time.Duration) <-chan time.Time
	wg    sync.WaitGroup
}

func NewUploadProcessor(s *store.Store, log *logger.Logger, delay time.Duration, after func(time.Duration) <-chan time.Time) *UploadProcessor {
	if after == nil {
		after = time.After
	}
	return &UploadProcessor{
		store: s,
		log:   log.With("worker", "UploadProcessor"),
		delay: delay,
		after: after,
	}
}

// Enqueue schedules the processing completion for an uploaded asset:
// once the delay resolves, the asset's processing flag is cleared. A
// vanished asset (deleted mid-processing) is a silent no-op, same as any
// other late mutation.
func (p *UploadProcessor) Enqueue(category models.Category, id string) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		<-p.after(p.delay)

		processing := false
		_, changed, err := p.store.UpdateAsset(category, id, store.AssetPatch{Processing: &processing})
		if err != nil {
			p.log.Warn("upload completion failed", "category", category, "id", id, "error", err)
			return
		}
		if changed {
			p.log.Debug("upload processed", "category", category, "id", id)
		}
	}()
}

// Wait blocks until every enqueued completion has run. Used in tests and
// on shutdown.
func (p *UploadProcessor) Wait() {
	p.wg.Wait()
}
