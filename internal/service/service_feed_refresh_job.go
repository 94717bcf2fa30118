package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/models"
)

// DefaultFeedRefreshInterval is used when a non-positive interval is given.
const DefaultFeedRefreshInterval = 10 * time.Minute

type feedRefreshJob struct {
	catalog  CatalogService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFeedRefreshJob creates a job that calls catalog.Refresh for every
// category on a ticker. The job is idle until Start or Run is called.
func NewFeedRefreshJob(catalog CatalogService, interval time.Duration, logger *logger.Logger) FeedRefreshJob {
	return &feedRefreshJob{catalog: catalog, interval: interval, logger: logger}
}

// Start implements FeedRefreshJob. It stops any previously running job, then
// launches a goroutine that refreshes all categories every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *feedRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultFeedRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refreshAll(jobCtx)
			}
		}
	}()
}

func (j *feedRefreshJob) refreshAll(ctx context.Context) {
	for _, category := range models.Categories {
		if ctx.Err() != nil {
			return
		}
		if err := j.catalog.Refresh(ctx, category); err != nil {
			j.logger.Warn().Err(err).Str("category", string(category)).Msg("background feed refresh failed")
		}
	}
}

// Stop implements FeedRefreshJob. Safe to call when the job is not running.
func (j *feedRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements workers.Worker.
func (j *feedRefreshJob) Run() {
	j.Start(context.Background(), j.interval)
}
