package worker

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/londonlets/api/internal/infra/http/middleware"
	"github.com/londonlets/api/internal/usecase"
)

// PublishRunner is the pipeline behind the schedule. Satisfied by
// usecase.PublishListingsUseCase.
type PublishRunner interface {
	Execute(ctx context.Context) usecase.PublishResult
}

// PublisherWorker triggers the publishing pipeline on a recurring
// cadence: every hour outside production, daily at a fixed UTC hour in
// production. No run state is persisted; a restart re-arms the schedule
// from scratch.
type PublisherWorker struct {
	// SingleFlight, when set, makes overlapping triggers (timer vs the
	// manual admin endpoint) skip instead of interleave. Off by default.
	SingleFlight bool

	runner      PublishRunner
	interval    time.Duration
	dailyAtHour int // UTC; -1 means interval-only
	running     atomic.Bool
}

const productionRunHourUTC = 2

func NewPublisherWorker(runner PublishRunner, production bool) *PublisherWorker {
	w := &PublisherWorker{
		runner:      runner,
		interval:    time.Hour,
		dailyAtHour: -1,
	}
	if production {
		w.interval = 24 * time.Hour
		w.dailyAtHour = productionRunHourUTC
	}
	return w
}

func (w *PublisherWorker) Start(ctx context.Context) {
	if w.dailyAtHour >= 0 {
		delay := w.delayUntilTargetHour(time.Now().UTC())
		log.Printf("🕒 [Scheduler] first publishing run in %s (daily at %02d:00 UTC)",
			delay.Round(time.Second), w.dailyAtHour)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		w.RunNow(ctx)
	} else {
		log.Printf("🕒 [Scheduler] publishing run every %s", w.interval)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ [Scheduler] publisher worker stopped")
			return
		case <-ticker.C:
			w.RunNow(ctx)
		}
	}
}

// RunNow triggers one pipeline run. The manual admin endpoint calls this
// directly, independent of the timer.
func (w *PublisherWorker) RunNow(ctx context.Context) usecase.PublishResult {
	if w.SingleFlight {
		if !w.running.CompareAndSwap(false, true) {
			log.Println("[Scheduler] publishing run already in progress, skipping")
			return usecase.PublishResult{Success: false, Error: "publishing run already in progress"}
		}
		defer w.running.Store(false)
	}

	result := w.runner.Execute(ctx)
	middleware.RecordPublishingRun(result.Success, result.Published)
	return result
}

func (w *PublisherWorker) delayUntilTargetHour(now time.Time) time.Duration {
	target := time.Date(now.Year(), now.Month(), now.Day(), w.dailyAtHour, 0, 0, 0, time.UTC)
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Sub(now)
}
