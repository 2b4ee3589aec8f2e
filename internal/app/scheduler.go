package app

import (
	"context"
	"sync"
	"time"

	"github.com/tleaf/barnview/internal/chamber"
	"github.com/tleaf/barnview/internal/logger"
	"github.com/tleaf/barnview/internal/state"
)

const defaultPollInterval = 3 * time.Second

// Scheduler drives the repeating refresh cycle. It alternates between two
// states: idle (waiting for the next tick or an immediate-refresh signal)
// and refreshing (one cycle in flight). Cycles never overlap, so the
// controller sees at most one poll at a time.
type Scheduler struct {
	cache    *state.Cache
	store    *state.Store
	log      *logger.Logger
	interval time.Duration
	settle   time.Duration

	refreshCh chan struct{}

	mu     sync.Mutex
	client chamber.API
}

// NewScheduler builds a Scheduler. interval is the natural cadence (and the
// cache freshness window); settle is the pause inserted before a
// command-triggered refresh so the re-poll cannot read pre-command state.
func NewScheduler(client chamber.API, cache *state.Cache, store *state.Store, log *logger.Logger, interval, settle time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		cache:     cache,
		store:     store,
		log:       log,
		interval:  interval,
		settle:    settle,
		refreshCh: make(chan struct{}, 1),
		client:    client,
	}
}

// Run executes the refresh loop until ctx is cancelled. The loop never
// terminates itself: a failed cycle is recorded and the next tick retries.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCycle(ctx, false)
		case <-s.refreshCh:
			// Let the controller apply the command before re-reading it;
			// an instant re-poll can observe pre-command state.
			if !sleepCtx(ctx, s.settle) {
				return
			}
			s.runCycle(ctx, true)
		}
	}
}

// RequestRefresh signals an out-of-band refresh. Non-blocking; coalesces
// with a signal already pending.
func (s *Scheduler) RequestRefresh() {
	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
}

// RunCycle performs one immediate cycle. The app uses it to populate the
// store before the UI starts.
func (s *Scheduler) RunCycle(ctx context.Context) {
	s.runCycle(ctx, false)
}

// SetClient retargets the scheduler and cache at a different controller,
// for live host changes from the UI.
func (s *Scheduler) SetClient(client chamber.API) {
	s.mu.Lock()
	s.client = client
	s.mu.Unlock()
	s.cache.SetClient(client)
}

func (s *Scheduler) currentClient() chamber.API {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// runCycle fetches status and trend concurrently, waits for both, and
// publishes the results. The two halves fail independently.
func (s *Scheduler) runCycle(ctx context.Context, forced bool) {
	client := s.currentClient()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		if forced {
			_, err = s.cache.Refresh(ctx)
		} else {
			_, err = s.cache.Status(ctx)
		}
		if err != nil {
			s.log.Warnw("status poll failed", "error", err)
		}
	}()

	go func() {
		defer wg.Done()
		trend, err := client.FetchTrend(ctx)
		s.store.SetTrend(trend, err)
		if err != nil {
			s.log.Warnw("trend poll failed", "error", err)
		}
	}()

	wg.Wait()
}

// sleepCtx sleeps for d unless ctx is cancelled first. Returns false on
// cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
