package poller

import (
	"context"
	"sync"
	"time"

	"bidding/internal/entities"
	"bidding/pkg/logger"
)

// Snapshot is what the presenter sees after every refresh or countdown tick.
// Ranked and optimal lists are best-effort: their fetch failures degrade to
// empty lists, only a status fetch failure is surfaced via StatusErr.
type Snapshot struct {
	RouteID      string
	Status       *entities.BiddingStatus
	StatusErr    error
	RankedBids   []entities.Bid
	OptimalBids  []entities.Bid
	TimeUntilEnd time.Duration
}

// Poller watches one route's bidding. A full refresh runs on the refresh
// interval, the countdown ticks locally from the last fetched deadline
// without touching the network. Overlapping refreshes are suppressed and
// responses for a previously watched route are discarded.
type Poller struct {
	gateway           Gateway
	presenter         Presenter
	log               pollerLogger
	refreshInterval   time.Duration
	countdownInterval time.Duration

	mu               sync.Mutex
	routeID          string
	generation       uint64
	refreshing       bool
	status           *entities.BiddingStatus
	ranked           []entities.Bid
	optimal          []entities.Bid
	deadline         time.Time
	endedRefetchDone bool

	switched  chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func New(
	gateway Gateway,
	presenter Presenter,
	log pollerLogger,
	routeID string,
	refreshInterval time.Duration,
	countdownInterval time.Duration,
) *Poller {
	return &Poller{
		gateway:           gateway,
		presenter:         presenter,
		log:               log.With(logger.NewField("component", "poller")),
		refreshInterval:   refreshInterval,
		countdownInterval: countdownInterval,
		routeID:           routeID,
		switched:          make(chan struct{}, 1),
		done:              make(chan struct{}),
	}
}

// Run blocks until ctx is cancelled or Close is called. Both tickers are
// stopped on every exit path.
func (p *Poller) Run(ctx context.Context) error {
	refreshTicker := time.NewTicker(p.refreshInterval)
	defer refreshTicker.Stop()

	countdownTicker := time.NewTicker(p.countdownInterval)
	defer countdownTicker.Stop()

	if err := p.RefreshOnce(ctx); err != nil {
		p.log.With(
			logger.NewField("error", err),
		).Warn("initial refresh failed")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.done:
			return nil
		case <-p.switched:
			p.refresh(ctx)
		case <-refreshTicker.C:
			p.refresh(ctx)
		case <-countdownTicker.C:
			p.tick(ctx)
		}
	}
}

// SwitchRoute changes the watched route. In-flight responses for the old
// route are discarded via the generation counter.
func (p *Poller) SwitchRoute(routeID string) {
	p.mu.Lock()
	p.routeID = routeID
	p.generation++
	p.status = nil
	p.ranked = nil
	p.optimal = nil
	p.deadline = time.Time{}
	p.endedRefetchDone = false
	p.mu.Unlock()

	select {
	case p.switched <- struct{}{}:
	default:
	}
}

func (p *Poller) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}

// RefreshOnce performs a single full refresh cycle: status first, then the
// bid lists, skipped entirely while the route has no bids at all.
func (p *Poller) RefreshOnce(ctx context.Context) error {
	p.mu.Lock()
	if p.refreshing {
		// предыдущий refresh еще в полете
		p.mu.Unlock()
		return nil
	}
	p.refreshing = true
	gen := p.generation
	routeID := p.routeID
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.refreshing = false
		p.mu.Unlock()
	}()

	status, err := p.gateway.BiddingStatus(ctx, routeID)
	if err != nil {
		p.present(gen, Snapshot{RouteID: routeID, StatusErr: err})
		return err
	}

	ranked := []entities.Bid{}
	optimal := []entities.Bid{}
	if status.PendingBids+status.AcceptedBids > 0 {
		ranked = p.fetchRanked(ctx, routeID)
		if status.BiddingEnded {
			optimal = p.fetchOptimal(ctx, routeID)
		}
	}

	p.mu.Lock()
	if gen != p.generation {
		// ответ для уже не наблюдаемого маршрута
		p.mu.Unlock()
		return nil
	}
	p.status = status
	p.ranked = ranked
	p.optimal = optimal
	p.deadline = status.BiddingEndTime
	if status.BiddingActive {
		p.endedRefetchDone = false
	}
	p.mu.Unlock()

	p.present(gen, Snapshot{
		RouteID:      routeID,
		Status:       status,
		RankedBids:   ranked,
		OptimalBids:  optimal,
		TimeUntilEnd: time.Duration(status.TimeUntilBiddingEnd * float64(time.Minute)),
	})
	return nil
}

func (p *Poller) fetchRanked(ctx context.Context, routeID string) []entities.Bid {
	ranked, err := p.gateway.RankedBids(ctx, routeID)
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
		).Warn("ranked bids fetch failed, treating as empty")
		return []entities.Bid{}
	}
	return ranked
}

func (p *Poller) fetchOptimal(ctx context.Context, routeID string) []entities.Bid {
	optimal, err := p.gateway.OptimalBids(ctx, routeID)
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
		).Warn("optimal bids fetch failed, treating as empty")
		return []entities.Bid{}
	}
	return optimal
}

func (p *Poller) refresh(ctx context.Context) {
	go func() {
		if err := p.RefreshOnce(ctx); err != nil {
			p.log.With(
				logger.NewField("error", err),
			).Warn("refresh failed")
		}
	}()
}

// tick recomputes the countdown from the cached deadline. Crossing zero
// while the window was active triggers exactly one immediate refetch to
// pick up finalized winners.
func (p *Poller) tick(ctx context.Context) {
	p.mu.Lock()
	status := p.status
	if status == nil {
		p.mu.Unlock()
		return
	}

	gen := p.generation
	routeID := p.routeID
	remaining := time.Until(p.deadline)
	if remaining < 0 {
		remaining = 0
	}

	refetch := status.BiddingActive && remaining == 0 && !p.endedRefetchDone
	if refetch {
		p.endedRefetchDone = true
	}
	ranked := p.ranked
	optimal := p.optimal
	p.mu.Unlock()

	p.present(gen, Snapshot{
		RouteID:      routeID,
		Status:       status,
		RankedBids:   ranked,
		OptimalBids:  optimal,
		TimeUntilEnd: remaining,
	})

	if refetch {
		p.refresh(ctx)
	}
}

func (p *Poller) present(gen uint64, snapshot Snapshot) {
	p.mu.Lock()
	stale := gen != p.generation
	p.mu.Unlock()
	if stale {
		return
	}

	p.presenter.Present(snapshot)
}
