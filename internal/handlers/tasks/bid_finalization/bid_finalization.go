package bid_finalization

import (
	"context"
	"time"

	"bidding/pkg/logger"
)

type Service interface {
	FinalizeDueRoutes(ctx context.Context) (int64, error)
}

type BidFinalization struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewBidFinalization(log logger.Logger, service Service, interval time.Duration) *BidFinalization {
	return &BidFinalization{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BidFinalization) TTL() time.Duration {
	return b.interval
}

func (b *BidFinalization) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	finalized, err := b.service.FinalizeDueRoutes(ctxWithTimeout)

	if finalized > 0 {
		b.log.With(
			logger.NewField("finalized_routes", finalized),
		).Info("bid finalization")
	}

	return err
}

func (b *BidFinalization) Info() string {
	return "bid finalization"
}
