//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=poller_test
package poller

import (
	"context"

	"bidding/internal/entities"
	"bidding/pkg/logger"
)

type Gateway interface {
	BiddingStatus(ctx context.Context, routeID string) (*entities.BiddingStatus, error)
	RankedBids(ctx context.Context, routeID string) ([]entities.Bid, error)
	OptimalBids(ctx context.Context, routeID string) ([]entities.Bid, error)
}

type Presenter interface {
	Present(snapshot Snapshot)
}

type pollerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
