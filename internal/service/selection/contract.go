//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=selection_test
package selection

import (
	"context"
	"time"

	"bidding/internal/entities"
)

type RouteRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Route, error)
	CloseIfOpen(ctx context.Context, id string) (bool, error)
	GetOpenRouteIDsDepartingBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}

type BidRepository interface {
	ListByRouteIDAndStatus(ctx context.Context, routeID string, status entities.BidStatusType) ([]entities.Bid, error)
	Update(ctx context.Context, bidModify entities.BidModify) (*entities.Bid, error)
	RejectPendingByRouteID(ctx context.Context, routeID string) (int64, error)
}

type Ranker interface {
	RankedBids(ctx context.Context, routeID string) ([]entities.Bid, error)
}

type WindowFactory interface {
	StateAt(route entities.Route, now time.Time) entities.BiddingWindowState
	DepartureCutoff(now time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
