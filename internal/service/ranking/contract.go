//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ranking_test
package ranking

import (
	"context"

	"bidding/internal/entities"
)

type RouteRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Route, error)
}

type BidRepository interface {
	ListByRouteID(ctx context.Context, routeID string) ([]entities.Bid, error)
}
