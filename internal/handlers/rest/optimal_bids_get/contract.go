//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=optimal_bids_get_test
package optimal_bids_get

import (
	"context"

	"bidding/internal/entities"
	"bidding/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	OptimalBids(ctx context.Context, routeID string) ([]entities.Bid, error)
}
