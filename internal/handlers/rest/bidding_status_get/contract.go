//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bidding_status_get_test
package bidding_status_get

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
	BiddingStatus(ctx context.Context, routeID string) (*entities.BiddingStatus, error)
}
