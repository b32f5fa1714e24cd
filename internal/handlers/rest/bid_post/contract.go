//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_post_test
package bid_post

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
	SubmitBid(ctx context.Context, bid entities.Bid) (*entities.Bid, error)
}
