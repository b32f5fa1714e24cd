package poller

import (
	"time"

	"bidding/pkg/logger"
)

// LogPresenter выводит каждый снапшот одной структурированной строкой.
type LogPresenter struct {
	log pollerLogger
}

func NewLogPresenter(log logger.Logger) *LogPresenter {
	return &LogPresenter{
		log: log.With(logger.NewField("component", "presenter")),
	}
}

func (p *LogPresenter) Present(snapshot Snapshot) {
	if snapshot.StatusErr != nil {
		p.log.With(
			logger.NewField("route_id", snapshot.RouteID),
			logger.NewField("error", snapshot.StatusErr),
		).Error("bidding status unavailable")
		return
	}

	if snapshot.Status == nil {
		return
	}

	snapshotLog := p.log.With(
		logger.NewField("route_id", snapshot.RouteID),
		logger.NewField("bidding_active", snapshot.Status.BiddingActive),
		logger.NewField("bidding_ended", snapshot.Status.BiddingEnded),
		logger.NewField("time_until_end", snapshot.TimeUntilEnd.Round(time.Second).String()),
		logger.NewField("pending_bids", snapshot.Status.PendingBids),
		logger.NewField("accepted_bids", snapshot.Status.AcceptedBids),
		logger.NewField("ranked_bids", len(snapshot.RankedBids)),
	)
	snapshotLog.Info("bidding snapshot")

	if !snapshot.Status.BiddingEnded {
		return
	}

	for _, winner := range snapshot.OptimalBids {
		p.log.With(
			logger.NewField("route_id", snapshot.RouteID),
			logger.NewField("bid_id", winner.ID),
			logger.NewField("request_id", winner.RequestID),
			logger.NewField("offered_price", winner.OfferedPrice),
			logger.NewField("score", winner.Score),
		).Info("winning bid")
	}
}
