package bidding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"bidding/internal/dto"
	"bidding/internal/entities"
	retrierconfig "bidding/pkg/retrier"
	"bidding/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "bidding-api"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// errDecodeResponse помечает битое тело ответа, повторный запрос бессмысленен
var errDecodeResponse = errors.New("decode response")

type statusCodeError struct {
	code int
}

func (e *statusCodeError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.code)
}

type Gateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
}

func New(baseURL string, client httpDoer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		baseURL: baseURL,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) BiddingStatus(ctx context.Context, routeID string) (*entities.BiddingStatus, error) {
	var statusDTO dto.BiddingStatus
	requestedAt := time.Now().UTC()

	err := g.executeWithMetrics(ctx, "BiddingStatus", func(ctx context.Context) error {
		return g.getJSON(ctx, fmt.Sprintf("%s/routes/%s/bidding-status", g.baseURL, routeID), &statusDTO)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway bidding, get status: %s: %w", routeID, err)
	}

	return &entities.BiddingStatus{
		RouteID:             routeID,
		DepartureTime:       statusDTO.DepartureTime,
		BiddingEndTime:      requestedAt.Add(time.Duration(statusDTO.TimeUntilBiddingEnd * float64(time.Minute))),
		BiddingActive:       statusDTO.BiddingActive,
		BiddingEnded:        statusDTO.BiddingEnded,
		TimeUntilBiddingEnd: statusDTO.TimeUntilBiddingEnd,
		PendingBids:         statusDTO.PendingBids,
		AcceptedBids:        statusDTO.AcceptedBids,
	}, nil
}

func (g *Gateway) RankedBids(ctx context.Context, routeID string) ([]entities.Bid, error) {
	var response dto.RankedBidsResponse

	err := g.executeWithMetrics(ctx, "RankedBids", func(ctx context.Context) error {
		return g.getJSON(ctx, fmt.Sprintf("%s/routes/%s/ranked-bids", g.baseURL, routeID), &response)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway bidding, get ranked bids: %s: %w", routeID, err)
	}

	return toDomainBidList(response.RankedBids), nil
}

func (g *Gateway) OptimalBids(ctx context.Context, routeID string) ([]entities.Bid, error) {
	var response dto.OptimalBidsResponse

	err := g.executeWithMetrics(ctx, "OptimalBids", func(ctx context.Context) error {
		return g.getJSON(ctx, fmt.Sprintf("%s/routes/%s/optimal-bids", g.baseURL, routeID), &response)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway bidding, get optimal bids: %s: %w", routeID, err)
	}

	return toDomainBidList(response.OptimalBids), nil
}

func (g *Gateway) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &statusCodeError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", errDecodeResponse, err)
	}
	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var codeErr *statusCodeError
	if errors.As(err, &codeErr) {
		return codeErr.code == http.StatusTooManyRequests || codeErr.code >= http.StatusInternalServerError
	}

	if errors.Is(err, errDecodeResponse) {
		return false
	}

	// сетевые ошибки ретраим, отмену контекста нет
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}

	var codeErr *statusCodeError
	if errors.As(err, &codeErr) {
		return strconv.Itoa(codeErr.code)
	}
	return "unknown"
}
