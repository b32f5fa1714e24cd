package bid

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"bidding/internal/entities"
	"bidding/internal/repository"
	"bidding/internal/service/bid"
	"bidding/internal/service/route"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bidColumns = `id, route_id, request_id, offered_price, weight_kg, volume_m3,
		pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
		pickup_location, delivery_location, description,
		customer_first_name, customer_last_name, status,
		score, normalized_price, normalized_volume, normalized_distance, detour_percentage,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bidEntity entities.Bid) (*entities.Bid, error) {
	bidModel := FromDomain(&bidEntity)

	query := `INSERT INTO bids (id, route_id, request_id, offered_price, weight_kg, volume_m3,
			pickup_lat, pickup_lng, dropoff_lat, dropoff_lng,
			pickup_location, delivery_location, description,
			customer_first_name, customer_last_name, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + bidColumns

	var created BidDB
	err := r.querier.QueryRow(
		ctx,
		query,
		bidModel.ID,
		bidModel.RouteID,
		bidModel.RequestID,
		bidModel.OfferedPrice,
		bidModel.WeightKg,
		bidModel.VolumeM3,
		bidModel.PickupLat,
		bidModel.PickupLng,
		bidModel.DropoffLat,
		bidModel.DropoffLng,
		bidModel.PickupLocation,
		bidModel.DeliveryLocation,
		bidModel.Description,
		bidModel.CustomerFirstName,
		bidModel.CustomerLastName,
		bidModel.Status,
	).Scan(scanTargets(&created)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Bid, error) {
	query := `SELECT ` + bidColumns + `
		FROM bids
		WHERE id = $1`

	var bidModel BidDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&bidModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrBidNotFound
		}

		return nil, fmt.Errorf("unexpected bid repository getbyid error: %w", err)
	}

	return ToDomain(&bidModel), nil
}

func (r *Repository) ListByRouteID(ctx context.Context, routeID string) ([]entities.Bid, error) {
	query := `SELECT ` + bidColumns + `
		FROM bids
		WHERE route_id = $1
		ORDER BY created_at, id`

	return r.list(ctx, query, routeID)
}

func (r *Repository) ListByRouteIDAndStatus(ctx context.Context, routeID string, status entities.BidStatusType) ([]entities.Bid, error) {
	query := `SELECT ` + bidColumns + `
		FROM bids
		WHERE route_id = $1 AND status = $2
		ORDER BY score DESC, created_at, id`

	return r.list(ctx, query, routeID, status.String())
}

func (r *Repository) CountByRouteID(ctx context.Context, routeID string) (pending, accepted int64, err error) {
	query := `SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'accepted')
		FROM bids
		WHERE route_id = $1`

	err = r.querier.QueryRow(ctx, query, routeID).Scan(&pending, &accepted)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected bid repository count error: %w", err)
	}
	return pending, accepted, nil
}

func (r *Repository) Update(ctx context.Context, bidModifyEntity entities.BidModify) (*entities.Bid, error) {
	bidModifyModel := FromDomainModify(&bidModifyEntity)

	builder := qb.
		Update("bids")

	// опциональные поля
	if bidModifyModel.Status != nil {
		builder = builder.Set("status", bidModifyModel.Status)
	}
	if bidModifyModel.Score != nil {
		builder = builder.Set("score", bidModifyModel.Score)
	}
	if bidModifyModel.NormalizedPrice != nil {
		builder = builder.Set("normalized_price", bidModifyModel.NormalizedPrice)
	}
	if bidModifyModel.NormalizedVolume != nil {
		builder = builder.Set("normalized_volume", bidModifyModel.NormalizedVolume)
	}
	if bidModifyModel.NormalizedDistance != nil {
		builder = builder.Set("normalized_distance", bidModifyModel.NormalizedDistance)
	}
	if bidModifyModel.DetourPercentage != nil {
		builder = builder.Set("detour_percentage", bidModifyModel.DetourPercentage)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": bidModifyModel.ID}).
		Suffix("RETURNING " + bidColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected bid repository update error: %w", err)
	}

	var bidModel BidDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&bidModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrBidNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, bid.ErrRequestAlreadyAccepted
		}

		return nil, fmt.Errorf("unexpected bid repository update error: %w", err)
	}

	return ToDomain(&bidModel), nil
}

func (r *Repository) RejectPendingByRouteID(ctx context.Context, routeID string) (int64, error) {
	query := `UPDATE bids
		SET status = 'rejected',
			updated_at = NOW()
		WHERE route_id = $1 AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, routeID)
	if err != nil {
		return 0, fmt.Errorf("unexpected bid repository reject pending error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]entities.Bid, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
	}
	defer rows.Close()

	bidModels := make([]BidDB, 0, 8)
	for rows.Next() {
		var bidModel BidDB
		if err := rows.Scan(scanTargets(&bidModel)...); err != nil {
			return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
		}
		bidModels = append(bidModels, bidModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
	}

	return ToDomainList(bidModels), nil
}

func scanTargets(m *BidDB) []any {
	return []any{
		&m.ID,
		&m.RouteID,
		&m.RequestID,
		&m.OfferedPrice,
		&m.WeightKg,
		&m.VolumeM3,
		&m.PickupLat,
		&m.PickupLng,
		&m.DropoffLat,
		&m.DropoffLng,
		&m.PickupLocation,
		&m.DeliveryLocation,
		&m.Description,
		&m.CustomerFirstName,
		&m.CustomerLastName,
		&m.Status,
		&m.Score,
		&m.NormalizedPrice,
		&m.NormalizedVolume,
		&m.NormalizedDistance,
		&m.DetourPercentage,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}
