package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"bidding/internal/entities"
	"bidding/internal/service/route"
)

const routeColumns = `id, driver_id, origin_lat, origin_lng, destination_lat, destination_lng,
		departure_time, bidding_start_time, detour_tolerance_km,
		suggested_price_min, suggested_price_max, capacity_weight_kg, capacity_volume_m3,
		status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, routeModifyEntity entities.RouteModify) (*entities.Route, error) {
	routeModifyModel := FromDomainModify(&routeModifyEntity)

	query := `INSERT INTO routes (id, driver_id, origin_lat, origin_lng, destination_lat, destination_lng,
			departure_time, bidding_start_time, detour_tolerance_km,
			suggested_price_min, suggested_price_max, capacity_weight_kg, capacity_volume_m3, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + routeColumns

	var routeModel RouteDB
	err := r.querier.QueryRow(
		ctx,
		query,
		routeModifyModel.ID,
		routeModifyModel.DriverID,
		routeModifyModel.OriginLat,
		routeModifyModel.OriginLng,
		routeModifyModel.DestinationLat,
		routeModifyModel.DestinationLng,
		routeModifyModel.DepartureTime,
		routeModifyModel.BiddingStartTime,
		routeModifyModel.DetourToleranceKm,
		routeModifyModel.SuggestedPriceMin,
		routeModifyModel.SuggestedPriceMax,
		routeModifyModel.CapacityWeightKg,
		routeModifyModel.CapacityVolumeM3,
		routeModifyModel.Status,
	).Scan(scanTargets(&routeModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Route, error) {
	query := `SELECT ` + routeColumns + `
		FROM routes
		WHERE id = $1`

	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&routeModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}

		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

// UpdateStatusGuarded flips the status only when the current status still
// matches, reporting whether a row changed. The guard is what makes
// finalization and cancellation race-safe.
func (r *Repository) UpdateStatusGuarded(ctx context.Context, id string, from, to entities.RouteStatusType) (bool, error) {
	query := `UPDATE routes
		SET status = $3,
			updated_at = NOW()
		WHERE id = $1 AND status = $2`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, fmt.Errorf("unexpected route repository update status error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) CloseIfOpen(ctx context.Context, id string) (bool, error) {
	return r.UpdateStatusGuarded(ctx, id, entities.RouteOpen, entities.RouteClosed)
}

func (r *Repository) GetOpenRouteIDsDepartingBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `SELECT id
		FROM routes
		WHERE status = 'open' AND departure_time <= $1
		ORDER BY departure_time`

	rows, err := r.querier.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository due routes error: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, 8)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected route repository due routes error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected route repository due routes error: %w", err)
	}

	return ids, nil
}

func scanTargets(m *RouteDB) []any {
	return []any{
		&m.ID,
		&m.DriverID,
		&m.OriginLat,
		&m.OriginLng,
		&m.DestinationLat,
		&m.DestinationLng,
		&m.DepartureTime,
		&m.BiddingStartTime,
		&m.DetourToleranceKm,
		&m.SuggestedPriceMin,
		&m.SuggestedPriceMax,
		&m.CapacityWeightKg,
		&m.CapacityVolumeM3,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}
