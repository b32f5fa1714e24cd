package ranking

import (
	"sort"

	"bidding/internal/entities"
	"bidding/internal/pkg/geo"
)

// Weights of the scoring dimensions, must sum to 1.
type Weights struct {
	Price    float64
	Volume   float64
	Distance float64
}

// ScoreBids computes the ranking metrics for every bid against the given
// route. Bids whose detour percentage exceeds maxDetourPercentage are
// excluded outright and do not participate in normalization. All normalized
// components stay within [0,1]; a sole bid scores 1.0 on every axis.
func ScoreBids(route entities.Route, bids []entities.Bid, weights Weights, maxDetourPercentage float64) []entities.Bid {
	type detour struct {
		extraKm    float64
		percentage float64
	}

	eligible := make([]entities.Bid, 0, len(bids))
	detours := make([]detour, 0, len(bids))

	for _, b := range bids {
		extraKm, percentage := geo.Detour(
			route.OriginLat, route.OriginLng, route.DestinationLat, route.DestinationLng,
			b.PickupLat, b.PickupLng, b.DropoffLat, b.DropoffLng,
		)
		if percentage > maxDetourPercentage {
			continue
		}

		eligible = append(eligible, b)
		detours = append(detours, detour{extraKm: extraKm, percentage: percentage})
	}

	if len(eligible) == 0 {
		return []entities.Bid{}
	}

	minPrice, maxPrice := eligible[0].OfferedPrice, eligible[0].OfferedPrice
	maxVolume := eligible[0].VolumeM3
	for _, b := range eligible[1:] {
		minPrice = min(minPrice, b.OfferedPrice)
		maxPrice = max(maxPrice, b.OfferedPrice)
		maxVolume = max(maxVolume, b.VolumeM3)
	}

	scored := make([]entities.Bid, len(eligible))
	for i, b := range eligible {
		if len(eligible) == 1 {
			b.NormalizedPrice = 1.0
			b.NormalizedVolume = 1.0
			b.NormalizedDistance = 1.0
		} else {
			b.NormalizedPrice = normalizePrice(b.OfferedPrice, minPrice, maxPrice)
			b.NormalizedVolume = normalizeVolume(b.VolumeM3, maxVolume)
			b.NormalizedDistance = normalizeDistance(detours[i].extraKm, route.DetourToleranceKm)
		}
		b.DetourPercentage = detours[i].percentage
		b.Score = weights.Price*b.NormalizedPrice +
			weights.Volume*b.NormalizedVolume +
			weights.Distance*b.NormalizedDistance
		scored[i] = b
	}

	return scored
}

// SortByScore orders bids by score descending, ties broken by earliest
// createdAt, then by id.
func SortByScore(bids []entities.Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].Score != bids[j].Score {
			return bids[i].Score > bids[j].Score
		}
		if !bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
			return bids[i].CreatedAt.Before(bids[j].CreatedAt)
		}
		return bids[i].ID < bids[j].ID
	})
}

func normalizePrice(price, minPrice, maxPrice float64) float64 {
	if maxPrice == minPrice {
		return 1.0
	}
	return clamp01((price - minPrice) / (maxPrice - minPrice))
}

func normalizeVolume(volume, maxVolume float64) float64 {
	if maxVolume <= 0 {
		return 1.0
	}
	return clamp01(volume / maxVolume)
}

func normalizeDistance(extraKm, toleranceKm float64) float64 {
	if toleranceKm <= 0 {
		return 0
	}
	return clamp01(1 - extraKm/toleranceKm)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
