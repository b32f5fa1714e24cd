package selection

import (
	"math/bits"

	"bidding/internal/entities"
)

// Exhaustive subset search is bounded, larger bid sets fall back to the
// greedy pass.
const exactSearchLimit = 12

// selectWinners picks the accepted set from ranked pending bids. With
// declared capacity it is a capacity-constrained max-total-score selection,
// without capacity data the single best bid wins. At most one bid per
// request can win.
func selectWinners(route entities.Route, ranked []entities.Bid) []entities.Bid {
	if len(ranked) == 0 {
		return nil
	}

	if !route.HasCapacity() {
		return ranked[:1]
	}

	if len(ranked) <= exactSearchLimit {
		return selectExact(route, ranked)
	}
	return selectGreedy(route, ranked)
}

func selectExact(route entities.Route, ranked []entities.Bid) []entities.Bid {
	var best []entities.Bid
	bestScore := 0.0

	for mask := 1; mask < 1<<len(ranked); mask++ {
		var weight, volume, score float64
		requests := make(map[string]struct{}, bits.OnesCount(uint(mask)))
		valid := true

		for i := 0; i < len(ranked) && valid; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			b := ranked[i]
			if _, dup := requests[b.RequestID]; dup {
				valid = false
				break
			}
			requests[b.RequestID] = struct{}{}
			weight += b.WeightKg
			volume += b.VolumeM3
			score += b.Score
		}

		if !valid || !fitsCapacity(route, weight, volume) {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = subset(ranked, mask)
		}
	}

	return best
}

func selectGreedy(route entities.Route, ranked []entities.Bid) []entities.Bid {
	var winners []entities.Bid
	var weight, volume float64
	requests := make(map[string]struct{}, len(ranked))

	for _, b := range ranked {
		if _, dup := requests[b.RequestID]; dup {
			continue
		}
		if !fitsCapacity(route, weight+b.WeightKg, volume+b.VolumeM3) {
			continue
		}
		requests[b.RequestID] = struct{}{}
		weight += b.WeightKg
		volume += b.VolumeM3
		winners = append(winners, b)
	}

	return winners
}

func fitsCapacity(route entities.Route, weight, volume float64) bool {
	if route.CapacityWeightKg > 0 && weight > route.CapacityWeightKg {
		return false
	}
	if route.CapacityVolumeM3 > 0 && volume > route.CapacityVolumeM3 {
		return false
	}
	return true
}

func subset(ranked []entities.Bid, mask int) []entities.Bid {
	out := make([]entities.Bid, 0, bits.OnesCount(uint(mask)))
	for i := range ranked {
		if mask&(1<<i) != 0 {
			out = append(out, ranked[i])
		}
	}
	return out
}
