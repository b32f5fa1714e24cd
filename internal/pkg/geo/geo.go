package geo

import "math"

const earthRadiusKm = 6371.0

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Detour returns the extra distance of serving a pickup and dropoff on the
// way from origin to destination, in km and relative to the direct
// origin-destination distance. A degenerate zero-length route yields zero
// for both.
func Detour(originLat, originLng, destLat, destLng, pickupLat, pickupLng, dropoffLat, dropoffLng float64) (extraKm, percentage float64) {
	baseline := HaversineKm(originLat, originLng, destLat, destLng)

	withStops := HaversineKm(originLat, originLng, pickupLat, pickupLng) +
		HaversineKm(pickupLat, pickupLng, dropoffLat, dropoffLng) +
		HaversineKm(dropoffLat, dropoffLng, destLat, destLng)

	extraKm = withStops - baseline
	if extraKm < 0 {
		extraKm = 0
	}
	if baseline == 0 {
		return 0, 0
	}
	return extraKm, extraKm / baseline
}
