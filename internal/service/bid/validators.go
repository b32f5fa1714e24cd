package bid

import "strings"

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidLat(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLng(lng float64) bool {
	return lng >= -180 && lng <= 180
}

func isValidCoordinates(lat, lng float64) bool {
	return isValidLat(lat) && isValidLng(lng)
}
