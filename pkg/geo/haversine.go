package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineKm возвращает расстояние по большому кругу между двумя точками в километрах
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// FormatKm форматирует расстояние для отображения, например "2.35 km"
func FormatKm(distanceKm float64) string {
	return fmt.Sprintf("%.2f km", distanceKm)
}

// ValidLatitude проверяет, что широта конечна и лежит в [-90, 90]
func ValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) && lat >= -90 && lat <= 90
}

// ValidLongitude проверяет, что долгота конечна и лежит в [-180, 180]
func ValidLongitude(lon float64) bool {
	return !math.IsNaN(lon) && !math.IsInf(lon, 0) && lon >= -180 && lon <= 180
}
