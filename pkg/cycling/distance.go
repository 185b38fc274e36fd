package cycling

import "math"

const earthRadiusKm = 6371.0

// HaversineKm iki koordinat arasındaki büyük daire mesafesi (km).
// Efterfest tahmini için yeterli hassasiyet; rota hesabı yapılmaz.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
