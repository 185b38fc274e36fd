// Package cycling km cinsinden mesafeyi bisiklet süresi tahminine çevirir.
package cycling

import "math"

// Ortalama şehir içi bisiklet hızı. Tahminler kasıtlı olarak kaba;
// katılımcıya dakika hassasiyetinden fazlası gösterilmez.
const baseSpeedKmh = 16.0

// Efterfest süre çarpanları.
const (
	MultiplierSober = 1.0
	MultiplierLagom = 1.5
	MultiplierParty = 2.5
)

// Minutes km'yi tam dakikaya yuvarlanmış tahmine çevirir, en az 1.
// Negatif veya sıfır mesafe 0 döndürür (mesafe bilinmiyor demektir).
func Minutes(km float64) int {
	if km <= 0 {
		return 0
	}
	mins := int(math.Round(km / baseSpeedKmh * 60))
	if mins < 1 {
		mins = 1
	}
	return mins
}

// Estimate üç hızda süre tahmini.
type Estimate struct {
	SoberMinutes int `json:"sober_minutes"`
	LagomMinutes int `json:"lagom_minutes"`
	PartyMinutes int `json:"party_minutes"`
}

// Estimates baz tahmine sabit çarpanları uygular. Efterfest OPEN anında
// bir kez hesaplanır.
func Estimates(km float64) *Estimate {
	base := Minutes(km)
	if base == 0 {
		return nil
	}
	return &Estimate{
		SoberMinutes: base,
		LagomMinutes: scale(base, MultiplierLagom),
		PartyMinutes: scale(base, MultiplierParty),
	}
}

func scale(base int, mult float64) int {
	mins := int(math.Round(float64(base) * mult))
	if mins < 1 {
		mins = 1
	}
	return mins
}
