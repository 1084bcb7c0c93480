package core

// KgPerMound is the regional conversion factor: 1 mound = 40 kg.
const KgPerMound = 40.0

// KgToMound converts kilograms to mounds. No rounding happens here;
// two-decimal rounding is a presentation concern only.
func KgToMound(kg float64) float64 {
	return kg / KgPerMound
}

// MoundToKg converts mounds to kilograms. Exact inverse of KgToMound over
// real arithmetic.
func MoundToKg(mound float64) float64 {
	return mound * KgPerMound
}
