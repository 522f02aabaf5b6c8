package adiabatic

import "math"

// Sample is one (volume, pressure) point of a sampled adiabat, ordered
// ascending by volume for line rendering.
type Sample struct {
	Volume   float64 `json:"v"`
	Pressure float64 `json:"p"`
}

// GenerateCurve samples P = constant / v^exponent over the domain. The end
// bound is included when the step divides the range evenly. Samples whose
// pressure is not finite (extreme exponents overflow Pow) are omitted so
// NaN/Inf never reaches a consumer; the same guard drops every sample of a
// non-positive constant's curve, which has no physical meaning.
func GenerateCurve(exponent, constant float64, dom Domain) []Sample {
	n := int(math.Floor((dom.End-dom.Start)/dom.Step + 1e-9))
	samples := make([]Sample, 0, n+1)
	for i := 0; i <= n; i++ {
		v := dom.Start + float64(i)*dom.Step
		p := constant / math.Pow(v, exponent)
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			continue
		}
		samples = append(samples, Sample{Volume: v, Pressure: p})
	}
	return samples
}
