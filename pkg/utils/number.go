package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio divide protegendo contra denominador zero: em vez de NaN ou
// infinito, a razão é zero. O resultado já sai arredondado em duas casas
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(numerator / denominator)
}
