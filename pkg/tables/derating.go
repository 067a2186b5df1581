package tables

import "math"

// temperatureCorrection is the ambient-temperature correction for PVC
// insulation relative to a 30 °C reference, per DS/HD 60364-5-52 table B.52.14.
var temperatureCorrection = map[int]float64{
	10: 1.22,
	15: 1.17,
	20: 1.12,
	25: 1.06,
	30: 1.00,
	35: 0.94,
	40: 0.87,
	45: 0.79,
	50: 0.71,
	55: 0.61,
	60: 0.50,
}

// groupingCorrection is the reduction factor for multiple circuits bunched
// on the same route, per DS/HD 60364-5-52 table B.52.17.
var groupingCorrection = map[int]float64{
	1:  1.00,
	2:  0.80,
	3:  0.70,
	4:  0.65,
	5:  0.60,
	6:  0.57,
	9:  0.50,
	12: 0.45,
	16: 0.41,
	20: 0.38,
}

// TemperatureCorrection returns the correction factor for the table key
// nearest to ambientC by absolute difference. Ties resolve to the lower key.
func TemperatureCorrection(ambientC float64) float64 {
	bestKey := 30
	bestDiff := math.Inf(1)
	for key := 10; key <= 60; key += 5 {
		diff := math.Abs(ambientC - float64(key))
		if diff < bestDiff || (diff == bestDiff && key < bestKey) {
			bestKey = key
			bestDiff = diff
		}
	}
	return temperatureCorrection[bestKey]
}

// GroupingCorrection returns the factor for the largest table key <= count.
// Counts below 1 are treated as a single circuit.
func GroupingCorrection(count int) float64 {
	if count < 1 {
		count = 1
	}
	factor := groupingCorrection[1]
	bestKey := 0
	for key, f := range groupingCorrection {
		if key <= count && key > bestKey {
			bestKey = key
			factor = f
		}
	}
	return factor
}
