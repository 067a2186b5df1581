package tables

import "github.com/wukjhc-create/elta-crm-sub005/pkg/spec"

// ampacityTable holds current-carrying capacities in amperes for copper
// conductors with PVC insulation at 30 °C ambient, per DS/HD 60364-5-52
// table B.52. Keyed by reference installation method, then loaded conductor
// count (2 or 3), then cross-section in mm².
var ampacityTable = map[spec.InstallationMethod]map[int]map[float64]float64{
	spec.MethodA1: {
		2: {1.5: 14.5, 2.5: 19.5, 4: 26, 6: 34, 10: 46, 16: 61, 25: 80, 35: 99, 50: 119, 70: 151, 95: 182, 120: 210},
		3: {1.5: 13.5, 2.5: 18, 4: 24, 6: 31, 10: 42, 16: 56, 25: 73, 35: 89, 50: 108, 70: 136, 95: 164, 120: 188},
	},
	spec.MethodA2: {
		2: {1.5: 14, 2.5: 18.5, 4: 25, 6: 32, 10: 43, 16: 57, 25: 75, 35: 92, 50: 110, 70: 139, 95: 167, 120: 192},
		3: {1.5: 13, 2.5: 17.5, 4: 23, 6: 29, 10: 39, 16: 52, 25: 68, 35: 83, 50: 99, 70: 125, 95: 150, 120: 172},
	},
	spec.MethodB1: {
		2: {1.5: 17.5, 2.5: 24, 4: 32, 6: 41, 10: 57, 16: 76, 25: 101, 35: 125, 50: 151, 70: 192, 95: 232, 120: 269},
		3: {1.5: 15.5, 2.5: 21, 4: 28, 6: 36, 10: 50, 16: 68, 25: 89, 35: 110, 50: 134, 70: 171, 95: 207, 120: 239},
	},
	spec.MethodB2: {
		2: {1.5: 16.5, 2.5: 23, 4: 30, 6: 38, 10: 52, 16: 69, 25: 90, 35: 111, 50: 133, 70: 168, 95: 201, 120: 232},
		3: {1.5: 15, 2.5: 20, 4: 27, 6: 34, 10: 46, 16: 62, 25: 80, 35: 99, 50: 118, 70: 149, 95: 179, 120: 206},
	},
	spec.MethodC: {
		2: {1.5: 19.5, 2.5: 27, 4: 36, 6: 46, 10: 63, 16: 85, 25: 112, 35: 138, 50: 168, 70: 213, 95: 258, 120: 299},
		3: {1.5: 17.5, 2.5: 24, 4: 32, 6: 41, 10: 57, 16: 76, 25: 96, 35: 119, 50: 144, 70: 184, 95: 223, 120: 259},
	},
	spec.MethodD1: {
		2: {1.5: 22, 2.5: 29, 4: 37, 6: 46, 10: 60, 16: 78, 25: 99, 35: 119, 50: 140, 70: 173, 95: 204, 120: 231},
		3: {1.5: 18, 2.5: 24, 4: 30, 6: 38, 10: 50, 16: 64, 25: 82, 35: 98, 50: 116, 70: 143, 95: 169, 120: 192},
	},
}

// Ampacity returns the tabulated capacity for the given method, loaded
// conductor count, and cross-section. The second return is false when no
// table entry exists.
func Ampacity(method spec.InstallationMethod, cores int, crossSection float64) (float64, bool) {
	byCores, ok := ampacityTable[method]
	if !ok {
		return 0, false
	}
	bySize, ok := byCores[cores]
	if !ok {
		return 0, false
	}
	capacity, ok := bySize[crossSection]
	return capacity, ok
}
