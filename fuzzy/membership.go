package fuzzy

import "example.com/arena/utils"

// Domains of the crisp inputs. Values outside are clamped before fuzzification.
const (
	MaxLevel    = 100.0 // Health and normalized score
	MaxDistance = 20.0
)

// Triangular is 0 at and outside [left, right], rising linearly to 1 at peak
// and falling linearly back to 0 at right.
func Triangular(value, left, peak, right float64) float64 {
	if value <= left || value >= right {
		return 0
	}
	if value <= peak {
		return (value - left) / (peak - left)
	}
	return (right - value) / (right - peak)
}

// Trapezoidal is 1 on [leftPeak, rightPeak] with linear flanks down to left
// and right. Both outer bounds are exclusive, so a value equal to right is 0
// even when right is the top of the domain. A shoulder set (left == leftPeak)
// has no left flank and is 1 from left onwards.
func Trapezoidal(value, left, leftPeak, rightPeak, right float64) float64 {
	if value >= right || value < left || (value == left && left < leftPeak) {
		return 0
	}
	if value >= leftPeak && value <= rightPeak {
		return 1
	}
	if value < leftPeak {
		return (value - left) / (leftPeak - left)
	}
	return (right - value) / (right - rightPeak)
}

// Levels is the fuzzified reading of a 0-100 quantity.
type Levels struct {
	Low    float64
	Medium float64
	High   float64
}

// Distances is the fuzzified reading of a Manhattan distance.
type Distances struct {
	Near   float64
	Medium float64
	Far    float64
}

func HealthLevels(health float64) Levels {
	health = utils.Clamp(health, 0, MaxLevel)
	return Levels{
		Low:    Trapezoidal(health, 0, 0, 20, 35),
		Medium: Triangular(health, 30, 50, 70),
		High:   Trapezoidal(health, 65, 80, 100, 100),
	}
}

// ScoreLevels normalizes score against normalizer onto 0-100 first.
func ScoreLevels(score, normalizer float64) Levels {
	normalized := utils.Clamp(score/normalizer*100, 0, MaxLevel)
	return Levels{
		Low:    Trapezoidal(normalized, 0, 0, 20, 40),
		Medium: Triangular(normalized, 30, 50, 70),
		High:   Trapezoidal(normalized, 60, 80, 100, 100),
	}
}

func DistanceLevels(distance float64) Distances {
	distance = utils.Clamp(distance, 0, MaxDistance)
	return Distances{
		Near:   Trapezoidal(distance, 0, 0, 2, 4),
		Medium: Triangular(distance, 3, 5, 8),
		Far:    Trapezoidal(distance, 7, 10, 20, 20),
	}
}
