package game

import "math"

// CalculateScore returns the points awarded for hitting a dot of the given
// radius: round(maxDiameter / (2*radius)). Smaller dots are worth more. The
// rounding rule is math.Round, half away from zero, so a raw value of 2.5
// scores 3. At radius = minDiameter/2 the score is round(maxD/minD); at
// radius = maxDiameter/2 it is 1.
func CalculateScore(radius float64, maxDiameter int) int {
	return int(math.Round(float64(maxDiameter) / (2 * radius)))
}
