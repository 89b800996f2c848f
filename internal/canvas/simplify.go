package canvas

// Simplify reduces a freehand polyline with the Ramer-Douglas-Peucker
// algorithm: points whose perpendicular distance from the chord falls
// below epsilon are dropped. Endpoints are always kept.
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) < 3 || epsilon <= 0 {
		return append([]Point(nil), points...)
	}
	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	rdp(points, 0, len(points)-1, epsilon, keep)

	out := make([]Point, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

func rdp(points []Point, first, last int, epsilon float64, keep []bool) {
	if last-first < 2 {
		return
	}
	maxDist := 0.0
	maxIdx := first
	for i := first + 1; i < last; i++ {
		d := pointSegmentDistance(points[i], points[first], points[last])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= epsilon {
		return
	}
	keep[maxIdx] = true
	rdp(points, first, maxIdx, epsilon, keep)
	rdp(points, maxIdx, last, epsilon, keep)
}
