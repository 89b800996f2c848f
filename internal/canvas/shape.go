// Package canvas implements the shape-drawing surface: shape geometry,
// point hit-testing, freehand path simplification, and a scene with
// bounded undo/redo history.
package canvas

import "math"

// Point is a position in canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind enumerates the supported shape types.
type Kind string

const (
	KindRect    Kind = "rect"
	KindEllipse Kind = "ellipse"
	KindLine    Kind = "line"
	KindPath    Kind = "path"
)

// Shape is one element on the canvas. Rect and ellipse use Origin plus
// Width/Height (Origin is the top-left of the bounding box). Line uses
// Points[0] and Points[1]. Path holds the freehand polyline in Points.
type Shape struct {
	ID          string  `json:"id"`
	Kind        Kind    `json:"kind"`
	Origin      Point   `json:"origin"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Points      []Point `json:"points,omitempty"`
	Stroke      string  `json:"stroke"`
	Fill        string  `json:"fill,omitempty"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := s
	if s.Points != nil {
		out.Points = append([]Point(nil), s.Points...)
	}
	return out
}

// Translate moves the shape by (dx, dy).
func (s *Shape) Translate(dx, dy float64) {
	s.Origin.X += dx
	s.Origin.Y += dy
	for i := range s.Points {
		s.Points[i].X += dx
		s.Points[i].Y += dy
	}
}

// Scale resizes the shape by factor about the given center point.
// Stroke width is left unchanged.
func (s *Shape) Scale(center Point, factor float64) {
	scale := func(p Point) Point {
		return Point{
			X: center.X + (p.X-center.X)*factor,
			Y: center.Y + (p.Y-center.Y)*factor,
		}
	}
	s.Origin = scale(s.Origin)
	s.Width *= factor
	s.Height *= factor
	for i := range s.Points {
		s.Points[i] = scale(s.Points[i])
	}
}

// Bounds returns the axis-aligned bounding box as origin and size.
func (s Shape) Bounds() (Point, float64, float64) {
	switch s.Kind {
	case KindLine, KindPath:
		if len(s.Points) == 0 {
			return s.Origin, 0, 0
		}
		minX, minY := s.Points[0].X, s.Points[0].Y
		maxX, maxY := minX, minY
		for _, p := range s.Points[1:] {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
		return Point{X: minX, Y: minY}, maxX - minX, maxY - minY
	default:
		return s.Origin, s.Width, s.Height
	}
}

// Hit reports whether p falls on the shape. Filled shapes test
// containment; lines and paths test distance to the stroke, padded by
// tolerance so thin strokes stay clickable.
func (s Shape) Hit(p Point, tolerance float64) bool {
	switch s.Kind {
	case KindRect:
		return p.X >= s.Origin.X && p.X <= s.Origin.X+s.Width &&
			p.Y >= s.Origin.Y && p.Y <= s.Origin.Y+s.Height
	case KindEllipse:
		rx, ry := s.Width/2, s.Height/2
		if rx <= 0 || ry <= 0 {
			return false
		}
		cx, cy := s.Origin.X+rx, s.Origin.Y+ry
		dx, dy := (p.X-cx)/rx, (p.Y-cy)/ry
		return dx*dx+dy*dy <= 1
	case KindLine, KindPath:
		reach := s.StrokeWidth/2 + tolerance
		for i := 0; i+1 < len(s.Points); i++ {
			if pointSegmentDistance(p, s.Points[i], s.Points[i+1]) <= reach {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// pointSegmentDistance returns the distance from p to segment ab.
func pointSegmentDistance(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*abx), p.Y-(a.Y+t*aby))
}
