package core

import "math"

// ---- Geometry ----

// Vec is a point or direction on the field (y points up)
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the euclidean length of v
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// DistanceTo returns euclidean distance to another point
func (v Vec) DistanceTo(o Vec) float64 { return v.Sub(o).Len() }

// IsFinite reports whether both coordinates are real numbers
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// HeadingTo returns the unit direction from v to o. Coincident points face east.
func (v Vec) HeadingTo(o Vec) Vec {
	d := o.Sub(v)
	l := d.Len()
	if l == 0 {
		return Vec{1, 0}
	}
	return d.Scale(1 / l)
}

// ---- Health ----

// Health represents hit points. Current is not clamped and may go negative.
type Health struct {
	Current int
	Max     int
}

// Ratio is the fraction of health left, negative once below zero
func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
