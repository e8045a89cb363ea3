package components

import "math"

// Vector represents a 2D vector. Positions and per-frame velocities use it.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}
