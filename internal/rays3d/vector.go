package rays3d

import (
	"fmt"
	"math"
)

// Vector3 represents a displacement or direction (not a position) in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Unit vectors along the world axes.
var (
	VectorI = Vector3{1, 0, 0}
	VectorJ = Vector3{0, 1, 0}
	VectorK = Vector3{0, 0, 1}
)

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }
func (v Vector3) Scale(k Real) Vector3  { return Vector3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a × b (right-hand rule).
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length (magnitude) of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// IsZero reports whether all components are exactly zero.
func (v Vector3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Normalize returns a unit-length version of the vector.
// A zero vector has no direction and yields ErrDomain.
func (v Vector3) Normalize() (Vector3, error) {
	l := v.Len()
	if l == 0 {
		return Vector3{}, fmt.Errorf("normalize %+v: zero-length vector: %w", v, ErrDomain)
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}, nil
}
