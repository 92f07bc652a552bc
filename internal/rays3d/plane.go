package rays3d

import (
	"fmt"
	"math"
)

// Plane is an infinite plane through Point with unit Normal.
type Plane struct {
	Point  Point3
	Normal Vector3
	color  Color
}

// NewPlane normalizes the normal; a zero normal is a configuration error.
func NewPlane(point Point3, normal Vector3, color Color) (*Plane, error) {
	n, err := normal.Normalize()
	if err != nil {
		return nil, fmt.Errorf("plane normal must be non-zero: %w", ErrConfiguration)
	}
	p := &Plane{Point: point, Normal: n, color: color}
	DebugLog("Created plane: %+v", p)
	return p, nil
}

func (p *Plane) Color() Color { return p.color }

// Intersects solves dot(O + tD - P, N) = 0. Rays parallel to the plane miss,
// as do hits behind the origin.
func (p *Plane) Intersects(O Point3, D Vector3) (Real, bool) {
	return intersectRayPlane(O, D, p.Point, p.Normal)
}

func intersectRayPlane(O Point3, D Vector3, P Point3, N Vector3) (Real, bool) {
	denom := N.Dot(D)
	if math.Abs(denom) < parallelEps {
		return 0, false
	}
	t := P.Sub(O).Dot(N) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}
