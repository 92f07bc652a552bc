package rays3d

import (
	"fmt"
	"math"
)

// Sphere is a solid sphere of Radius around Center.
type Sphere struct {
	Center Point3
	Radius Real
	color  Color

	// cached
	r2 Real
}

func NewSphere(center Point3, radius Real, color Color) (*Sphere, error) {
	if !(radius > 0) || !isFinite(radius) {
		return nil, fmt.Errorf("sphere radius must be > 0, got %g: %w", radius, ErrConfiguration)
	}
	s := &Sphere{Center: center, Radius: radius, color: color, r2: radius * radius}
	DebugLog("Created sphere: %+v", s)
	return s, nil
}

func (s *Sphere) Color() Color { return s.color }

// Intersects uses the geometric solution; D must be unit length.
// A sphere whose center lies behind the origin is never hit.
func (s *Sphere) Intersects(O Point3, D Vector3) (Real, bool) {
	L := O.To(s.Center)
	tca := L.Dot(D)
	if tca < 0 {
		return 0, false
	}
	d2 := L.Dot(L) - tca*tca
	if d2 > s.r2 {
		return 0, false
	}
	thc := math.Sqrt(s.r2 - d2)
	t0 := tca - thc
	if t0 > 0 {
		return t0, true
	}
	return tca + thc, true
}
