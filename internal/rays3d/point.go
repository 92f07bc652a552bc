package rays3d

import "math"

// Point3 represents a position in 3-dimensional world space.
type Point3 struct {
	X, Y, Z Real
}

// Translate moves p by the displacement v.
func (p Point3) Translate(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// To returns the displacement from p to q (q - p).
func (p Point3) To(q Point3) Vector3 {
	return Vector3{q.X - p.X, q.Y - p.Y, q.Z - p.Z}
}

// Sub returns p - q as a displacement.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Dist returns the Euclidean distance between p and q.
func (p Point3) Dist(q Point3) Real {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
