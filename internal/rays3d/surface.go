package rays3d

// Surface is anything a camera ray can strike.
// Intersects returns the distance along the (unit) direction to the nearest hit
// in front of the origin; false means the ray misses, which is not an error.
type Surface interface {
	Intersects(origin Point3, dir Vector3) (Real, bool)
	Color() Color
}

// surfaceKind names a surface variant for diagnostics.
func surfaceKind(s Surface) string {
	switch s.(type) {
	case *Plane:
		return "plane"
	case *Sphere:
		return "sphere"
	case *TriangleMesh:
		return "mesh"
	default:
		return "surface"
	}
}
