package rays3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Rotation in degrees for JSON (friendlier than radians), applied X, then Y, then Z.
type Rot3Deg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

// Transform places mesh geometry in the world: scale, rotate, then translate.
type Transform struct {
	Translate Vector3 `json:"translate"`
	Scale     Vector3 `json:"scale,omitempty"` // zero components default to 1
	RotDeg    Rot3Deg `json:"rotDeg"`
}

// Matrix composes T * Rz * Ry * Rx * S.
func (t Transform) Matrix() mgl64.Mat4 {
	sc := t.Scale
	if sc.X == 0 {
		sc.X = 1
	}
	if sc.Y == 0 {
		sc.Y = 1
	}
	if sc.Z == 0 {
		sc.Z = 1
	}
	m := mgl64.Translate3D(t.Translate.X, t.Translate.Y, t.Translate.Z)
	m = m.Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(t.RotDeg.Z)))
	m = m.Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(t.RotDeg.Y)))
	m = m.Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(t.RotDeg.X)))
	return m.Mul4(mgl64.Scale3D(sc.X, sc.Y, sc.Z))
}

// IsIdentity reports whether the transform leaves geometry untouched.
func (t Transform) IsIdentity() bool {
	return t.Matrix().ApproxEqual(mgl64.Ident4())
}

// Apply transforms vertices as points and normals (may be nil) by the
// inverse-transpose of the linear part, so they stay perpendicular to faces.
func (t Transform) Apply(vertices []Point3, normals []Vector3) ([]Point3, []Vector3) {
	m := t.Matrix()
	vs := make([]Point3, len(vertices))
	for i, p := range vertices {
		q := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
		vs[i] = Point3{q[0], q[1], q[2]}
	}
	if normals == nil {
		return vs, nil
	}
	nm := m.Mat3().Inv().Transpose()
	ns := make([]Vector3, len(normals))
	for i, n := range normals {
		q := nm.Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
		ns[i] = Vector3{q[0], q[1], q[2]}
	}
	return vs, ns
}
