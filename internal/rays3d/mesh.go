package rays3d

import (
	"fmt"
	"math"
)

// triangle is a bounded plane: the supporting plane is anchored at A with the
// face normal, and a plane hit counts only when it lands inside ABC.
type triangle struct {
	plane   Plane
	A, B, C Point3
	area    Real // cached Heron area of ABC
}

// TriangleMesh is a set of triangles sharing one color.
type TriangleMesh struct {
	Vertices  []Point3
	Triangles [][3]int
	Normals   []Vector3 // one unit normal per triangle
	color     Color

	tris []triangle
}

// NewTriangleMesh builds one bounded plane per triangle.
// normals must hold one entry per triangle; nil derives each face normal
// from the winding order as (B-A)×(C-A).
func NewTriangleMesh(vertices []Point3, triangles [][3]int, normals []Vector3, color Color) (*TriangleMesh, error) {
	if normals != nil && len(normals) != len(triangles) {
		return nil, fmt.Errorf("mesh needs one normal per triangle, got %d normals for %d triangles: %w", len(normals), len(triangles), ErrConfiguration)
	}
	m := &TriangleMesh{
		Vertices:  vertices,
		Triangles: triangles,
		Normals:   make([]Vector3, len(triangles)),
		color:     color,
		tris:      make([]triangle, len(triangles)),
	}
	nv := len(vertices)
	for ti, idx := range triangles {
		for _, k := range idx {
			if k < 0 || k >= nv {
				return nil, fmt.Errorf("mesh triangle #%d index %d out of range [0,%d): %w", ti, k, nv, ErrConfiguration)
			}
		}
		a, b, c := vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]
		var raw Vector3
		if normals != nil {
			raw = normals[ti]
		} else {
			raw = a.To(b).Cross(a.To(c))
		}
		n, err := raw.Normalize()
		if err != nil {
			return nil, fmt.Errorf("mesh triangle #%d has a zero normal: %w", ti, ErrConfiguration)
		}
		m.Normals[ti] = n
		m.tris[ti] = triangle{
			plane: Plane{Point: a, Normal: n, color: color},
			A:     a,
			B:     b,
			C:     c,
			area:  heronArea(a, b, c),
		}
	}
	DebugLog("Created mesh: %d vertices, %d triangles, color=%+v", len(vertices), len(triangles), color)
	return m, nil
}

func (m *TriangleMesh) Color() Color { return m.color }

// Len returns the number of triangles.
func (m *TriangleMesh) Len() int { return len(m.tris) }

// Intersects returns the nearest triangle hit. Every triangle is tested, so the
// cost is linear in the triangle count.
func (m *TriangleMesh) Intersects(O Point3, D Vector3) (Real, bool) {
	bestT := math.Inf(1)
	okAny := false
	for i := range m.tris {
		tr := &m.tris[i]
		t, ok := tr.plane.Intersects(O, D)
		if !ok || t >= bestT {
			continue
		}
		if tr.contains(O.Translate(D.Scale(t))) {
			bestT, okAny = t, true
		}
	}
	if !okAny {
		return 0, false
	}
	return bestT, true
}

// contains applies the equal-areas test: P lies in ABC when the areas of
// ABP, BCP and CAP add up to the area of ABC.
func (tr *triangle) contains(P Point3) bool {
	sum := heronArea(tr.A, tr.B, P) + heronArea(tr.B, tr.C, P) + heronArea(tr.C, tr.A, P)
	return math.Abs(sum-tr.area) <= areaEps
}

// heronArea computes a triangle's area from its side lengths.
func heronArea(a, b, c Point3) Real {
	la, lb, lc := a.Dist(b), b.Dist(c), c.Dist(a)
	s := (la + lb + lc) / 2
	q := s * (s - la) * (s - lb) * (s - lc)
	if q <= 0 {
		// degenerate or rounding below zero
		return 0
	}
	return math.Sqrt(q)
}
