package rays3d

// Scene is an ordered list of surfaces rendered over a background color.
// List order only matters as the tie-break between equally distant hits.
type Scene struct {
	Surfaces   []Surface
	Background Color
}

// NewScene returns an empty scene with the default black background.
func NewScene() *Scene {
	s := &Scene{Background: Black}
	DebugLog("Created scene background=%+v", s.Background)
	return s
}

func (s *Scene) Add(surface Surface) {
	s.Surfaces = append(s.Surfaces, surface)
}

func (s *Scene) AddPlane(p *Plane) {
	s.Add(p)
}

func (s *Scene) AddSphere(sp *Sphere) {
	s.Add(sp)
}

func (s *Scene) AddMesh(m *TriangleMesh) {
	s.Add(m)
}

// PrimitiveCount counts planes and spheres as one and every mesh triangle individually.
func (s *Scene) PrimitiveCount() int {
	n := 0
	for _, sf := range s.Surfaces {
		if m, ok := sf.(*TriangleMesh); ok {
			n += m.Len()
			continue
		}
		n++
	}
	return n
}
