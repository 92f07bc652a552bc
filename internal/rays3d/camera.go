package rays3d

import "fmt"

// Camera is a pinhole camera looking from Position towards Target.
// W points from the target back to the eye, U to the right and V up;
// the three form an orthonormal frame fixed at construction.
type Camera struct {
	Position       Point3
	Target         Point3
	Up             Vector3
	ScreenDistance Real
	Height, Width  int

	// cached
	W, U, V      Vector3
	PixelSizeH   Real // 1/Width
	PixelSizeV   Real // 1/Height
	screenCenter Point3
	halfCols     Real // (Width-1)/2
	halfRows     Real // (Height-1)/2
}

// DefaultTarget is the target used when none is given: 10 units along +Z.
func DefaultTarget(position Point3) Point3 {
	return position.Translate(Vector3{0, 0, 10})
}

// NewCamera validates the parameters and builds the orthonormal frame.
func NewCamera(position, target Point3, up Vector3, screenDistance Real, height, width int) (*Camera, error) {
	if up.IsZero() {
		return nil, fmt.Errorf("camera up vector must be non-zero: %w", ErrConfiguration)
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("camera resolution must be positive, got %dx%d: %w", height, width, ErrConfiguration)
	}
	if !(screenDistance > 0) || !isFinite(screenDistance) {
		return nil, fmt.Errorf("camera screen distance must be > 0, got %g: %w", screenDistance, ErrConfiguration)
	}
	w, err := position.Sub(target).Normalize()
	if err != nil {
		return nil, fmt.Errorf("camera position and target coincide at %+v: %w", position, ErrConfiguration)
	}
	u, err := up.Cross(w).Normalize()
	if err != nil {
		return nil, fmt.Errorf("camera up %+v is parallel to the view direction: %w", up, ErrConfiguration)
	}
	c := &Camera{
		Position:       position,
		Target:         target,
		Up:             up,
		ScreenDistance: screenDistance,
		Height:         height,
		Width:          width,
		W:              w,
		U:              u,
		V:              w.Cross(u),
		PixelSizeH:     1 / Real(width),
		PixelSizeV:     1 / Real(height),
	}
	c.cache()
	DebugLog("Created camera position=%+v target=%+v up=%+v d=%.3f resolution=%dx%d", position, target, up, screenDistance, height, width)
	return c, nil
}

func (c *Camera) cache() {
	c.screenCenter = c.Position.Translate(c.W.Scale(-c.ScreenDistance))
	c.halfCols = Real(c.Width-1) / 2
	c.halfRows = Real(c.Height-1) / 2
}

// PixelPoint returns the world-space point at the center of pixel (i, j) on the virtual screen.
// Row 0 is the top of the screen.
func (c *Camera) PixelPoint(i, j int) (Point3, error) {
	if i < 0 || i >= c.Height || j < 0 || j >= c.Width {
		return Point3{}, fmt.Errorf("pixel (%d, %d) outside %dx%d: %w", i, j, c.Height, c.Width, ErrIndex)
	}
	dh := c.U.Scale((Real(j) - c.halfCols) * c.PixelSizeH)
	dv := c.V.Scale((c.halfRows - Real(i)) * c.PixelSizeV)
	return c.screenCenter.Translate(dh).Translate(dv), nil
}

// PixelRay returns the ray origin (the camera position) and the unit direction through pixel (i, j).
func (c *Camera) PixelRay(i, j int) (Point3, Vector3, error) {
	p, err := c.PixelPoint(i, j)
	if err != nil {
		return Point3{}, Vector3{}, err
	}
	d, err := c.Position.To(p).Normalize()
	if err != nil {
		return Point3{}, Vector3{}, err
	}
	return c.Position, d, nil
}

// Translate returns a new camera with position and target shifted by v.
// Pure translation keeps the orientation, so the frame is carried over.
func (c *Camera) Translate(v Vector3) *Camera {
	moved := *c
	moved.Position = c.Position.Translate(v)
	moved.Target = c.Target.Translate(v)
	moved.cache()
	return &moved
}
