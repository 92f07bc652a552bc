package rays3d

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type CameraCfg struct {
	Position       Point3   `json:"position"`
	Target         *Point3  `json:"target,omitempty"` // defaults to DefaultTarget(position)
	Up             *Vector3 `json:"up,omitempty"`     // defaults to +Y
	ScreenDistance Real     `json:"screenDistance,omitempty"`
}

// SurfaceCfg describes one surface; Type selects which fields apply.
type SurfaceCfg struct {
	Type  string `json:"type"` // plane, sphere or mesh
	Color *Color `json:"color,omitempty"`

	// plane
	Point  Point3  `json:"point"`
	Normal Vector3 `json:"normal"`

	// sphere
	Center Point3 `json:"center"`
	Radius Real   `json:"radius"`

	// mesh: inline geometry or a file, placed by the embedded Transform
	Vertices  []Point3  `json:"vertices,omitempty"`
	Triangles [][3]int  `json:"triangles,omitempty"`
	Normals   []Vector3 `json:"normals,omitempty"`
	File      string    `json:"file,omitempty"` // .obj, .stl or .ply, relative to the config file
	Fit       bool      `json:"fit,omitempty"`
	Simplify  Real      `json:"simplify,omitempty"`
	Transform
}

type AnimationCfg struct {
	Frames int     `json:"frames"`
	Step   Vector3 `json:"step"` // camera translation between frames
	Delay  int     `json:"delay,omitempty"`
	Output string  `json:"output,omitempty"`
}

type Config struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Output      string       `json:"output"`
	OutputScale int          `json:"outputScale,omitempty"`
	Background  *Color       `json:"background,omitempty"`
	Camera      CameraCfg    `json:"camera"`
	Surfaces    []SurfaceCfg `json:"surfaces"`
	Animation   AnimationCfg `json:"animation"`

	baseDir string // directory of the config file, for relative mesh paths
}

// Build validates and constructs the camera.
func (c CameraCfg) Build(height, width int) (*Camera, error) {
	target := DefaultTarget(c.Position)
	if c.Target != nil {
		target = *c.Target
	}
	up := VectorJ
	if c.Up != nil {
		up = *c.Up
	}
	d := c.ScreenDistance
	if d == 0 {
		d = ScreenDistance
	}
	return NewCamera(c.Position, target, up, d, height, width)
}

// Build validates and constructs the runtime surface.
func (s SurfaceCfg) Build(baseDir string) (Surface, error) {
	color := White
	if s.Color != nil {
		color = *s.Color
	}
	switch strings.ToLower(s.Type) {
	case "plane":
		return NewPlane(s.Point, s.Normal, color)
	case "sphere":
		return NewSphere(s.Center, s.Radius, color)
	case "mesh":
		return s.buildMesh(baseDir, color)
	default:
		return nil, fmt.Errorf("unknown surface type %q: %w", s.Type, ErrConfiguration)
	}
}

func (s SurfaceCfg) buildMesh(baseDir string, color Color) (*TriangleMesh, error) {
	vertices, triangles, normals := s.Vertices, s.Triangles, s.Normals
	if len(normals) == 0 {
		normals = nil
	}
	if s.File != "" {
		if len(vertices) > 0 || len(triangles) > 0 {
			return nil, fmt.Errorf("mesh has both a file and inline geometry: %w", ErrConfiguration)
		}
		path := s.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		var err error
		vertices, triangles, err = LoadMeshFile(path, MeshFileOptions{Fit: s.Fit, Simplify: s.Simplify})
		if err != nil {
			return nil, err
		}
		normals = nil
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh has no triangles: %w", ErrConfiguration)
	}
	if !s.Transform.IsIdentity() {
		vertices, normals = s.Transform.Apply(vertices, normals)
	}
	return NewTriangleMesh(vertices, triangles, normals, color)
}

// BuildScene constructs every surface in file order.
func (c *Config) BuildScene() (*Scene, error) {
	scene := NewScene()
	if c.Background != nil {
		scene.Background = *c.Background
	}
	for i, sc := range c.Surfaces {
		s, err := sc.Build(c.baseDir)
		if err != nil {
			return nil, fmt.Errorf("surface #%d (%s): %w", i, sc.Type, err)
		}
		scene.Add(s)
	}
	return scene, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.baseDir = filepath.Dir(path)
	DebugLog("Loaded config from %s: size=(%d, %d), surfaces=%d, output=%s", path, cfg.Width, cfg.Height, len(cfg.Surfaces), cfg.Output)
	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.Width <= 0 {
		cfg.Width = Width
	}
	if cfg.Height <= 0 {
		cfg.Height = Height
	}
	if cfg.Output == "" {
		cfg.Output = Output
	}
	if cfg.OutputScale <= 0 {
		cfg.OutputScale = OutputScale
	}
	if cfg.Animation.Delay <= 0 {
		cfg.Animation.Delay = GIFDelay
	}
	if cfg.Animation.Output == "" {
		cfg.Animation.Output = GIFOut
	}
	if len(cfg.Surfaces) == 0 {
		return nil, fmt.Errorf("config has no surfaces: %w", ErrConfiguration)
	}
	cfg.baseDir = "."
	return &cfg, nil
}
