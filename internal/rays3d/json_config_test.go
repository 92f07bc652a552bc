package rays3d

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]byte(`{
		"camera": {"position": {"x": 0, "y": 0, "z": 0}},
		"surfaces": [{"type": "sphere", "center": {"x": 0, "y": 0, "z": 5}, "radius": 1}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != Width || cfg.Height != Height || cfg.Output != Output || cfg.OutputScale != OutputScale {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Animation.Delay != GIFDelay || cfg.Animation.Output != GIFOut || cfg.Animation.Frames != 0 {
		t.Fatalf("animation defaults not applied: %+v", cfg.Animation)
	}
	cam, err := cfg.Camera.Build(cfg.Height, cfg.Width)
	if err != nil {
		t.Fatal(err)
	}
	if cam.Target != (Point3{0, 0, 10}) || cam.Up != VectorJ || cam.ScreenDistance != ScreenDistance {
		t.Fatalf("camera defaults not applied: target=%+v up=%+v d=%g", cam.Target, cam.Up, cam.ScreenDistance)
	}
	scene, err := cfg.BuildScene()
	if err != nil {
		t.Fatal(err)
	}
	if scene.Background != Black || len(scene.Surfaces) != 1 || scene.Surfaces[0].Color() != White {
		t.Fatalf("scene defaults not applied: %+v", scene)
	}
}

func TestParseConfigSurfaces(t *testing.T) {
	cfg, err := parseConfig([]byte(`{
		"width": 8, "height": 6, "background": "#102030",
		"camera": {"position": {"x": 0, "y": 0, "z": 0}, "target": {"x": 0, "y": 0, "z": -1}},
		"surfaces": [
			{"type": "Plane", "point": {"x": 0, "y": -1, "z": 0}, "normal": {"x": 0, "y": 2, "z": 0}, "color": "green"},
			{"type": "sphere", "center": {"x": 0, "y": 0, "z": -3}, "radius": 0.5, "color": {"r": 0.1, "g": 0.2, "b": 0.3}},
			{"type": "mesh", "color": "f00",
			 "vertices": [{"x": 0, "y": 0, "z": 0}, {"x": 1, "y": 0, "z": 0}, {"x": 0, "y": 1, "z": 0}],
			 "triangles": [[0, 1, 2]], "translate": {"x": 0, "y": 0, "z": -4}}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	scene, err := cfg.BuildScene()
	if err != nil {
		t.Fatal(err)
	}
	if len(scene.Surfaces) != 3 {
		t.Fatalf("expected 3 surfaces, got %d", len(scene.Surfaces))
	}
	p, ok := scene.Surfaces[0].(*Plane)
	if !ok || p.Normal != VectorJ || p.Color() != Green {
		t.Fatalf("plane not built as expected: %+v", scene.Surfaces[0])
	}
	s, ok := scene.Surfaces[1].(*Sphere)
	if !ok || s.Radius != 0.5 || s.Color() != (Color{0.1, 0.2, 0.3}) {
		t.Fatalf("sphere not built as expected: %+v", scene.Surfaces[1])
	}
	m, ok := scene.Surfaces[2].(*TriangleMesh)
	if !ok || m.Color() != Red || m.Vertices[0] != (Point3{0, 0, -4}) {
		t.Fatalf("mesh not built as expected: %+v", scene.Surfaces[2])
	}
	if !nearly(scene.Background.G, 0x20/255.0, 1e-12) {
		t.Fatalf("background not parsed: %+v", scene.Background)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cam := `"camera": {"position": {"x": 0, "y": 0, "z": 0}}`
	cases := []struct {
		name string
		data string
	}{
		{"unknown type", `{` + cam + `, "surfaces": [{"type": "torus"}]}`},
		{"zero radius", `{` + cam + `, "surfaces": [{"type": "sphere", "radius": 0}]}`},
		{"zero normal", `{` + cam + `, "surfaces": [{"type": "plane"}]}`},
		{"empty mesh", `{` + cam + `, "surfaces": [{"type": "mesh"}]}`},
		{"mesh file and inline", `{` + cam + `, "surfaces": [{"type": "mesh", "file": "x.obj",
			"vertices": [{"x": 0, "y": 0, "z": 0}], "triangles": [[0, 0, 0]]}]}`},
	}
	for _, tc := range cases {
		cfg, err := parseConfig([]byte(tc.data))
		if err != nil {
			t.Fatalf("%s: parse: %v", tc.name, err)
		}
		_, err = cfg.BuildScene()
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("%s: expected ErrConfiguration, got %v", tc.name, err)
		}
		if !strings.Contains(err.Error(), "surface #0") {
			t.Fatalf("%s: error should name the surface: %v", tc.name, err)
		}
	}

	if _, err := parseConfig([]byte(`{` + cam + `, "surfaces": []}`)); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("no surfaces: expected ErrConfiguration, got %v", err)
	}
	if _, err := parseConfig([]byte(`{"surfaces": [`)); err == nil {
		t.Fatal("expected a JSON syntax error")
	}
	if _, err := parseConfig([]byte(`{"background": "mauve", "surfaces": [{"type": "sphere", "radius": 1}]}`)); err == nil {
		t.Fatal("expected an unknown color error")
	}
}

func TestCameraCfgErrors(t *testing.T) {
	up := Vector3{0, 0, 1} // parallel to the default view direction
	if _, err := (CameraCfg{Up: &up}).Build(2, 2); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if _, err := (CameraCfg{}).Build(0, 2); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestLoadConfigMeshFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "octa.obj", octahedronOBJ)
	path := writeFile(t, dir, "scene.json", `{
		"camera": {"position": {"x": 0, "y": 0, "z": 5}, "target": {"x": 0, "y": 0, "z": 0}},
		"surfaces": [{"type": "mesh", "file": "octa.obj", "fit": true, "color": "yellow",
		              "scale": {"x": 2, "y": 2, "z": 2}}]
	}`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.baseDir != filepath.Dir(path) {
		t.Fatalf("baseDir: expected %s, got %s", filepath.Dir(path), cfg.baseDir)
	}
	scene, err := cfg.BuildScene()
	if err != nil {
		t.Fatal(err)
	}
	m := scene.Surfaces[0].(*TriangleMesh)
	if m.Len() != 8 || m.Color() != Yellow {
		t.Fatalf("unexpected mesh: %d triangles, color %+v", m.Len(), m.Color())
	}
	for _, v := range m.Vertices {
		if v.X < -2-1e-9 || v.X > 2+1e-9 {
			t.Fatalf("vertex %+v outside the scaled cube", v)
		}
	}
	if _, err := loadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected an error for a missing config")
	}
}
