package rays3d

import (
	"errors"
	"testing"
)

func mustSphere(t *testing.T, center Point3, r Real, c Color) *Sphere {
	t.Helper()
	s, err := NewSphere(center, r, c)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustPlane(t *testing.T, p Point3, n Vector3, c Color) *Plane {
	t.Helper()
	pl, err := NewPlane(p, n, c)
	if err != nil {
		t.Fatal(err)
	}
	return pl
}

func TestRenderNearestColor(t *testing.T) {
	cam := testCamera(t, 3, 3)
	scene := NewScene()
	scene.AddSphere(mustSphere(t, Point3{0, 0, -6}, 1, Blue))
	scene.AddSphere(mustSphere(t, Point3{0, 0, -3}, 1, Red))
	img, err := Render(cam, scene)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.At(1, 1); got != Red {
		t.Fatalf("center pixel: expected red, got %+v", got)
	}
	for _, px := range [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		if got := img.At(px[0], px[1]); got != Black {
			t.Fatalf("corner %v: expected background, got %+v", px, got)
		}
	}
}

func TestRenderTieFirstWins(t *testing.T) {
	cam := testCamera(t, 1, 1)
	scene := NewScene()
	scene.AddSphere(mustSphere(t, Point3{0, 0, -3}, 1, Green))
	scene.AddSphere(mustSphere(t, Point3{0, 0, -3}, 1, Red))
	img, err := Render(cam, scene)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.At(0, 0); got != Green {
		t.Fatalf("tie: expected the first surface (green), got %+v", got)
	}
}

func TestRenderEmptyScene(t *testing.T) {
	cam := testCamera(t, 4, 6)
	scene := NewScene()
	scene.Background = Yellow
	img, err := Render(cam, scene)
	if err != nil {
		t.Fatal(err)
	}
	if img.Height != 4 || img.Width != 6 || len(img.Pix) != 24 {
		t.Fatalf("unexpected image shape %dx%d (%d px)", img.Height, img.Width, len(img.Pix))
	}
	for k, c := range img.Pix {
		if c != Yellow {
			t.Fatalf("pixel %d: expected background, got %+v", k, c)
		}
	}
}

func TestRenderMixedSurfaces(t *testing.T) {
	cam := testCamera(t, 9, 9)
	mesh, err := NewTriangleMesh(
		[]Point3{{-1, -1, -2}, {1, -1, -2}, {0, 1, -2}},
		[][3]int{{0, 1, 2}},
		nil,
		Blue,
	)
	if err != nil {
		t.Fatal(err)
	}
	scene := NewScene()
	scene.AddPlane(mustPlane(t, Point3{0, 0, -10}, Vector3{0, 0, 1}, White))
	scene.AddMesh(mesh)
	scene.AddSphere(mustSphere(t, Point3{0, 0, -1.5}, 0.1, Red))
	img, err := Render(cam, scene)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.At(4, 4); got != Red {
		t.Fatalf("center: expected sphere in front of mesh, got %+v", got)
	}
	if got := img.At(8, 4); got != Blue {
		t.Fatalf("bottom middle: expected mesh, got %+v", got)
	}
	if got := img.At(0, 0); got != White {
		t.Fatalf("top left: expected back plane, got %+v", got)
	}
	if n := scene.PrimitiveCount(); n != 3 {
		t.Fatalf("expected 3 primitives, got %d", n)
	}
}

func TestRenderWorkersInvariant(t *testing.T) {
	defer func(w int) { Workers = w }(Workers)
	cam := testCamera(t, 17, 23)
	scene := NewScene()
	scene.AddPlane(mustPlane(t, Point3{0, -1, 0}, Vector3{0, 1, 0}, Color{0.5, 0.5, 0.5}))
	scene.AddSphere(mustSphere(t, Point3{0.3, 0, -3}, 1, Red))
	scene.AddSphere(mustSphere(t, Point3{-0.4, 0.2, -4}, 1.2, Green))

	Workers = 1
	want, err := Render(cam, scene)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []int{0, 2, 5, 64} {
		Workers = w
		got, err := Render(cam, scene)
		if err != nil {
			t.Fatal(err)
		}
		for k := range want.Pix {
			if got.Pix[k] != want.Pix[k] {
				t.Fatalf("workers=%d: pixel %d differs: %+v vs %+v", w, k, got.Pix[k], want.Pix[k])
			}
		}
	}
}

func TestRenderNilArgs(t *testing.T) {
	cam := testCamera(t, 1, 1)
	if _, err := Render(nil, NewScene()); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("nil camera: expected ErrConfiguration, got %v", err)
	}
	if _, err := Render(cam, nil); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("nil scene: expected ErrConfiguration, got %v", err)
	}
}

func TestPrimitiveCount(t *testing.T) {
	mesh, err := NewTriangleMesh(twoLayers, [][3]int{{0, 1, 2}, {3, 4, 5}}, nil, White)
	if err != nil {
		t.Fatal(err)
	}
	scene := NewScene()
	scene.AddSphere(mustSphere(t, Point3{}, 1, Red))
	scene.AddMesh(mesh)
	if n := scene.PrimitiveCount(); n != 3 {
		t.Fatalf("expected 3 primitives, got %d", n)
	}
}
