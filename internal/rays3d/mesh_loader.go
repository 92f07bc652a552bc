package rays3d

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fogleman/fauxgl"
)

// MeshFileOptions tune how a mesh file is brought into the scene.
type MeshFileOptions struct {
	Fit      bool // rescale into the [-1,1] cube centered at the origin
	Simplify Real // keep this fraction of triangles, (0,1); 0 keeps all
}

// LoadMeshFile reads an .obj, .stl or .ply file and returns indexed geometry:
// duplicate positions are merged and degenerate triangles dropped.
// Face normals are left for NewTriangleMesh to derive from the winding.
func LoadMeshFile(path string, opts MeshFileOptions) ([]Point3, [][3]int, error) {
	var (
		mesh *fauxgl.Mesh
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		mesh, err = fauxgl.LoadOBJ(path)
	case ".stl":
		mesh, err = fauxgl.LoadSTL(path)
	case ".ply":
		mesh, err = fauxgl.LoadPLY(path)
	default:
		return nil, nil, fmt.Errorf("unsupported mesh format %q (%s): %w", ext, path, ErrConfiguration)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load mesh %s: %w", path, err)
	}
	if opts.Simplify < 0 || opts.Simplify >= 1 {
		return nil, nil, fmt.Errorf("mesh simplify factor must be in (0,1), got %g: %w", opts.Simplify, ErrConfiguration)
	}
	if opts.Simplify > 0 {
		before := len(mesh.Triangles)
		mesh.Simplify(opts.Simplify)
		DebugLog("Simplified %s: %d -> %d triangles", path, before, len(mesh.Triangles))
	}
	if opts.Fit {
		mesh.BiUnitCube()
	}

	vertices := make([]Point3, 0, len(mesh.Triangles))
	triangles := make([][3]int, 0, len(mesh.Triangles))
	index := make(map[Point3]int, len(mesh.Triangles))
	indexOf := func(v fauxgl.Vector) int {
		p := Point3{v.X, v.Y, v.Z}
		if k, ok := index[p]; ok {
			return k
		}
		index[p] = len(vertices)
		vertices = append(vertices, p)
		return len(vertices) - 1
	}
	skipped := 0
	for _, t := range mesh.Triangles {
		a := Point3{t.V1.Position.X, t.V1.Position.Y, t.V1.Position.Z}
		b := Point3{t.V2.Position.X, t.V2.Position.Y, t.V2.Position.Z}
		c := Point3{t.V3.Position.X, t.V3.Position.Y, t.V3.Position.Z}
		if a.To(b).Cross(a.To(c)).IsZero() {
			skipped++
			continue
		}
		triangles = append(triangles, [3]int{indexOf(t.V1.Position), indexOf(t.V2.Position), indexOf(t.V3.Position)})
	}
	if len(triangles) == 0 {
		return nil, nil, fmt.Errorf("mesh %s has no usable triangles: %w", path, ErrConfiguration)
	}
	DebugLog("Loaded mesh %s: %d vertices, %d triangles, %d degenerate skipped", path, len(vertices), len(triangles), skipped)
	return vertices, triangles, nil
}
