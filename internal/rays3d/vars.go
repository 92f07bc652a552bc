package rays3d

var (
	Debug   = false // set to true for verbose debug output
	PNG16   = false // set to true to also save a 16-bit PNG next to the main output
	RAW     = false // set to true to also save the RAW float64 image
	GIF     = false // set to true to render the configured camera fly-through as an animated GIF
	Workers = 1     // rows are split across this many goroutines; 0 means one per CPU
	// Compile time checks to ensure that the Surface interface is implemented by all variants
	_ Surface = (*Plane)(nil)
	_ Surface = (*Sphere)(nil)
	_ Surface = (*TriangleMesh)(nil)
)
