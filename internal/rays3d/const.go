package rays3d

type Real = float64

const (
	Width          = 320
	Height         = 240
	ScreenDistance = 1.0
	Output         = "render.png"
	OutputScale    = 1
	GIFOut         = "flythrough.gif"
	GIFDelay       = 5 // 100ths of a second per frame
	// fixed tolerances, not configurable
	parallelEps = 1e-6 // |n·d| below this means the ray runs parallel to a plane
	areaEps     = 1e-6 // absolute tolerance of the equal-areas point-in-triangle test
)
