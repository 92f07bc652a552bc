package rays3d

import (
	"math"
	"runtime"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func clamp01(x Real) Real {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// workerCount resolves the Workers flag against the amount of work available.
func workerCount(jobs int) int {
	w := Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > jobs {
		w = jobs
	}
	if w < 1 {
		w = 1
	}
	return w
}
