package rays3d

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// nearestHit scans every surface in list order and keeps the strictly closest hit,
// so on equal distances the earlier surface wins.
func nearestHit(scene *Scene, O Point3, D Vector3) (Surface, Real, bool) {
	var best Surface
	bestT := math.Inf(1)
	for _, s := range scene.Surfaces {
		if t, ok := s.Intersects(O, D); ok && t < bestT {
			best, bestT = s, t
		}
	}
	return best, bestT, best != nil
}

// tracePixel resolves the color seen through pixel (i, j).
func tracePixel(camera *Camera, scene *Scene, i, j int) (Color, error) {
	O, D, err := camera.PixelRay(i, j)
	if err != nil {
		return Color{}, err
	}
	s, t, ok := nearestHit(scene, O, D)
	if !ok {
		if Debug {
			logRay("miss", Miss, O, D, i, j, 0)
		}
		return scene.Background, nil
	}
	if Debug {
		logRay("hit_"+surfaceKind(s), Hit, O, D, i, j, t)
	}
	return s.Color(), nil
}

// Render casts one ray per pixel and returns the image of nearest-hit colors.
// With Workers != 1 rows are split across goroutines; each pixel is written
// exactly once, so the result does not depend on the worker count.
func Render(camera *Camera, scene *Scene) (*Image, error) {
	if camera == nil || scene == nil {
		return nil, fmt.Errorf("render needs a camera and a scene: %w", ErrConfiguration)
	}
	img := NewImage(camera.Height, camera.Width)
	rows := camera.Height
	workers := workerCount(rows)
	DebugLog("Rendering %dx%d, %d primitives, %d workers", camera.Height, camera.Width, scene.PrimitiveCount(), workers)
	DebugLogOnce("Pixel size: (%.5f, %.5f)", camera.PixelSizeH, camera.PixelSizeV)

	if workers == 1 {
		for i := 0; i < rows; i++ {
			for j := 0; j < camera.Width; j++ {
				c, err := tracePixel(camera, scene, i, j)
				if err != nil {
					return nil, err
				}
				img.Set(i, j, c)
			}
			progress(int64(i+1), int64(rows))
		}
		return img, nil
	}

	var (
		counter  int64
		next     int64 = -1
		firstErr error
		errOnce  sync.Once
		failed   atomic.Bool
		wg       sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for !failed.Load() {
				i := int(atomic.AddInt64(&next, 1))
				if i >= rows {
					return
				}
				for j := 0; j < camera.Width; j++ {
					c, err := tracePixel(camera, scene, i, j)
					if err != nil {
						errOnce.Do(func() { firstErr = err })
						failed.Store(true)
						return
					}
					img.Set(i, j, c)
				}
				progress(atomic.AddInt64(&counter, 1), int64(rows))
			}
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return img, nil
}

// progress prints roughly every 10% of rows when debugging.
func progress(done, total int64) {
	if !Debug {
		return
	}
	step := total / 10
	if step < 1 {
		step = 1
	}
	if done%step == 0 || done == total {
		fmt.Printf("[PROGRESS] %.2f%%\n", Real(done)*100/Real(total))
	}
}
