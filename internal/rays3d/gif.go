package rays3d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
)

// SaveFlythroughGIF renders frames images, translating the camera by step
// between consecutive frames, and writes them as an animated GIF.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveFlythroughGIF(camera *Camera, scene *Scene, frames int, step Vector3, delay int, path string) error {
	if frames <= 0 {
		return fmt.Errorf("gif needs at least one frame, got %d: %w", frames, ErrConfiguration)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}

	cam := camera
	for k := 0; k < frames; k++ {
		if k%max(1, frames/100) == 0 { // ~1% steps
			percent := Real(k+1) * 100 / Real(frames)
			fmt.Printf("[GIF] %.2f%%\n", percent)
		}
		img, err := Render(cam, scene)
		if err != nil {
			return err
		}
		rgba := img.NRGBA()

		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
		cam = cam.Translate(step)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
