package rays3d

import (
	"path/filepath"
	"strings"
	"time"
)

// Result is what a run produced: the rendered image and every file written.
type Result struct {
	Image *Image
	Files []string
}

func Run(cfgPath string) (*Result, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	camera, err := cfg.Camera.Build(cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	scene, err := cfg.BuildScene()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	img, err := Render(camera, scene)
	if err != nil {
		return nil, err
	}
	DebugLog("Rendered %dx%d in %s", img.Height, img.Width, time.Since(start))
	if Debug {
		raysStats()
	}

	res := &Result{Image: img}
	if err := SaveImage(img, cfg.Output, cfg.OutputScale); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, cfg.Output)

	prefix := strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output))
	if PNG16 {
		path := prefix + "_16.png"
		if err := SavePNG16(img, path); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, path)
		DebugLog("Saved 16-bit PNG: %s", path)
	}
	if RAW {
		path := prefix + ".raw"
		if err := SaveRawRGB64(img, path); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, path)
		DebugLog("Saved RAW image: %s", path)
	}
	if GIF && cfg.Animation.Frames > 0 {
		a := cfg.Animation
		if err := SaveFlythroughGIF(camera, scene, a.Frames, a.Step, a.Delay, a.Output); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, a.Output)
		DebugLog("Saved animated GIF: %s", a.Output)
	}
	return res, nil
}
