package rays3d

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// SaveImage writes img to path, encoding by extension (png, jpg, gif, tif, bmp).
// scale > 1 enlarges the picture with nearest-neighbour sampling so flat
// colors stay flat.
func SaveImage(img *Image, path string, scale int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out := scaled(img.NRGBA(), scale)
	if err := imaging.Save(out, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	DebugLog("Saved %dx%d image: %s", out.Bounds().Dx(), out.Bounds().Dy(), path)
	return nil
}

func scaled(src image.Image, scale int) image.Image {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	return resize.Resize(uint(b.Dx()*scale), uint(b.Dy()*scale), src, resize.NearestNeighbor)
}

// SavePNG16 writes a lossless 16-bit per channel PNG.
func SavePNG16(img *Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	if err := enc.Encode(f, img.NRGBA64()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
