package rays3d

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB64 dumps the image: int32 height and width (little-endian)
// followed by Height*Width RGB triples as float64.
func SaveRawRGB64(img *Image, path string) error {
	// Sanity checks
	if img.Height < 0 || img.Width < 0 {
		return fmt.Errorf("negative dimensions: Height=%d Width=%d", img.Height, img.Width)
	}
	exp64 := int64(img.Height) * int64(img.Width)
	if int64(len(img.Pix)) != exp64 {
		return fmt.Errorf("Pix length mismatch: got %d, expected %d (Height*Width)", len(img.Pix), exp64)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if err := binary.Write(w, binary.LittleEndian, int32(img.Height)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(img.Width)); err != nil {
		return err
	}

	// Color is three float64 fields, so the slice encodes as packed triples.
	if exp64 > 0 {
		if err := binary.Write(w, binary.LittleEndian, img.Pix); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// LoadRawRGB64 reads a file written by SaveRawRGB64.
func LoadRawRGB64(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var h, w int32
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return nil, err
	}
	if h < 0 || w < 0 {
		return nil, fmt.Errorf("negative dimensions in %s: Height=%d Width=%d", path, h, w)
	}
	img := NewImage(int(h), int(w))
	if len(img.Pix) > 0 {
		if err := binary.Read(r, binary.LittleEndian, img.Pix); err != nil {
			return nil, err
		}
	}
	return img, nil
}
