// Package viewer shows a rendered image in a desktop window.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxZoom = 2

type game struct {
	src image.Image
	img *ebiten.Image
}

func (g *game) Update() error { return nil }

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.src.Bounds()
	return b.Dx(), b.Dy()
}

// windowSize enlarges small images up to maxZoom times while keeping them under limit pixels per side.
func windowSize(w, h, limit int) (int, int) {
	zoom := maxZoom
	for zoom > 1 && (w*zoom > limit || h*zoom > limit) {
		zoom--
	}
	return w * zoom, h * zoom
}

// Show opens a window displaying img and blocks until it is closed.
func Show(title string, img image.Image) error {
	b := img.Bounds()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(windowSize(b.Dx(), b.Dy(), 1600))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{src: img})
}
