// Package snapshot renders a round to an image and saves it as PNG.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"arcade-snake/game"
	"arcade-snake/game/types"

	"github.com/fogleman/gg"
	"github.com/golang/glog"
)

// Palette shared by every front end.
var (
	Background = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Board      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	GridLine   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Head       = color.RGBA{R: 0, G: 117, B: 44, A: 255}
	Body       = color.RGBA{R: 0, G: 158, B: 47, A: 255}
	Fruit      = color.RGBA{R: 255, G: 203, B: 0, A: 255}
	Text       = color.RGBA{R: 80, G: 80, B: 80, A: 255}
)

// Render draws the board of g with square cells of cellSize pixels.
func Render(g *game.Game, cellSize int) image.Image {
	size := g.Size() * cellSize
	dc := gg.NewContext(size, size)
	dc.SetColor(Board)
	dc.Clear()

	renderGrid(dc, size, cellSize)

	drawCell(dc, g.Head(), cellSize, Head)
	for _, p := range g.Body() {
		drawCell(dc, p, cellSize, Body)
	}
	drawCell(dc, g.Fruit(), cellSize, Fruit)

	return dc.Image()
}

func renderGrid(dc *gg.Context, size, cellSize int) {
	dc.SetColor(GridLine)
	for x := cellSize; x < size; x += cellSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(size))
		dc.Stroke()
	}
	for y := cellSize; y < size; y += cellSize {
		dc.DrawLine(0, float64(y), float64(size), float64(y))
		dc.Stroke()
	}
}

func drawCell(dc *gg.Context, p types.Point, cellSize int, c color.Color) {
	dc.SetColor(c)
	dc.DrawRectangle(float64(p.X*cellSize), float64(p.Y*cellSize), float64(cellSize), float64(cellSize))
	dc.Fill()
}

// Save writes the board of g to dir as snake-<round id>-<score>.png and
// returns the file path.
func Save(g *game.Game, dir string, cellSize int) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("snake-%s-%d.png", g.ID(), g.Score()))
	if err := gg.SavePNG(path, Render(g, cellSize)); err != nil {
		return "", fmt.Errorf("save snapshot %s: %w", path, err)
	}
	glog.Infof("[game:%s] snapshot saved to %s", g.ID(), path)
	return path, nil
}
