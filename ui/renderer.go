package ui

import (
	"fmt"
	"image/color"

	"arcade-snake/game"
	"arcade-snake/ui/layout"
	"arcade-snake/ui/snapshot"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	screenWidth  float32
	screenHeight float32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = float32(rl.GetScreenWidth())
	r.screenHeight = float32(rl.GetScreenHeight())
}

func rgba(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (r *Renderer) Draw(s *game.Session) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()

	g := s.Game()
	if g.IsOver() {
		r.drawGameOver(s)
		return
	}

	rl.ClearBackground(rgba(snapshot.Background))
	l := layout.New(r.screenWidth, r.screenHeight, g.Size())

	rl.DrawRectangleV(
		rl.Vector2{X: l.OffsetX, Y: l.OffsetY},
		rl.Vector2{X: l.BoardSize, Y: l.BoardSize},
		rgba(snapshot.Board))

	// Draw grid lines
	for i := 1; i < g.Size(); i++ {
		_, y := l.Cell(0, i)
		rl.DrawLineEx(
			rl.Vector2{X: l.OffsetX, Y: y},
			rl.Vector2{X: l.OffsetX + l.BoardSize, Y: y},
			2, rgba(snapshot.GridLine))
		x, _ := l.Cell(i, 0)
		rl.DrawLineEx(
			rl.Vector2{X: x, Y: l.OffsetY},
			rl.Vector2{X: x, Y: l.OffsetY + l.BoardSize},
			2, rgba(snapshot.GridLine))
	}

	head := g.Head()
	r.drawCell(l, head.X, head.Y, rgba(snapshot.Head))
	for _, p := range g.Body() {
		r.drawCell(l, p.X, p.Y, rgba(snapshot.Body))
	}
	fruit := g.Fruit()
	r.drawCell(l, fruit.X, fruit.Y, rgba(snapshot.Fruit))

	rl.DrawText(fmt.Sprintf("SCORE: %d", g.Score()), 10, 10, 20, rgba(snapshot.Text))
	rl.DrawText(fmt.Sprintf("BEST: %d", s.Stats().GetHighScore()), 160, 10, 20, rgba(snapshot.Text))
}

func (r *Renderer) drawCell(l layout.Layout, x, y int, c rl.Color) {
	px, py := l.Cell(x, y)
	rl.DrawRectangleV(rl.Vector2{X: px, Y: py}, rl.Vector2{X: l.CellSize, Y: l.CellSize}, c)
}

func (r *Renderer) drawGameOver(s *game.Session) {
	rl.ClearBackground(rl.White)

	const fontSize = 30
	text := "Game Over. Press [enter] to play again."
	textWidth := rl.MeasureText(text, fontSize)
	x := int32(r.screenWidth/2) - textWidth/2
	y := int32(r.screenHeight/2) - fontSize/2
	rl.DrawText(text, x, y, fontSize, rgba(snapshot.Text))

	const smallFont = 20
	g := s.Game()
	stats := s.Stats()
	detail := fmt.Sprintf("The snake %s. Score %d, best %d, average %.1f over %d rounds.",
		g.Cause(), g.Score(), stats.GetHighScore(), stats.GetAverageScore(), stats.GetRounds())
	detailWidth := rl.MeasureText(detail, smallFont)
	rl.DrawText(detail, int32(r.screenWidth/2)-detailWidth/2, y+fontSize+10, smallFont, rl.DarkGray)
}
