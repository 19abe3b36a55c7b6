package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"hexrift/internal/game"
)

const hexSize = 34.0

var (
	colBackground = color.RGBA{24, 26, 30, 255}
	colBlackTile  = color.RGBA{70, 62, 54, 255}
	colWhiteTile  = color.RGBA{214, 204, 186, 255}
	colBlackPiece = color.RGBA{20, 20, 22, 255}
	colWhitePiece = color.RGBA{246, 246, 242, 255}
	colHighlight  = color.RGBA{96, 200, 120, 255}
	colSelected   = color.RGBA{235, 196, 80, 255}
	colText       = color.RGBA{222, 222, 222, 255}
)

// viewTransform maps axial coordinates to screen pixels, keeping the
// occupied board bounds centered as the board grows.
type viewTransform struct {
	offX, offY float64
}

func axialToPixel(c game.HexCoord) (float64, float64) {
	x := hexSize * 1.5 * float64(c.Q)
	y := hexSize * math.Sqrt(3) * (float64(c.R) + float64(c.Q)/2)
	return x, y
}

// computeView centers the midpoint of the occupied bounds in the window.
func computeView(b *game.Board) viewTransform {
	minC, maxC, ok := b.Bounds()
	if !ok {
		return viewTransform{WindowWidth / 2, WindowHeight / 2}
	}
	x0, y0 := axialToPixel(minC)
	x1, y1 := axialToPixel(maxC)
	return viewTransform{
		offX: WindowWidth/2 - (x0+x1)/2,
		offY: WindowHeight/2 - (y0+y1)/2,
	}
}

func (v viewTransform) center(c game.HexCoord) (float32, float32) {
	x, y := axialToPixel(c)
	return float32(x + v.offX), float32(y + v.offY)
}

func tileColor(c game.Color) color.RGBA {
	if c == game.White {
		return colWhiteTile
	}
	return colBlackTile
}

func pieceColor(c game.Color) color.RGBA {
	if c == game.White {
		return colWhitePiece
	}
	return colBlackPiece
}

func drawFrame(dst *ebiten.Image, state *game.GameState) {
	dst.Fill(colBackground)
	board := state.Board()
	view := computeView(board)

	for _, c := range board.AllCoords() {
		cell, _ := board.Get(c)
		x, y := view.center(c)
		vector.DrawFilledCircle(dst, x, y, hexSize*0.92, tileColor(cell.Color), true)
		vector.StrokeCircle(dst, x, y, hexSize*0.92, 1.5, colBackground, true)
	}

	for _, c := range state.LegalDestinations() {
		x, y := view.center(c)
		vector.StrokeCircle(dst, x, y, hexSize*0.75, 3, colHighlight, true)
	}
	if src, ok := state.SelectedSource(); ok {
		x, y := view.center(src)
		vector.StrokeCircle(dst, x, y, hexSize*0.85, 3, colSelected, true)
	}

	for _, c := range board.AllCoords() {
		p := board.PieceAt(c)
		if p == nil {
			continue
		}
		x, y := view.center(c)
		if p.Kind == game.Ring {
			vector.StrokeCircle(dst, x, y, hexSize*0.5, 7, pieceColor(p.Color), true)
		} else {
			vector.DrawFilledCircle(dst, x, y, hexSize*0.55, pieceColor(p.Color), true)
			vector.StrokeCircle(dst, x, y, hexSize*0.55, 1.5, colBackground, true)
		}
	}

	drawHUD(dst, state)
}

func drawHUD(dst *ebiten.Image, state *game.GameState) {
	face := basicfont.Face7x13

	line := 1
	put := func(s string) {
		text.Draw(dst, s, face, 12, 16*line, colText)
		line++
	}

	out := state.Outcome()
	switch out.Status {
	case game.StatusWin:
		put(fmt.Sprintf("%s wins (%s) - press N for a new game", out.Winner, out.Reason))
	case game.StatusDraw:
		put(fmt.Sprintf("ex aequo (%s) - press N for a new game", out.Reason))
	default:
		put(fmt.Sprintf("%s to move  [action: %s]", state.CurrentPlayer(), state.SelectedAction()))
	}
	put(state.LastNote())
	put("T tile  D disc  R ring  click: move  Esc cancel  F5 save  N new")

	for i, side := range []game.Color{game.Black, game.White} {
		res := state.Resources(side)
		s := fmt.Sprintf("%-5s tiles %d/%d  discs %d/%d (cap %d)  rings %d/%d",
			side,
			res.Tiles.Placed, res.Tiles.Total,
			res.Discs.Placed, res.Discs.Total, res.Discs.Captured,
			res.Rings.Placed, res.Rings.Total,
		)
		text.Draw(dst, s, face, 12, WindowHeight-34+16*i, colText)
	}
}
