package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hexrift/internal/game"
)

// cubeRound snaps fractional cube coordinates to the nearest hex.
func cubeRound(xf, yf, zf float64) (int, int, int) {
	rx := math.Round(xf)
	ry := math.Round(yf)
	rz := math.Round(zf)

	dx := math.Abs(rx - xf)
	dy := math.Abs(ry - yf)
	dz := math.Abs(rz - zf)

	if dx >= dy && dx >= dz {
		rx = -ry - rz
	} else if dy >= dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}
	return int(rx), int(ry), int(rz)
}

// pixelToAxial inverts the board transform for a mouse position.
func pixelToAxial(fx, fy float64, b *game.Board) game.HexCoord {
	view := computeView(b)
	x := fx - view.offX
	y := fy - view.offY

	qf := x / (hexSize * 1.5)
	rf := y/(hexSize*math.Sqrt(3)) - qf/2

	xf, zf := qf, rf
	yf := -xf - zf
	q, _, r := cubeRound(xf, yf, zf)
	return game.HexCoord{Q: q, R: r}
}

func (gs *GameScreen) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		gs.state.Reset()
		gs.saveID = ""
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		gs.saveGame()
		return
	}

	if !gs.state.Outcome().InProgress() {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		_ = gs.state.ChooseAction(game.ActionPlaceTile)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		_ = gs.state.ChooseAction(game.ActionPlaceDisc)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		_ = gs.state.ChooseAction(game.ActionPlaceRing)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		_ = gs.state.ChooseAction(game.ActionMovePiece)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		gs.state.Cancel()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		coord := pixelToAxial(float64(mx), float64(my), gs.state.Board())
		// Rejections surface through the status note; nothing to do here.
		_ = gs.state.SelectHex(coord)
	}
}
