// Package ui is the ebiten front end: it renders the board and resource
// panels and translates clicks and key presses into engine commands. It
// holds no rules logic and only reads engine state through its queries.
package ui

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"hexrift/internal/game"
	"hexrift/internal/store"
)

const (
	WindowWidth  = 960
	WindowHeight = 720
)

// GameScreen implements ebiten.Game: it owns the engine state for the
// session plus an optional saved-game store.
type GameScreen struct {
	state  *game.GameState
	saves  *store.Store // nil when persistence is disabled
	saveID string       // id of the loaded save, if any
}

// NewGameScreen constructs the screen around a fresh game.
func NewGameScreen(saves *store.Store) *GameScreen {
	return &GameScreen{
		state: game.NewGameState(),
		saves: saves,
	}
}

// LoadSave replaces the current game with a stored snapshot.
func (gs *GameScreen) LoadSave(id string) error {
	if gs.saves == nil {
		return store.ErrNotFound
	}
	saved, err := gs.saves.Load(id)
	if err != nil {
		return err
	}
	if err := gs.state.Restore(saved.Snapshot); err != nil {
		return err
	}
	gs.saveID = id
	slog.Info("game loaded", "id", id, "name", saved.Name)
	return nil
}

// Update handles one tick of input.
func (gs *GameScreen) Update() error {
	gs.handleInput()
	return nil
}

// Draw renders the board, highlights, pieces, and the HUD.
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	drawFrame(screen, gs.state)
}

// Layout reports the fixed logical size.
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

func (gs *GameScreen) saveGame() {
	if gs.saves == nil {
		return
	}
	snap := gs.state.Snapshot()
	if gs.saveID != "" {
		if err := gs.saves.Update(gs.saveID, snap); err != nil {
			slog.Error("save failed", "id", gs.saveID, "error", err)
		}
		return
	}
	id, err := gs.saves.Save("quicksave", snap)
	if err != nil {
		slog.Error("save failed", "error", err)
		return
	}
	gs.saveID = id
}
