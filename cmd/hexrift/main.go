// Command hexrift runs the playable game window.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"hexrift/internal/store"
	"hexrift/internal/ui"
)

func main() {
	dbPath := flag.String("db", "hexrift.db", "path to the saved-game database ('' disables saving)")
	loadID := flag.String("load", "", "id of a saved game to resume")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var saves *store.Store
	if *dbPath != "" {
		var err error
		saves, err = store.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open saved-game database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer saves.Close()
		slog.Info("saved-game database opened", "path", *dbPath)
	}

	screen := ui.NewGameScreen(saves)
	if *loadID != "" {
		if err := screen.LoadSave(*loadID); err != nil {
			slog.Error("failed to load saved game", "id", *loadID, "error", err)
			os.Exit(1)
		}
	}

	ebiten.SetWindowSize(ui.WindowWidth, ui.WindowHeight)
	ebiten.SetWindowTitle("Hexrift")
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(screen); err != nil {
		slog.Error("game loop exited", "error", err)
		os.Exit(1)
	}
}
