// Command saves manages the saved-game database: listing, exporting a game
// as snapshot JSON, importing one, and deleting.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"hexrift/internal/game"
	"hexrift/internal/store"
)

func main() {
	dbPath := flag.String("db", "hexrift.db", "path to the saved-game database")
	flag.Usage = usage
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	s, err := store.Open(*dbPath)
	if err != nil {
		fatal("open database: %v", err)
	}
	defer s.Close()

	switch args[0] {
	case "list":
		list(s)
	case "export":
		if len(args) != 2 {
			fatal("usage: saves export <id>")
		}
		export(s, args[1])
	case "import":
		if len(args) != 3 {
			fatal("usage: saves import <name> <file>")
		}
		importGame(s, args[1], args[2])
	case "delete":
		if len(args) != 2 {
			fatal("usage: saves delete <id>")
		}
		if err := s.Delete(args[1]); err != nil {
			fatal("delete: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func list(s *store.Store) {
	games, err := s.List()
	if err != nil {
		fatal("list: %v", err)
	}
	if len(games) == 0 {
		fmt.Println("no saved games")
		return
	}
	for _, g := range games {
		status := string(g.Snapshot.Outcome.Status)
		fmt.Printf("%s  %-20s %-10s updated %s\n",
			g.ID, g.Name, status, g.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}

func export(s *store.Store, id string) {
	saved, err := s.Load(id)
	if err != nil {
		fatal("load: %v", err)
	}
	out, err := json.MarshalIndent(saved.Snapshot, "", "  ")
	if err != nil {
		fatal("encode: %v", err)
	}
	fmt.Println(string(out))
}

func importGame(s *store.Store, name, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fatal("read %s: %v", path, err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		fatal("decode %s: %v", path, err)
	}

	// Run the snapshot through the engine's reconstruction so corrupt
	// files are rejected before they reach the database.
	if err := game.NewGameState().Restore(snap); err != nil {
		fatal("invalid snapshot: %v", err)
	}

	id, err := s.Save(name, snap)
	if err != nil {
		fatal("save: %v", err)
	}
	fmt.Println(id)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: saves [-db path] <command>

commands:
  list                   list saved games
  export <id>            print a saved game as snapshot JSON
  import <name> <file>   validate and store a snapshot JSON file
  delete <id>            remove a saved game
`)
}
