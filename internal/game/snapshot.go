package game

import "fmt"

// PieceRecord is the serializable form of a piece.
type PieceRecord struct {
	Kind  PieceKind `json:"kind"`
	Color Color     `json:"color"`
}

// CellRecord is one (coordinate, cell) pair in a snapshot.
type CellRecord struct {
	Q     int          `json:"q"`
	R     int          `json:"r"`
	Color Color        `json:"color"`
	Piece *PieceRecord `json:"piece,omitempty"`
}

// Snapshot is the persisted/exported state boundary: the full cell list in
// coordinate order, both resource records, whose turn it is, and the
// outcome. Board bounds and adjacency are recomputed on reconstruction;
// position history does not round-trip, so repetitions from before a save
// are not detected afterwards.
type Snapshot struct {
	Cells         []CellRecord    `json:"cells"`
	Black         PlayerResources `json:"black"`
	White         PlayerResources `json:"white"`
	CurrentPlayer Color           `json:"currentPlayer"`
	Outcome       Outcome         `json:"outcome"`
}

// Snapshot exports the current game state.
func (gs *GameState) Snapshot() Snapshot {
	coords := gs.board.AllCoords()
	sortCoords(coords)
	cells := make([]CellRecord, 0, len(coords))
	for _, c := range coords {
		cell, _ := gs.board.Get(c)
		rec := CellRecord{Q: c.Q, R: c.R, Color: cell.Color}
		if cell.Piece != nil {
			rec.Piece = &PieceRecord{Kind: cell.Piece.Kind, Color: cell.Piece.Color}
		}
		cells = append(cells, rec)
	}
	return Snapshot{
		Cells:         cells,
		Black:         gs.resources[Black],
		White:         gs.resources[White],
		CurrentPlayer: gs.current,
		Outcome:       gs.outcome,
	}
}

// validate checks a snapshot for structural corruption before any of it is
// applied: enum ranges, duplicate coordinates, resource invariants, and
// agreement between the cell list and the placed counters.
func (s Snapshot) validate() error {
	if s.CurrentPlayer != Black && s.CurrentPlayer != White {
		return fmt.Errorf("%w: bad current player %d", ErrInvalidSnapshot, s.CurrentPlayer)
	}
	switch s.Outcome.Status {
	case StatusInProgress, StatusWin, StatusDraw, "":
	default:
		return fmt.Errorf("%w: bad outcome status %q", ErrInvalidSnapshot, s.Outcome.Status)
	}
	if !s.Black.valid() || !s.White.valid() {
		return fmt.Errorf("%w: resource pool out of range", ErrInvalidSnapshot)
	}

	seen := make(map[HexCoord]struct{}, len(s.Cells))
	var placed [2]PlayerResources
	for _, rec := range s.Cells {
		c := HexCoord{rec.Q, rec.R}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate cell (%d,%d)", ErrInvalidSnapshot, rec.Q, rec.R)
		}
		seen[c] = struct{}{}
		if rec.Color != Black && rec.Color != White {
			return fmt.Errorf("%w: bad tile color at (%d,%d)", ErrInvalidSnapshot, rec.Q, rec.R)
		}
		placed[rec.Color].Tiles.Placed++
		if p := rec.Piece; p != nil {
			if p.Color != Black && p.Color != White {
				return fmt.Errorf("%w: bad piece color at (%d,%d)", ErrInvalidSnapshot, rec.Q, rec.R)
			}
			switch p.Kind {
			case Disc:
				placed[p.Color].Discs.Placed++
			case Ring:
				placed[p.Color].Rings.Placed++
			default:
				return fmt.Errorf("%w: bad piece kind at (%d,%d)", ErrInvalidSnapshot, rec.Q, rec.R)
			}
		}
	}

	for _, color := range []Color{Black, White} {
		res := s.Black
		if color == White {
			res = s.White
		}
		got := placed[color]
		if got.Tiles.Placed != res.Tiles.Placed ||
			got.Discs.Placed != res.Discs.Placed ||
			got.Rings.Placed != res.Rings.Placed {
			return fmt.Errorf("%w: %s placed counters disagree with cell list", ErrInvalidSnapshot, color)
		}
	}
	return nil
}

// Restore replaces the game state with the snapshot's contents. A malformed
// snapshot is reported as an error and leaves the prior in-memory state
// untouched; nothing is applied partially. History resets, so repetition
// counting starts over from the restored position.
func (gs *GameState) Restore(s Snapshot) error {
	if err := s.validate(); err != nil {
		return err
	}

	board := NewBoard()
	for _, rec := range s.Cells {
		c := HexCoord{rec.Q, rec.R}
		if err := board.SetTile(c, rec.Color); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		if rec.Piece != nil {
			if err := board.PlacePiece(c, Piece{Kind: rec.Piece.Kind, Color: rec.Piece.Color}); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
			}
		}
	}

	gs.board = board
	gs.resources[Black] = s.Black
	gs.resources[White] = s.White
	gs.current = s.CurrentPlayer
	gs.outcome = s.Outcome
	if gs.outcome.Status == "" {
		gs.outcome = Outcome{Status: StatusInProgress}
	}
	gs.history = newPositionHistory()
	gs.continuation = false
	gs.clearSelection()
	gs.lastNote = "game restored"
	gs.UpdateStatus()
	return nil
}
