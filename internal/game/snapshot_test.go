package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	gs := NewGameState()
	mustChoose(t, gs, ActionPlaceTile)
	mustDest(t, gs, gs.LegalDestinations()[0])

	snap := gs.Snapshot()
	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored := NewGameState()
	require.NoError(t, restored.Restore(decoded))

	assert.Equal(t, gs.CurrentPlayer(), restored.CurrentPlayer())
	assert.Equal(t, gs.Resources(Black), restored.Resources(Black))
	assert.Equal(t, gs.Resources(White), restored.Resources(White))
	assert.Equal(t, gs.Board().Len(), restored.Board().Len())
	assert.Equal(t,
		PositionSignature(gs.Board(), gs.CurrentPlayer()),
		PositionSignature(restored.Board(), restored.CurrentPlayer()),
		"restored board must serialize identically")

	// Bounds are recomputed from the cell list, not persisted.
	wantMin, wantMax, _ := gs.Board().Bounds()
	gotMin, gotMax, ok := restored.Board().Bounds()
	require.True(t, ok)
	assert.Equal(t, wantMin, gotMin)
	assert.Equal(t, wantMax, gotMax)
}

func TestRestoreRejectsMalformedSnapshots(t *testing.T) {
	base := NewGameState().Snapshot()

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"duplicate coordinate", func(s *Snapshot) {
			s.Cells = append(s.Cells, s.Cells[0])
		}},
		{"bad tile color", func(s *Snapshot) {
			s.Cells[0].Color = Color(7)
		}},
		{"bad piece kind", func(s *Snapshot) {
			s.Cells[0].Piece = &PieceRecord{Kind: PieceKind(9), Color: Black}
		}},
		{"bad current player", func(s *Snapshot) {
			s.CurrentPlayer = Color(3)
		}},
		{"placed exceeds total", func(s *Snapshot) {
			s.Black.Discs.Placed = s.Black.Discs.Total + 1
		}},
		{"counter disagrees with cells", func(s *Snapshot) {
			s.White.Tiles.Placed++
		}},
		{"negative captured pool", func(s *Snapshot) {
			s.Black.Discs.Captured = -1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			mustChoose(t, gs, ActionPlaceTile)
			mustDest(t, gs, gs.LegalDestinations()[0])
			before := gs.Snapshot()

			bad := base
			bad.Cells = append([]CellRecord(nil), base.Cells...)
			tt.mutate(&bad)

			err := gs.Restore(bad)
			require.ErrorIs(t, err, ErrInvalidSnapshot)
			assert.Equal(t, before, gs.Snapshot(), "failed restore must leave prior state untouched")
		})
	}
}

func TestRestoreDetectsStalemate(t *testing.T) {
	// A restored position where the player to move has nothing left must
	// resolve to a draw without any command.
	snap := Snapshot{
		Cells: []CellRecord{
			{Q: 0, R: 0, Color: Black, Piece: &PieceRecord{Kind: Disc, Color: Black}},
			{Q: 9, R: 9, Color: White, Piece: &PieceRecord{Kind: Disc, Color: White}},
		},
		Black: PlayerResources{
			Tiles: Pool{Total: TilesPerPlayer, Placed: 1},
			Discs: Pool{Total: 1, Placed: 1},
			Rings: Pool{Total: RingsPerPlayer, Placed: 0},
		},
		White: PlayerResources{
			Tiles: Pool{Total: TilesPerPlayer, Placed: 1},
			Discs: Pool{Total: 1, Placed: 1},
			Rings: Pool{Total: RingsPerPlayer},
		},
		CurrentPlayer: Black,
		Outcome:       Outcome{Status: StatusInProgress},
	}
	// Black still has tile supply, but a lone pair of isolated tiles never
	// satisfies the two-neighbor rule, and the stranded disc cannot move.
	gs := NewGameState()
	require.NoError(t, gs.Restore(snap))

	assert.Equal(t, StatusDraw, gs.Outcome().Status)
	assert.Equal(t, ReasonNoMoves, gs.Outcome().Reason)
}

func TestPositionSignatureDistinguishesTurn(t *testing.T) {
	gs := NewGameState()
	b := gs.Board()
	assert.NotEqual(t, PositionSignature(b, Black), PositionSignature(b, White))
	assert.Equal(t, PositionSignature(b, Black), PositionSignature(b.Clone(), Black))
}
