package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexrift/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	gs := game.NewGameState()
	require.NoError(t, gs.ChooseAction(game.ActionPlaceTile))
	require.NoError(t, gs.ChooseDestination(gs.LegalDestinations()[0]))

	id, err := s.Save("midgame", gs.Snapshot())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := s.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "midgame", loaded.Name)
	assert.Equal(t, gs.Snapshot(), loaded.Snapshot)

	restored := game.NewGameState()
	require.NoError(t, restored.Restore(loaded.Snapshot))
	assert.Equal(t, gs.CurrentPlayer(), restored.CurrentPlayer())
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	snap := game.NewGameState().Snapshot()

	first, err := s.Save("first", snap)
	require.NoError(t, err)
	second, err := s.Save("second", snap)
	require.NoError(t, err)

	// Pin distinct update times; back-to-back writes can tie on a coarse
	// clock, so ordering is not left to time.Now.
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	setUpdatedAt(t, s, first, base.Add(time.Hour))
	setUpdatedAt(t, s, second, base)

	games, err := s.List()
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, first, games[0].ID)
	assert.Equal(t, second, games[1].ID)

	// Update bumps updated_at past the pinned times and reorders the list.
	require.NoError(t, s.Update(second, snap))
	games, err = s.List()
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, second, games[0].ID)
	assert.True(t, games[0].UpdatedAt.After(base.Add(time.Hour)))
}

func setUpdatedAt(t *testing.T, s *Store, id string, ts time.Time) {
	t.Helper()
	_, err := s.conn.Exec(`UPDATE saved_games SET updated_at = ? WHERE id = ?`, ts, id)
	require.NoError(t, err)
}

func TestLoadAndDeleteMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete("no-such-id"), ErrNotFound)
	assert.ErrorIs(t, s.Update("no-such-id", game.NewGameState().Snapshot()), ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	id, err := s.Save("doomed", game.NewGameState().Snapshot())
	require.NoError(t, err)

	require.NoError(t, s.Delete(id))
	_, err = s.Load(id)
	assert.ErrorIs(t, err, ErrNotFound)
}
