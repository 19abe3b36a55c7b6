package game

import (
	"strconv"
	"strings"
)

// A position repeats to a draw on the third occurrence.
const repetitionLimit = 3

// PositionSignature serializes the full board content plus the player to
// move into a canonical string: cells sorted by coordinate, each written as
// q,r,tileColor and an optional piece marker. Two positions produce the
// same signature exactly when every tile, every piece, and the side to move
// coincide. The board grows without bound, so the signature is built from
// the live cell set rather than a fixed-size key table.
func PositionSignature(b *Board, toMove Color) string {
	coords := b.AllCoords()
	sortCoords(coords)

	var sb strings.Builder
	sb.Grow(len(coords)*12 + 2)
	sb.WriteString(toMove.String()[:1])
	for _, c := range coords {
		cell, _ := b.Get(c)
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(c.Q))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(c.R))
		sb.WriteByte(':')
		sb.WriteString(cell.Color.String()[:1])
		if cell.Piece != nil {
			sb.WriteString(cell.Piece.Color.String()[:1])
			sb.WriteString(cell.Piece.Kind.String()[:1])
		}
	}
	return sb.String()
}

// positionHistory counts how many times each position signature has
// occurred, owned by the engine for the duration of one game.
type positionHistory struct {
	counts map[string]int
}

func newPositionHistory() *positionHistory {
	return &positionHistory{counts: make(map[string]int)}
}

// record logs sig and returns how many times it has now occurred.
func (h *positionHistory) record(sig string) int {
	h.counts[sig]++
	return h.counts[sig]
}
