package game

import "sort"

// This file is the single legality layer. The turn state machine in state.go
// calls these predicates rather than re-deriving any of them, and external
// consumers (tests, alternative front ends) can evaluate legality without
// touching engine state.

// IsValidTilePlacement reports whether a new tile may be placed at c:
// the coordinate must be empty and at least 2 of its 6 neighbors must
// already hold tiles. This is the sole tile-growth rule; it keeps the
// board connected.
func IsValidTilePlacement(b *Board, c HexCoord) bool {
	if b.HasTile(c) {
		return false
	}
	occupied := 0
	for _, n := range c.Neighbors() {
		if b.HasTile(n) {
			occupied++
		}
	}
	return occupied >= 2
}

// ValidTilePlacements returns every empty coordinate adjacent to the
// existing board where a tile may legally be placed. The color is accepted
// for interface symmetry; tile placement is not color-restricted.
func ValidTilePlacements(b *Board, _ Color) []HexCoord {
	seen := make(map[HexCoord]struct{})
	var out []HexCoord
	for _, c := range b.AllCoords() {
		for _, n := range c.Neighbors() {
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			if IsValidTilePlacement(b, n) {
				out = append(out, n)
			}
		}
	}
	sortCoords(out)
	return out
}

// IsValidPiecePlacement reports whether color may place a new piece at c:
// a tile must exist there, its face must match color, and it must be empty.
func IsValidPiecePlacement(b *Board, c HexCoord, color Color) bool {
	cell, ok := b.Get(c)
	return ok && cell.Color == color && cell.Piece == nil
}

// ValidPiecePlacements returns all coordinates where color may place a piece.
func ValidPiecePlacements(b *Board, color Color) []HexCoord {
	var out []HexCoord
	for _, c := range b.AllCoords() {
		if IsValidPiecePlacement(b, c, color) {
			out = append(out, c)
		}
	}
	sortCoords(out)
	return out
}

// ValidDiscMoves returns every destination reachable by the disc at c:
// single steps onto an adjacent empty tile, plus every landing reachable
// through one or more consecutive straight-line jumps. Jumps go over any
// adjacent piece, friendly or enemy, onto the empty tile directly beyond.
// The chain search is an iterative depth-first traversal with a visited
// set, so revisited landings cannot loop forever; the caller chooses how
// many jumps to actually take.
func ValidDiscMoves(b *Board, c HexCoord) []HexCoord {
	if b.PieceAt(c) == nil {
		return nil
	}

	dests := make(map[HexCoord]struct{})
	for _, d := range Directions {
		n := c.Add(d)
		if b.HasTile(n) && b.PieceAt(n) == nil {
			dests[n] = struct{}{}
		}
	}

	visited := map[HexCoord]struct{}{c: {}}
	stack := []HexCoord{c}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			over := pos.Add(d)
			land := pos.Add(d.Scale(2))
			if b.PieceAt(over) == nil {
				continue
			}
			if !b.HasTile(land) || b.PieceAt(land) != nil {
				continue
			}
			if _, done := visited[land]; done {
				continue
			}
			visited[land] = struct{}{}
			dests[land] = struct{}{}
			stack = append(stack, land)
		}
	}

	out := make([]HexCoord, 0, len(dests))
	for d := range dests {
		out = append(out, d)
	}
	sortCoords(out)
	return out
}

// ValidDiscJumps returns only the jump landings reachable from c,
// excluding plain steps. Used for multi-jump continuation checks.
func ValidDiscJumps(b *Board, c HexCoord) []HexCoord {
	var out []HexCoord
	for _, d := range Directions {
		over := c.Add(d)
		land := c.Add(d.Scale(2))
		if b.PieceAt(over) != nil && b.HasTile(land) && b.PieceAt(land) == nil {
			out = append(out, land)
		}
	}
	return out
}

// JumpedHexes returns the intermediate coordinates traversed by a
// straight-line jump from one coordinate to another, ordered from source to
// destination. It returns nil when the two coordinates are not collinear
// along one of the 6 directions.
func JumpedHexes(from, to HexCoord) []HexCoord {
	dir, n, ok := from.lineDirection(to)
	if !ok || n < 2 {
		return nil
	}
	out := make([]HexCoord, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, from.Add(dir.Scale(i)))
	}
	return out
}

// ValidRingMoves returns the destinations of the ring at c: the coordinates
// exactly two steps away along each of the 6 directions that hold a tile
// and are empty or enemy-occupied. A ring never lands on a friendly piece,
// and the leap ignores whatever lies between.
func ValidRingMoves(b *Board, c HexCoord) []HexCoord {
	ring := b.PieceAt(c)
	if ring == nil {
		return nil
	}
	var out []HexCoord
	for _, d := range Directions {
		t := c.Add(d.Scale(2))
		cell, ok := b.Get(t)
		if !ok {
			continue
		}
		if cell.Piece != nil && cell.Piece.Color == ring.Color {
			continue
		}
		out = append(out, t)
	}
	sortCoords(out)
	return out
}

// ValidPieceMoves dispatches on the kind of the piece at c.
func ValidPieceMoves(b *Board, c HexCoord) []HexCoord {
	p := b.PieceAt(c)
	if p == nil {
		return nil
	}
	if p.Kind == Ring {
		return ValidRingMoves(b, c)
	}
	return ValidDiscMoves(b, c)
}

// HasAnyMove reports whether color has at least one legal action of any
// kind: a placement backed by remaining supply, or an on-board piece with a
// nonempty move set. Used for the no-move draw.
func HasAnyMove(b *Board, res PlayerResources, color Color) bool {
	if res.Tiles.Placed < res.Tiles.Total && len(ValidTilePlacements(b, color)) > 0 {
		return true
	}
	canPlaceDisc := res.Discs.Placed < res.Discs.Total
	canPlaceRing := res.Rings.Placed < res.Rings.Total && res.Discs.Captured > 0
	if canPlaceDisc || canPlaceRing {
		if len(ValidPiecePlacements(b, color)) > 0 {
			return true
		}
	}
	for _, c := range b.AllCoords() {
		p := b.PieceAt(c)
		if p == nil || p.Color != color {
			continue
		}
		if len(ValidPieceMoves(b, c)) > 0 {
			return true
		}
	}
	return false
}

func sortCoords(cs []HexCoord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Q != cs[j].Q {
			return cs[i].Q < cs[j].Q
		}
		return cs[i].R < cs[j].R
	})
}
