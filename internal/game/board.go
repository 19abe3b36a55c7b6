package game

// Color identifies a player side, a tile face, or a piece owner.
type Color int

const (
	Black Color = iota
	White
)

// String returns the lowercase color name.
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

// PieceKind is the kind of a piece: disc or ring.
type PieceKind int

const (
	Disc PieceKind = iota
	Ring
)

// String returns the lowercase kind name.
func (k PieceKind) String() string {
	if k == Ring {
		return "ring"
	}
	return "disc"
}

// Piece is a disc or ring owned by one side.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// Cell is a placed tile, optionally occupied by a piece. A Cell exists only
// where a tile has been placed; absence of a board entry means "no tile".
type Cell struct {
	Color Color
	Piece *Piece
}

// Board is a sparse, unbounded hexagonal board: a mapping from axial
// coordinate to tile content plus bookkeeping of the occupied bounds.
// The board only ever grows; tiles are never removed once placed.
type Board struct {
	cells                  map[HexCoord]Cell
	minQ, maxQ, minR, maxR int
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{cells: make(map[HexCoord]Cell)}
}

// Get returns the cell at c and whether a tile exists there.
func (b *Board) Get(c HexCoord) (Cell, bool) {
	cell, ok := b.cells[c]
	return cell, ok
}

// HasTile reports whether a tile has been placed at c.
func (b *Board) HasTile(c HexCoord) bool {
	_, ok := b.cells[c]
	return ok
}

// PieceAt returns the piece at c, or nil if c has no tile or no piece.
func (b *Board) PieceAt(c HexCoord) *Piece {
	cell, ok := b.cells[c]
	if !ok {
		return nil
	}
	return cell.Piece
}

// SetTile places a tile of the given color at c. The caller is responsible
// for legality; SetTile itself only refuses to overwrite an existing tile.
func (b *Board) SetTile(c HexCoord, color Color) error {
	if _, ok := b.cells[c]; ok {
		return ErrTileOccupied
	}
	if len(b.cells) == 0 {
		b.minQ, b.maxQ, b.minR, b.maxR = c.Q, c.Q, c.R, c.R
	} else {
		b.minQ = min(b.minQ, c.Q)
		b.maxQ = max(b.maxQ, c.Q)
		b.minR = min(b.minR, c.R)
		b.maxR = max(b.maxR, c.R)
	}
	b.cells[c] = Cell{Color: color}
	return nil
}

// PlacePiece puts p on the tile at c. The tile must exist and be empty.
func (b *Board) PlacePiece(c HexCoord, p Piece) error {
	cell, ok := b.cells[c]
	if !ok {
		return ErrNoTile
	}
	if cell.Piece != nil {
		return ErrCellOccupied
	}
	cell.Piece = &p
	b.cells[c] = cell
	return nil
}

// RemovePiece takes the piece off the tile at c and returns it,
// or nil when there is nothing to remove.
func (b *Board) RemovePiece(c HexCoord) *Piece {
	cell, ok := b.cells[c]
	if !ok || cell.Piece == nil {
		return nil
	}
	p := cell.Piece
	cell.Piece = nil
	b.cells[c] = cell
	return p
}

// AllCoords returns a slice of all tiled coordinates, in map order.
func (b *Board) AllCoords() []HexCoord {
	coords := make([]HexCoord, 0, len(b.cells))
	for c := range b.cells {
		coords = append(coords, c)
	}
	return coords
}

// Len returns the number of placed tiles.
func (b *Board) Len() int { return len(b.cells) }

// Bounds returns the min/max occupied coordinates, for centering.
// ok is false on an empty board.
func (b *Board) Bounds() (minC, maxC HexCoord, ok bool) {
	if len(b.cells) == 0 {
		return HexCoord{}, HexCoord{}, false
	}
	return HexCoord{b.minQ, b.minR}, HexCoord{b.maxQ, b.maxR}, true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make(map[HexCoord]Cell, len(b.cells))
	for c, cell := range b.cells {
		if cell.Piece != nil {
			p := *cell.Piece
			cell.Piece = &p
		}
		cells[c] = cell
	}
	return &Board{
		cells: cells,
		minQ:  b.minQ, maxQ: b.maxQ,
		minR: b.minR, maxR: b.maxR,
	}
}
