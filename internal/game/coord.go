package game

// HexCoord represents an axial hex coordinate (q, r).
// The third cube coordinate is derived: s = -q-r.
type HexCoord struct {
	Q, R int
}

// Directions defines the 6 neighbor offsets in axial coordinates,
// enumerated East, NE, NW, West, SW, SE.
var Directions = []HexCoord{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// S returns the derived cube coordinate of c.
func (c HexCoord) S() int { return -c.Q - c.R }

// Add returns c + d.
func (c HexCoord) Add(d HexCoord) HexCoord {
	return HexCoord{c.Q + d.Q, c.R + d.R}
}

// Sub returns c - d.
func (c HexCoord) Sub(d HexCoord) HexCoord {
	return HexCoord{c.Q - d.Q, c.R - d.R}
}

// Scale returns c scaled by k.
func (c HexCoord) Scale(k int) HexCoord {
	return HexCoord{c.Q * k, c.R * k}
}

// Distance returns the hex distance between c and o.
func (c HexCoord) Distance(o HexCoord) int {
	d := c.Sub(o)
	return (abs(d.Q) + abs(d.R) + abs(d.S())) / 2
}

// Neighbors returns the 6 adjacent coordinates of c in direction order,
// independent of whether those coordinates hold tiles.
func (c HexCoord) Neighbors() []HexCoord {
	out := make([]HexCoord, len(Directions))
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

// lineDirection reports the direction step and step count for a straight
// line from c to o, or false when c and o are not collinear along one of
// the 6 directions.
func (c HexCoord) lineDirection(o HexCoord) (HexCoord, int, bool) {
	d := o.Sub(c)
	if d == (HexCoord{}) {
		return HexCoord{}, 0, false
	}
	for _, dir := range Directions {
		switch {
		case dir.Q == 0:
			if d.Q != 0 || d.R%dir.R != 0 || d.R/dir.R <= 0 {
				continue
			}
			return dir, d.R / dir.R, true
		case dir.R == 0:
			if d.R != 0 || d.Q%dir.Q != 0 || d.Q/dir.Q <= 0 {
				continue
			}
			return dir, d.Q / dir.Q, true
		default:
			if d.Q%dir.Q != 0 || d.R%dir.R != 0 {
				continue
			}
			n := d.Q / dir.Q
			if n <= 0 || d.R/dir.R != n {
				continue
			}
			return dir, n, true
		}
	}
	return HexCoord{}, 0, false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
