package game

// Per-player supply sizes.
const (
	TilesPerPlayer = 9
	DiscsPerPlayer = 6
	RingsPerPlayer = 3
)

// Pool tracks one piece supply for one player. Total is the number of
// pieces the player owns (in hand plus on the board); Placed counts those
// currently on the board; Captured counts enemy pieces of this kind taken.
// Placed never exceeds Total. A victim's Total shrinks exactly when one of
// its pieces is captured; the one way a Total ever grows is a ring
// placement returning a captured disc to the opponent's supply.
type Pool struct {
	Total    int `json:"total"`
	Placed   int `json:"placed"`
	Captured int `json:"captured"`
}

// Available returns how many pieces remain in hand.
func (p Pool) Available() int { return p.Total - p.Placed }

// PlayerResources is the full resource record for one side.
type PlayerResources struct {
	Tiles Pool `json:"tiles"`
	Discs Pool `json:"discs"`
	Rings Pool `json:"rings"`
}

// NewPlayerResources returns the starting supply for one side.
func NewPlayerResources() PlayerResources {
	return PlayerResources{
		Tiles: Pool{Total: TilesPerPlayer},
		Discs: Pool{Total: DiscsPerPlayer},
		Rings: Pool{Total: RingsPerPlayer},
	}
}

func (r PlayerResources) valid() bool {
	for _, p := range []Pool{r.Tiles, r.Discs, r.Rings} {
		if p.Total < 0 || p.Placed < 0 || p.Captured < 0 || p.Placed > p.Total {
			return false
		}
	}
	return true
}
