package game

// Status is the coarse game result state.
type Status string

const (
	StatusInProgress Status = "inProgress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Reason explains a terminal outcome.
type Reason string

const (
	ReasonDiscs      Reason = "discs"      // opponent's disc supply captured out
	ReasonRings      Reason = "rings"      // opponent's ring supply captured out
	ReasonNoPieces   Reason = "pieces"     // opponent has nothing left on the board
	ReasonRepetition Reason = "repetition" // same position three times
	ReasonNoMoves    Reason = "noMoves"    // player to move has no legal action
)

// Outcome is the evaluated result of a position.
type Outcome struct {
	Status Status `json:"status"`
	Winner Color  `json:"winner"`
	Reason Reason `json:"reason,omitempty"`
}

// InProgress reports whether the game is still running.
func (o Outcome) InProgress() bool { return o.Status == StatusInProgress }

// winFor checks the fixed-order win conditions for the player who just
// moved: the opponent is out of discs, out of rings, or has no piece left
// anywhere on the board. The order only matters for which reason gets
// reported.
func winFor(b *Board, mover Color, opponent PlayerResources) (Outcome, bool) {
	opp := mover.Opponent()
	if opponent.Discs.Total == 0 {
		return Outcome{Status: StatusWin, Winner: mover, Reason: ReasonDiscs}, true
	}
	if opponent.Rings.Total == 0 {
		return Outcome{Status: StatusWin, Winner: mover, Reason: ReasonRings}, true
	}
	for _, c := range b.AllCoords() {
		if p := b.PieceAt(c); p != nil && p.Color == opp {
			return Outcome{Status: StatusInProgress}, false
		}
	}
	return Outcome{Status: StatusWin, Winner: mover, Reason: ReasonNoPieces}, true
}

// EvaluateOutcome is the stateless verdict mirror: given the board, both
// resource records, the player who just completed a turn, and the
// repetition count of the resulting position signature, it returns the same
// outcome the turn state machine would enforce. The win checks run before
// the opponent's no-move check, matching turn resolution order.
func EvaluateOutcome(b *Board, black, white PlayerResources, justMoved Color, repetitions int) Outcome {
	if repetitions >= repetitionLimit {
		return Outcome{Status: StatusDraw, Reason: ReasonRepetition}
	}
	opp := black
	if justMoved == Black {
		opp = white
	}
	if out, won := winFor(b, justMoved, opp); won {
		return out
	}
	next := justMoved.Opponent()
	nextRes := black
	if next == White {
		nextRes = white
	}
	if !HasAnyMove(b, nextRes, next) {
		return Outcome{Status: StatusDraw, Reason: ReasonNoMoves}
	}
	return Outcome{Status: StatusInProgress}
}
