package game

import "fmt"

// Action is one of the four things a player can do on their turn.
type Action int

const (
	ActionNone Action = iota
	ActionPlaceTile
	ActionPlaceDisc
	ActionPlaceRing
	ActionMovePiece
)

// String returns the action name used in status notes.
func (a Action) String() string {
	switch a {
	case ActionPlaceTile:
		return "placeTile"
	case ActionPlaceDisc:
		return "placeDisc"
	case ActionPlaceRing:
		return "placeRing"
	case ActionMovePiece:
		return "movePiece"
	}
	return "none"
}

// Phase is the in-progress-action state of the turn machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActionChosen
	PhaseSourceChosen
)

// GameState owns the board, both players' resources, the turn state
// machine, and the position history for one game. It is the single writer
// of the board and resources; collaborators read through the query methods
// and drive play through ChooseAction/ChooseSource/ChooseDestination (or
// the fused SelectHex). Illegal commands are rejected with an error and a
// readable status note, leaving state unchanged.
type GameState struct {
	board        *Board
	resources    [2]PlayerResources
	current      Color
	phase        Phase
	action       Action
	source       *HexCoord
	legalDests   []HexCoord
	continuation bool
	chainPiece   HexCoord
	history      *positionHistory
	outcome      Outcome
	lastNote     string
}

// Starting cluster: two tiles per color, one disc per color on a tile of
// its own color, black to move.
var (
	setupBlackTiles = []HexCoord{{0, 0}, {0, 1}}
	setupWhiteTiles = []HexCoord{{1, 0}, {-1, 1}}
	setupBlackDisc  = HexCoord{0, 0}
	setupWhiteDisc  = HexCoord{1, 0}
)

// NewGameState creates and initializes a fresh game.
func NewGameState() *GameState {
	gs := &GameState{
		board:   NewBoard(),
		history: newPositionHistory(),
		current: Black,
		outcome: Outcome{Status: StatusInProgress},
	}
	gs.resources[Black] = NewPlayerResources()
	gs.resources[White] = NewPlayerResources()

	for _, c := range setupBlackTiles {
		_ = gs.board.SetTile(c, Black)
	}
	for _, c := range setupWhiteTiles {
		_ = gs.board.SetTile(c, White)
	}
	_ = gs.board.PlacePiece(setupBlackDisc, Piece{Kind: Disc, Color: Black})
	_ = gs.board.PlacePiece(setupWhiteDisc, Piece{Kind: Disc, Color: White})
	gs.resources[Black].Tiles.Placed = len(setupBlackTiles)
	gs.resources[White].Tiles.Placed = len(setupWhiteTiles)
	gs.resources[Black].Discs.Placed = 1
	gs.resources[White].Discs.Placed = 1

	gs.lastNote = "new game: black to move"
	return gs
}

// Reset reinitializes the game in place.
func (gs *GameState) Reset() { *gs = *NewGameState() }

// Board returns the live board for rendering and queries. Collaborators
// must not mutate it; all writes go through the command methods.
func (gs *GameState) Board() *Board { return gs.board }

// CurrentPlayer returns whose turn it is.
func (gs *GameState) CurrentPlayer() Color { return gs.current }

// SelectedAction returns the action chosen for the turn in progress.
func (gs *GameState) SelectedAction() Action { return gs.action }

// SelectedSource returns the selected source coordinate mid-move, if any.
func (gs *GameState) SelectedSource() (HexCoord, bool) {
	if gs.source == nil {
		return HexCoord{}, false
	}
	return *gs.source, true
}

// LegalDestinations returns a copy of the current destination set.
func (gs *GameState) LegalDestinations() []HexCoord {
	out := make([]HexCoord, len(gs.legalDests))
	copy(out, gs.legalDests)
	return out
}

// ContinuationPending reports whether a disc is mid multi-jump.
func (gs *GameState) ContinuationPending() bool { return gs.continuation }

// Outcome returns the current game result.
func (gs *GameState) Outcome() Outcome { return gs.outcome }

// Resources returns a snapshot of one player's resource record.
func (gs *GameState) Resources(c Color) PlayerResources { return gs.resources[c] }

// LastNote returns the most recent human-readable status message.
func (gs *GameState) LastNote() string { return gs.lastNote }

// Phase returns the turn machine phase.
func (gs *GameState) Phase() Phase { return gs.phase }

func (gs *GameState) reject(err error, note string) error {
	gs.lastNote = note
	return err
}

// ChooseAction selects what the current player will do this turn. Supply
// checks happen here: an exhausted pool or (for placeRing) an empty
// captured-disc pool rejects the action. Placement actions with no legal
// destination are auto-cancelled back to idle. Choosing any non-move action
// mid jump-chain is a legal voluntary stop: it forfeits the remaining jumps
// and ends the turn.
func (gs *GameState) ChooseAction(a Action) error {
	if !gs.outcome.InProgress() {
		return gs.reject(ErrGameOver, "game is over")
	}
	if gs.continuation {
		if a == ActionMovePiece {
			return nil // already mid-chain on the same piece
		}
		gs.forfeitChain()
		return nil
	}

	res := gs.resources[gs.current]
	switch a {
	case ActionPlaceTile:
		if res.Tiles.Available() == 0 {
			return gs.reject(ErrSupplyExhausted, fmt.Sprintf("%s has no tiles left", gs.current))
		}
		gs.legalDests = ValidTilePlacements(gs.board, gs.current)
	case ActionPlaceDisc:
		if res.Discs.Available() == 0 {
			return gs.reject(ErrSupplyExhausted, fmt.Sprintf("%s has no discs left", gs.current))
		}
		gs.legalDests = ValidPiecePlacements(gs.board, gs.current)
	case ActionPlaceRing:
		if res.Rings.Available() == 0 {
			return gs.reject(ErrSupplyExhausted, fmt.Sprintf("%s has no rings left", gs.current))
		}
		if res.Discs.Captured == 0 {
			return gs.reject(ErrNoCapturedDiscs, "a ring placement returns a captured disc: none held")
		}
		gs.legalDests = ValidPiecePlacements(gs.board, gs.current)
	case ActionMovePiece:
		gs.legalDests = nil
	default:
		return gs.reject(ErrNoActionChosen, "unknown action")
	}

	if a != ActionMovePiece && len(gs.legalDests) == 0 {
		gs.clearSelection()
		return gs.reject(ErrNoLegalPlacements, fmt.Sprintf("no legal destination for %s", a))
	}

	gs.action = a
	gs.source = nil
	gs.phase = PhaseActionChosen
	gs.lastNote = fmt.Sprintf("%s: choose a destination", a)
	if a == ActionMovePiece {
		gs.lastNote = "movePiece: choose a piece"
	}
	return nil
}

// ChooseSource selects the piece to move. During a multi-jump, selecting
// any coordinate other than the chained piece ends the turn immediately,
// forfeiting the remaining jumps.
func (gs *GameState) ChooseSource(c HexCoord) error {
	if !gs.outcome.InProgress() {
		return gs.reject(ErrGameOver, "game is over")
	}
	if gs.action != ActionMovePiece {
		return gs.reject(ErrNoActionChosen, "choose movePiece before selecting a piece")
	}
	if gs.continuation {
		if c == gs.chainPiece {
			return nil // chain piece stays selected
		}
		gs.forfeitChain()
		return nil
	}
	p := gs.board.PieceAt(c)
	if p == nil || p.Color != gs.current {
		return gs.reject(ErrNotYourPiece, fmt.Sprintf("%s has no piece at (%d,%d)", gs.current, c.Q, c.R))
	}
	src := c
	gs.source = &src
	gs.legalDests = ValidPieceMoves(gs.board, c)
	gs.phase = PhaseSourceChosen
	gs.lastNote = fmt.Sprintf("%s %s selected at (%d,%d)", gs.current, p.Kind, c.Q, c.R)
	return nil
}

// ChooseDestination applies the pending action at c. The destination must
// be in the current legal set. Captures, supply bookkeeping, multi-jump
// continuation, history logging, and outcome evaluation all resolve here.
func (gs *GameState) ChooseDestination(c HexCoord) error {
	if !gs.outcome.InProgress() {
		return gs.reject(ErrGameOver, "game is over")
	}
	switch gs.phase {
	case PhaseActionChosen:
		if gs.action == ActionMovePiece {
			return gs.reject(ErrNoSourceChosen, "select a piece to move first")
		}
	case PhaseSourceChosen:
	default:
		return gs.reject(ErrNoActionChosen, "choose an action first")
	}
	if !gs.isLegalDest(c) {
		return gs.reject(ErrIllegalTarget, fmt.Sprintf("(%d,%d) is not a legal destination", c.Q, c.R))
	}

	switch gs.action {
	case ActionPlaceTile:
		if err := gs.board.SetTile(c, gs.current); err != nil {
			return gs.reject(err, "tile placement failed")
		}
		gs.resources[gs.current].Tiles.Placed++
		gs.lastNote = fmt.Sprintf("%s placed a tile at (%d,%d)", gs.current, c.Q, c.R)

	case ActionPlaceDisc:
		if err := gs.board.PlacePiece(c, Piece{Kind: Disc, Color: gs.current}); err != nil {
			return gs.reject(err, "disc placement failed")
		}
		gs.resources[gs.current].Discs.Placed++
		gs.lastNote = fmt.Sprintf("%s placed a disc at (%d,%d)", gs.current, c.Q, c.R)

	case ActionPlaceRing:
		if err := gs.board.PlacePiece(c, Piece{Kind: Ring, Color: gs.current}); err != nil {
			return gs.reject(err, "ring placement failed")
		}
		opp := gs.current.Opponent()
		gs.resources[gs.current].Rings.Placed++
		gs.resources[gs.current].Discs.Captured--
		gs.resources[opp].Discs.Total++
		gs.lastNote = fmt.Sprintf("%s placed a ring at (%d,%d), returning a disc to %s", gs.current, c.Q, c.R, opp)

	case ActionMovePiece:
		return gs.applyMove(*gs.source, c)

	default:
		return gs.reject(ErrNoActionChosen, "choose an action first")
	}

	gs.finishTurn()
	return nil
}

// applyMove executes a piece move from src to dst, resolving captures.
// Discs capture every enemy piece jumped over; rings capture only by
// landing directly on an enemy piece.
func (gs *GameState) applyMove(src, dst HexCoord) error {
	moving := gs.board.RemovePiece(src)

	captured := 0
	if moving.Kind == Ring {
		if victim := gs.board.RemovePiece(dst); victim != nil {
			gs.capture(*victim)
			captured++
		}
	} else {
		for _, over := range JumpedHexes(src, dst) {
			v := gs.board.PieceAt(over)
			if v == nil || v.Color == gs.current {
				continue
			}
			gs.board.RemovePiece(over)
			gs.capture(*v)
			captured++
		}
	}
	_ = gs.board.PlacePiece(dst, *moving)
	gs.lastNote = fmt.Sprintf("%s %s moved (%d,%d) -> (%d,%d)", gs.current, moving.Kind, src.Q, src.R, dst.Q, dst.R)
	if captured > 0 {
		gs.lastNote += fmt.Sprintf(", capturing %d", captured)
	}

	// A capturing disc with further jumps stays on the move: the turn does
	// not complete and only the chained piece may continue.
	if moving.Kind == Disc && captured > 0 {
		if jumps := ValidDiscJumps(gs.board, dst); len(jumps) > 0 {
			gs.continuation = true
			gs.chainPiece = dst
			d := dst
			gs.source = &d
			gs.legalDests = jumps
			gs.phase = PhaseSourceChosen
			gs.lastNote += "; jump chain continues"
			return nil
		}
	}
	gs.finishTurn()
	return nil
}

// capture books one taken piece: the capturing side's captured pool grows,
// the victim's total and placed shrink.
func (gs *GameState) capture(victim Piece) {
	mine := &gs.resources[gs.current]
	theirs := &gs.resources[victim.Color]
	if victim.Kind == Ring {
		mine.Rings.Captured++
		theirs.Rings.Total--
		theirs.Rings.Placed--
	} else {
		mine.Discs.Captured++
		theirs.Discs.Total--
		theirs.Discs.Placed--
	}
}

// forfeitChain ends a multi-jump early; the completed jumps stand.
func (gs *GameState) forfeitChain() {
	gs.continuation = false
	gs.lastNote = "jump chain forfeited"
	gs.finishTurn()
}

// finishTurn logs the position, evaluates the outcome in fixed order
// (repetition, win, opponent out of moves), and hands the turn over.
func (gs *GameState) finishTurn() {
	gs.continuation = false
	gs.clearSelection()

	sig := PositionSignature(gs.board, gs.current)
	reps := gs.history.record(sig)

	gs.outcome = EvaluateOutcome(gs.board, gs.resources[Black], gs.resources[White], gs.current, reps)
	switch gs.outcome.Status {
	case StatusWin:
		gs.lastNote += fmt.Sprintf("; %s wins (%s)", gs.outcome.Winner, gs.outcome.Reason)
	case StatusDraw:
		gs.lastNote += fmt.Sprintf("; draw (%s)", gs.outcome.Reason)
	default:
		gs.current = gs.current.Opponent()
	}
}

func (gs *GameState) clearSelection() {
	gs.action = ActionNone
	gs.source = nil
	gs.legalDests = nil
	gs.phase = PhaseIdle
}

// Cancel abandons the current selection and returns to idle. Cancelling
// mid-jump-chain forfeits the remaining jumps and ends the turn.
func (gs *GameState) Cancel() {
	if gs.continuation {
		gs.forfeitChain()
		return
	}
	gs.clearSelection()
	gs.lastNote = "selection cancelled"
}

// SelectHex is the fused click entry point: it dispatches to source or
// destination selection based on the machine phase, the way a pointer-driven
// front end drives the engine.
func (gs *GameState) SelectHex(c HexCoord) error {
	if !gs.outcome.InProgress() {
		return gs.reject(ErrGameOver, "game is over")
	}
	switch gs.phase {
	case PhaseIdle:
		if p := gs.board.PieceAt(c); p != nil && p.Color == gs.current {
			if err := gs.ChooseAction(ActionMovePiece); err != nil {
				return err
			}
			return gs.ChooseSource(c)
		}
		return gs.reject(ErrNoActionChosen, "choose an action first")
	case PhaseActionChosen:
		if gs.action == ActionMovePiece {
			return gs.ChooseSource(c)
		}
		return gs.ChooseDestination(c)
	case PhaseSourceChosen:
		if gs.isLegalDest(c) {
			return gs.ChooseDestination(c)
		}
		return gs.ChooseSource(c)
	}
	return gs.reject(ErrNoActionChosen, "choose an action first")
}

func (gs *GameState) isLegalDest(c HexCoord) bool {
	for _, d := range gs.legalDests {
		if d == c {
			return true
		}
	}
	return false
}

// UpdateStatus re-evaluates the outcome for the player to move without
// requiring an action: if they have no legal move of any kind the game is
// drawn. Restore calls this so a loaded dead position is reported at once.
func (gs *GameState) UpdateStatus() {
	if !gs.outcome.InProgress() {
		return
	}
	if !HasAnyMove(gs.board, gs.resources[gs.current], gs.current) {
		gs.outcome = Outcome{Status: StatusDraw, Reason: ReasonNoMoves}
		gs.lastNote = fmt.Sprintf("%s has no legal move; draw (%s)", gs.current, ReasonNoMoves)
	}
}
