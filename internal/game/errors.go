package game

import "errors"

var (
	ErrGameOver          = errors.New("game is over")
	ErrNoTile            = errors.New("no tile at coordinate")
	ErrTileOccupied      = errors.New("tile already placed")
	ErrCellOccupied      = errors.New("cell already holds a piece")
	ErrSupplyExhausted   = errors.New("supply exhausted")
	ErrNoCapturedDiscs   = errors.New("no captured discs to return")
	ErrNotYourPiece      = errors.New("not current player's piece")
	ErrNoActionChosen    = errors.New("no action chosen")
	ErrNoSourceChosen    = errors.New("no source selected")
	ErrIllegalTarget     = errors.New("illegal destination")
	ErrInvalidSnapshot   = errors.New("invalid snapshot")
	ErrNoLegalPlacements = errors.New("no legal placements for action")
)
