package board

import "errors"

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
	ErrInvalidCard = errors.New("invalid card")
	ErrBoardSize   = errors.New("flop must have exactly 3 cards")
)
