package board

import (
	"fmt"

	poker "github.com/paulhankin/poker"
)

// Convert board.Card -> library card. Library ranks are 1..13 with Ace=1.
func toPH(c Card) (poker.Card, error) {
	var pc poker.Card
	var s poker.Suit
	switch c.Suit {
	case Club:
		s = poker.Club
	case Diamond:
		s = poker.Diamond
	case Heart:
		s = poker.Heart
	case Spade:
		s = poker.Spade
	default:
		return pc, fmt.Errorf("%w: %d", ErrInvalidSuit, c.Suit)
	}

	r := poker.Rank(c.Rank)
	if c.Rank == Ace {
		r = poker.Rank(1)
	}

	pc, err := poker.MakeCard(s, r)
	if err != nil {
		return pc, fmt.Errorf("converting card %s: %w", c, err)
	}
	return pc, nil
}

func (b Board) toPH() ([Size]poker.Card, error) {
	var out [Size]poker.Card
	for i, c := range b {
		pc, err := toPH(c)
		if err != nil {
			return out, err
		}
		out[i] = pc
	}
	return out, nil
}

// Describe names the made hand the three board cards form on their own,
// e.g. a pair or three of a kind.
func (b Board) Describe() (string, error) {
	pcs, err := b.toPH()
	if err != nil {
		return "", err
	}
	d, err := poker.Describe(pcs[:])
	if err != nil {
		return "", fmt.Errorf("describing board %s: %w", b, err)
	}
	return d, nil
}

// Strength returns the library's 3-card score. Larger is stronger.
func (b Board) Strength() int16 {
	pcs, err := b.toPH()
	if err != nil {
		return 0
	}
	return poker.Eval3(&pcs)
}
