package board

import (
	"fmt"
)

const (
	cardTokenLen = 2

	rankSymbols = "23456789TJQKA"
	suitSymbols = "cdhs"
)

// Rank is the numeric card rank, 2 through 14 (Ace high).
type Rank byte

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// ParseRank maps one of the 13 rank symbols to its Rank. Symbols are case-sensitive.
func ParseRank(r byte) (Rank, error) {
	for i := 0; i < len(rankSymbols); i++ {
		if rankSymbols[i] == r {
			return Rank(i + 2), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, r)
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Symbol returns the single character used in card tokens.
func (r Rank) Symbol() byte {
	if !r.Valid() {
		return '?'
	}
	return rankSymbols[r-Two]
}

func (r Rank) String() string {
	return string(r.Symbol())
}

// Suit is stored as its token character.
type Suit byte

const (
	Club    Suit = 'c'
	Diamond Suit = 'd'
	Heart   Suit = 'h'
	Spade   Suit = 's'
)

// Suits lists every suit in token order.
var Suits = []Suit{Club, Diamond, Heart, Spade}

func ParseSuit(s byte) (Suit, error) {
	switch Suit(s) {
	case Club, Diamond, Heart, Spade:
		return Suit(s), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

func (s Suit) Valid() bool {
	switch s {
	case Club, Diamond, Heart, Spade:
		return true
	}
	return false
}

func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(s)
}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard builds a card from already typed values.
func NewCard(r Rank, s Suit) (Card, error) {
	if !r.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, r)
	}
	if !s.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, s)
	}
	return Card{Rank: r, Suit: s}, nil
}

// ParseCard parses a two character token such as "Ts".
// The rank is validated before the suit.
func ParseCard(token string) (Card, error) {
	if len(token) != cardTokenLen {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}

	r, err := ParseRank(token[0])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}

	s, err := ParseSuit(token[1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}

	return NewCard(r, s)
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(b []byte) error {
	v, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
