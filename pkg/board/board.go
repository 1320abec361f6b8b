// Package board parses and holds validated three card flops.
package board

import (
	"fmt"
	"strings"
)

// Size is the number of cards on a flop.
const Size = 3

// Board is a flop. It is a value type, so analyzers can never mutate the caller's copy.
type Board [Size]Card

// Parse validates the tokens and returns the board.
// This is the only place where ranks and suits are checked.
func Parse(tokens ...string) (Board, error) {
	var b Board
	if len(tokens) != Size {
		return b, fmt.Errorf("%w: got %d", ErrBoardSize, len(tokens))
	}
	for i, t := range tokens {
		c, err := ParseCard(strings.TrimSpace(t))
		if err != nil {
			return Board{}, err
		}
		b[i] = c
	}
	return b, nil
}

// ParseString accepts "AsTsTd", "As Ts Td" or "As,Ts,Td".
func ParseString(s string) (Board, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '-'
	})
	if len(fields) == 1 {
		fields = splitCompact(fields[0])
	}
	return Parse(fields...)
}

// MustParse is for tests and static tables.
func MustParse(tokens ...string) Board {
	b, err := Parse(tokens...)
	if err != nil {
		panic(err)
	}
	return b
}

func splitCompact(s string) []string {
	if len(s)%cardTokenLen != 0 {
		return []string{s}
	}
	out := make([]string, 0, len(s)/cardTokenLen)
	for i := 0; i < len(s); i += cardTokenLen {
		out = append(out, s[i:i+cardTokenLen])
	}
	return out
}

// Tokens returns the two character token of each card in board order.
func (b Board) Tokens() []string {
	out := make([]string, 0, Size)
	for _, c := range b {
		out = append(out, c.String())
	}
	return out
}

func (b Board) String() string {
	return strings.Join(b.Tokens(), "")
}

// DistinctRanks returns the set of ranks on the board.
func (b Board) DistinctRanks() map[Rank]struct{} {
	m := make(map[Rank]struct{}, Size)
	for _, c := range b {
		m[c.Rank] = struct{}{}
	}
	return m
}

// DistinctSuits returns the set of suits on the board.
func (b Board) DistinctSuits() map[Suit]struct{} {
	m := make(map[Suit]struct{}, Size)
	for _, c := range b {
		m[c.Suit] = struct{}{}
	}
	return m
}

// HighRank returns the highest rank, Ace counting high.
func (b Board) HighRank() Rank {
	var high Rank
	for _, c := range b {
		if c.Rank > high {
			high = c.Rank
		}
	}
	return high
}

// Contains reports whether any card on the board has rank r.
func (b Board) Contains(r Rank) bool {
	for _, c := range b {
		if c.Rank == r {
			return true
		}
	}
	return false
}
