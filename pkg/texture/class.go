package texture

import (
	"fmt"
)

// SuitClass describes suit homogeneity. The ordinal is the suit score.
type SuitClass int

const (
	Rainbow SuitClass = iota
	TwoTone
	Monotone
)

var suitClassNames = [...]string{"Rainbow", "Two-tone", "Monotone"}

func (s SuitClass) String() string { return className(suitClassNames[:], int(s)) }

// Score maps Rainbow=0, Two-tone=1, Monotone=2.
func (s SuitClass) Score() int { return int(s) }

func (s SuitClass) MarshalText() ([]byte, error) { return marshalClass(suitClassNames[:], int(s)) }

func (s *SuitClass) UnmarshalText(b []byte) error {
	return unmarshalClass(suitClassNames[:], b, (*int)(s))
}

// ConnectivityClass describes rank proximity. The ordinal is the connectivity score.
type ConnectivityClass int

const (
	Disconnected ConnectivityClass = iota
	ModeratelyConnected
	HighlyConnected
)

var connectivityClassNames = [...]string{"Disconnected", "Moderately-connected", "Highly-connected"}

func (c ConnectivityClass) String() string { return className(connectivityClassNames[:], int(c)) }

func (c ConnectivityClass) Score() int { return int(c) }

func (c ConnectivityClass) MarshalText() ([]byte, error) {
	return marshalClass(connectivityClassNames[:], int(c))
}

func (c *ConnectivityClass) UnmarshalText(b []byte) error {
	return unmarshalClass(connectivityClassNames[:], b, (*int)(c))
}

// PairingClass describes rank repetition. The ordinal is the pairing factor.
type PairingClass int

const (
	Unpaired PairingClass = iota
	Paired
	Trips
)

var pairingClassNames = [...]string{"Unpaired", "Paired", "Trips"}

func (p PairingClass) String() string { return className(pairingClassNames[:], int(p)) }

func (p PairingClass) Score() int { return int(p) }

func (p PairingClass) MarshalText() ([]byte, error) { return marshalClass(pairingClassNames[:], int(p)) }

func (p *PairingClass) UnmarshalText(b []byte) error {
	return unmarshalClass(pairingClassNames[:], b, (*int)(p))
}

// HighCardClass buckets the top card of the board.
type HighCardClass int

const (
	QueenOrLower HighCardClass = iota
	KingHigh
	AceHigh
)

var highCardClassNames = [...]string{"Queen-or-lower", "King-high", "Ace-high"}

func (h HighCardClass) String() string { return className(highCardClassNames[:], int(h)) }

func (h HighCardClass) MarshalText() ([]byte, error) {
	return marshalClass(highCardClassNames[:], int(h))
}

func (h *HighCardClass) UnmarshalText(b []byte) error {
	return unmarshalClass(highCardClassNames[:], b, (*int)(h))
}

func className(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}
	return names[i]
}

func marshalClass(names []string, i int) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("unknown class: %d", i)
	}
	return []byte(names[i]), nil
}

func unmarshalClass(names []string, b []byte, dst *int) error {
	for i, n := range names {
		if n == string(b) {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown class: %q", string(b))
}
