// Package texture classifies flops by suit, rank connectivity and pairing
// and combines those classes into wetness and dynamic scores.
package texture

import (
	"github.com/mchmarny/flopctl/pkg/board"
)

const (
	// connectedGap is the largest rank difference that still counts as connected.
	connectedGap = 2
	// lowCardMax is the highest rank for which the low-card factor applies.
	lowCardMax = board.Nine
	// wetThreshold is the wetness at or above which a board is considered wet.
	wetThreshold = 2
)

// ClassifySuits returns Monotone, Two-tone or Rainbow for 1, 2 or 3 distinct suits.
func ClassifySuits(b board.Board) SuitClass {
	switch len(b.DistinctSuits()) {
	case 1:
		return Monotone
	case 2:
		return TwoTone
	default:
		return Rainbow
	}
}

// ClassifyPairing returns Unpaired, Paired or Trips for 3, 2 or 1 distinct ranks.
func ClassifyPairing(b board.Board) PairingClass {
	switch len(b.DistinctRanks()) {
	case 1:
		return Trips
	case 2:
		return Paired
	default:
		return Unpaired
	}
}

// ClassifyConnectivity buckets the number of connected distinct-rank pairs:
// none is Disconnected, one is Moderately-connected, two or more is Highly-connected.
func ClassifyConnectivity(b board.Board) ConnectivityClass {
	switch n := ConnectedPairs(b); {
	case n >= 2:
		return HighlyConnected
	case n == 1:
		return ModeratelyConnected
	default:
		return Disconnected
	}
}

// ConnectedPairs counts the unordered pairs of distinct ranks that are
// close enough to share straight draws. Duplicate ranks collapse first,
// so a paired board yields at most one comparison and trips yield none.
func ConnectedPairs(b board.Board) int {
	ranks := make([]board.Rank, 0, board.Size)
	for r := range b.DistinctRanks() {
		ranks = append(ranks, r)
	}

	n := 0
	for i := 0; i < len(ranks); i++ {
		for j := i + 1; j < len(ranks); j++ {
			if connected(ranks[i], ranks[j]) {
				n++
			}
		}
	}
	return n
}

// Ace plays both low (wheel, with 2) and high (with K and Q).
func connected(a, b board.Rank) bool {
	if b == board.Ace {
		a, b = b, a
	}
	if a == board.Ace {
		return b == board.Two || b == board.King || b == board.Queen
	}
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= connectedGap
}

// ClassifyHighCard returns Ace-high, King-high or Queen-or-lower.
func ClassifyHighCard(b board.Board) HighCardClass {
	switch {
	case b.Contains(board.Ace):
		return AceHigh
	case b.Contains(board.King):
		return KingHigh
	default:
		return QueenOrLower
	}
}

// LowCard reports whether every card on the board is a Nine or lower.
func LowCard(b board.Board) bool {
	return b.HighRank() <= lowCardMax
}

// Wetness is the suit score plus the connectivity score, 0 through 4.
func Wetness(b board.Board) int {
	return ClassifySuits(b).Score() + ClassifyConnectivity(b).Score()
}

func IsWet(b board.Board) bool {
	return Wetness(b) >= wetThreshold
}
