package texture

import (
	"errors"

	"github.com/mchmarny/flopctl/pkg/board"
)

// Weights are the coefficients of the dynamic score.
type Weights struct {
	Suit         float64 `json:"suit" yaml:"suit"`
	Connectivity float64 `json:"connectivity" yaml:"connectivity"`
	Pairing      float64 `json:"pairing" yaml:"pairing"`
	LowCard      float64 `json:"low_card" yaml:"low_card"`
}

// DefaultWeights produce scores in [0, 8.75].
var DefaultWeights = Weights{
	Suit:         1.5,
	Connectivity: 1.5,
	Pairing:      1,
	LowCard:      0.75,
}

var errNegativeWeight = errors.New("weights must not be negative")

func (w Weights) Validate() error {
	if w.Suit < 0 || w.Connectivity < 0 || w.Pairing < 0 || w.LowCard < 0 {
		return errNegativeWeight
	}
	return nil
}

// Max is the largest score these weights can produce.
func (w Weights) Max() float64 {
	return w.Suit*float64(Monotone.Score()) +
		w.Connectivity*float64(HighlyConnected.Score()) +
		w.Pairing*float64(Trips.Score()) +
		w.LowCard
}

// DynamicScore measures how likely the board is to change relative hand
// strength on later streets.
func DynamicScore(b board.Board) float64 {
	return ScoreWith(b, DefaultWeights)
}

// ScoreWith computes the dynamic score using the given weights.
func ScoreWith(b board.Board, w Weights) float64 {
	return compose(ClassifySuits(b), ClassifyConnectivity(b), ClassifyPairing(b), LowCard(b), w)
}

func compose(s SuitClass, c ConnectivityClass, p PairingClass, low bool, w Weights) float64 {
	var lowFactor float64
	if low {
		lowFactor = 1
	}
	return w.Suit*float64(s.Score()) +
		w.Connectivity*float64(c.Score()) +
		w.Pairing*float64(p.Score()) +
		w.LowCard*lowFactor
}
