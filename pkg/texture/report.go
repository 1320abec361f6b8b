package texture

import (
	"log/slog"

	"github.com/mchmarny/flopctl/pkg/board"
)

// Report carries every classification of a single flop.
type Report struct {
	Board        []string          `json:"board" yaml:"board"`
	Suits        SuitClass         `json:"suits" yaml:"suits"`
	Connectivity ConnectivityClass `json:"connectivity" yaml:"connectivity"`
	Pairing      PairingClass      `json:"pairing" yaml:"pairing"`
	HighCard     HighCardClass     `json:"high_card" yaml:"highCard"`
	LowCard      bool              `json:"low_card" yaml:"lowCard"`
	Wetness      int               `json:"wetness" yaml:"wetness"`
	Wet          bool              `json:"wet" yaml:"wet"`
	Dynamic      float64           `json:"dynamic" yaml:"dynamic"`
	Hand         string            `json:"hand,omitempty" yaml:"hand,omitempty"`
	Strength     int16             `json:"strength" yaml:"strength"`
}

// Analyze classifies the board with the default weights.
func Analyze(b board.Board) *Report {
	return AnalyzeWith(b, DefaultWeights)
}

// AnalyzeWith classifies the board once and derives every score from it.
func AnalyzeWith(b board.Board, w Weights) *Report {
	s := ClassifySuits(b)
	c := ClassifyConnectivity(b)
	p := ClassifyPairing(b)
	low := LowCard(b)
	wetness := s.Score() + c.Score()

	r := &Report{
		Board:        b.Tokens(),
		Suits:        s,
		Connectivity: c,
		Pairing:      p,
		HighCard:     ClassifyHighCard(b),
		LowCard:      low,
		Wetness:      wetness,
		Wet:          wetness >= wetThreshold,
		Dynamic:      compose(s, c, p, low, w),
		Strength:     b.Strength(),
	}

	if d, err := b.Describe(); err == nil {
		r.Hand = d
	} else {
		slog.Debug("board description unavailable", "board", b.String(), "error", err)
	}

	return r
}
