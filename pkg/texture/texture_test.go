package texture

import (
	"testing"

	"github.com/mchmarny/flopctl/pkg/board"
	"github.com/mchmarny/flopctl/pkg/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Boards(t *testing.T) {
	tests := []struct {
		name         string
		board        []string
		suits        SuitClass
		connectivity ConnectivityClass
		pairing      PairingClass
		score        float64
	}{
		{"paired two-tone ace", []string{"As", "Ts", "Td"}, TwoTone, Disconnected, Paired, 2.5},
		{"low wheel run", []string{"2c", "3d", "4h"}, Rainbow, HighlyConnected, Unpaired, 3.75},
		{"ace wraps both ends", []string{"Ac", "2d", "Ks"}, Rainbow, HighlyConnected, Unpaired, 3.0},
		{"trips", []string{"7c", "7d", "7h"}, Rainbow, Disconnected, Trips, 2.75},
		{"dry rainbow", []string{"Ks", "7h", "2c"}, Rainbow, Disconnected, Unpaired, 0},
		{"one gap", []string{"Kh", "Jh", "5c"}, TwoTone, ModeratelyConnected, Unpaired, 3.0},
		{"ace queen", []string{"Ad", "Qd", "7d"}, Monotone, ModeratelyConnected, Unpaired, 4.5},
		{"ace jack not connected", []string{"Ad", "Jc", "6h"}, Rainbow, Disconnected, Unpaired, 0},
		{"ace three not connected", []string{"Ad", "3c", "8h"}, Rainbow, Disconnected, Unpaired, 0},
		{"paired connected", []string{"9s", "9h", "8s"}, TwoTone, ModeratelyConnected, Paired, 4.75},
		{"monotone connected low", []string{"5h", "6h", "7h"}, Monotone, HighlyConnected, Unpaired, 6.75},
		{"broadway", []string{"Qc", "Jd", "Th"}, Rainbow, HighlyConnected, Unpaired, 3.0},
		{"nine is low", []string{"9c", "4d", "2h"}, Rainbow, ModeratelyConnected, Unpaired, 2.25},
		{"ten is not low", []string{"Tc", "4d", "2h"}, Rainbow, ModeratelyConnected, Unpaired, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.MustParse(tt.board...)
			assert.Equal(t, tt.suits, ClassifySuits(b))
			assert.Equal(t, tt.connectivity, ClassifyConnectivity(b))
			assert.Equal(t, tt.pairing, ClassifyPairing(b))
			assert.InDelta(t, tt.score, DynamicScore(b), 1e-9)
		})
	}
}

func TestWeights_Max(t *testing.T) {
	assert.InDelta(t, 8.75, DefaultWeights.Max(), 1e-9)
	assert.InDelta(t, 6.0, Weights{Suit: 1, Connectivity: 1, Pairing: 1, LowCard: 0}.Max(), 1e-9)
}

// Duplicate cards are a caller error; the score stays below Max because
// trips cannot be connected.
func TestDuplicateCardBoard_Score(t *testing.T) {
	b := board.MustParse("7h", "7h", "7h")
	assert.Equal(t, Monotone, ClassifySuits(b))
	assert.Equal(t, Trips, ClassifyPairing(b))
	assert.InDelta(t, 5.75, DynamicScore(b), 1e-9)
}

func TestConnectedPairs(t *testing.T) {
	tests := []struct {
		board []string
		want  int
	}{
		{[]string{"2c", "3d", "4h"}, 3},
		{[]string{"Ac", "2d", "Ks"}, 2},
		{[]string{"Ac", "Kd", "Qs"}, 3},
		{[]string{"Ts", "Td", "7c"}, 0},
		{[]string{"Ts", "Td", "8c"}, 1},
		{[]string{"7c", "7d", "7h"}, 0},
		{[]string{"Ac", "Ad", "2h"}, 1},
		{[]string{"Kc", "2d", "3h"}, 1},
	}
	for _, tt := range tests {
		b := board.MustParse(tt.board...)
		assert.Equal(t, tt.want, ConnectedPairs(b), b.String())
	}
}

func TestClassifiers_PermutationInvariant(t *testing.T) {
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	d := deck.NewDealer(11)

	for i := 0; i < 300; i++ {
		b := d.Flop()
		want := Analyze(b)
		for _, p := range perms {
			pb := board.Board{b[p[0]], b[p[1]], b[p[2]]}
			assert.Equal(t, want.Suits, ClassifySuits(pb))
			assert.Equal(t, want.Connectivity, ClassifyConnectivity(pb))
			assert.Equal(t, want.Pairing, ClassifyPairing(pb))
			assert.Equal(t, want.Dynamic, DynamicScore(pb))
		}
	}
}

func TestClassifiers_AllFlops(t *testing.T) {
	for _, b := range deck.Flops() {
		s0, s1, s2 := b[0].Suit, b[1].Suit, b[2].Suit
		switch {
		case s0 == s1 && s1 == s2:
			require.Equal(t, Monotone, ClassifySuits(b), b.String())
		case s0 != s1 && s1 != s2 && s0 != s2:
			require.Equal(t, Rainbow, ClassifySuits(b), b.String())
		default:
			require.Equal(t, TwoTone, ClassifySuits(b), b.String())
		}

		r0, r1, r2 := b[0].Rank, b[1].Rank, b[2].Rank
		switch {
		case r0 == r1 && r1 == r2:
			require.Equal(t, Trips, ClassifyPairing(b), b.String())
		case r0 != r1 && r1 != r2 && r0 != r2:
			require.Equal(t, Unpaired, ClassifyPairing(b), b.String())
		default:
			require.Equal(t, Paired, ClassifyPairing(b), b.String())
		}

		score := DynamicScore(b)
		require.GreaterOrEqual(t, score, 0.0, b.String())
		require.LessOrEqual(t, score, 8.75, b.String())

		w := Wetness(b)
		require.GreaterOrEqual(t, w, 0)
		require.LessOrEqual(t, w, 4)
	}
}

// The low-card factor compares numeric rank values. On the symbol alphabet
// it must agree with comparing the raw rank characters.
func TestLowCard_MatchesSymbolOrder(t *testing.T) {
	for _, b := range deck.Flops() {
		var maxSym byte
		for _, c := range b {
			if s := c.Rank.Symbol(); s > maxSym {
				maxSym = s
			}
		}
		require.Equal(t, maxSym <= '9', LowCard(b), b.String())
	}
}

func TestClassifyHighCard(t *testing.T) {
	assert.Equal(t, AceHigh, ClassifyHighCard(board.MustParse("Ac", "Kd", "2h")))
	assert.Equal(t, KingHigh, ClassifyHighCard(board.MustParse("Qc", "Kd", "2h")))
	assert.Equal(t, QueenOrLower, ClassifyHighCard(board.MustParse("Qc", "Jd", "2h")))
	assert.Equal(t, QueenOrLower, ClassifyHighCard(board.MustParse("4c", "3d", "2h")))
}

func TestWetness(t *testing.T) {
	tests := []struct {
		board []string
		want  int
		wet   bool
	}{
		{[]string{"Ks", "7h", "2c"}, 0, false},
		{[]string{"Ks", "7s", "2c"}, 1, false},
		{[]string{"Kh", "Jh", "5c"}, 2, true},
		{[]string{"5h", "6h", "7h"}, 4, true},
	}
	for _, tt := range tests {
		b := board.MustParse(tt.board...)
		assert.Equal(t, tt.want, Wetness(b), b.String())
		assert.Equal(t, tt.wet, IsWet(b), b.String())
	}
}

func TestScoreWith(t *testing.T) {
	b := board.MustParse("5h", "6h", "7h")
	assert.InDelta(t, 0.0, ScoreWith(b, Weights{}), 1e-9)
	assert.InDelta(t, 2.0, ScoreWith(b, Weights{Suit: 1}), 1e-9)
	assert.InDelta(t, 1.0, ScoreWith(b, Weights{LowCard: 1}), 1e-9)
	assert.Equal(t, DynamicScore(b), ScoreWith(b, DefaultWeights))
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights.Validate())
	assert.NoError(t, Weights{}.Validate())
	assert.Error(t, Weights{Pairing: -1}.Validate())
}

func TestClassifiers_DoNotMutate(t *testing.T) {
	b := board.MustParse("Ac", "2d", "Ks")
	orig := b
	_ = Analyze(b)
	assert.Equal(t, orig, b)
}
