package deck

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mchmarny/flopctl/pkg/board"
)

const (
	// Size is the number of cards in a standard deck.
	Size = 52
	// FlopCount is C(52,3).
	FlopCount = 22100
)

// New returns the 52 cards ordered by rank, then suit.
func New() []board.Card {
	cards := make([]board.Card, 0, Size)
	for _, r := range board.Ranks {
		for _, s := range board.Suits {
			cards = append(cards, board.Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Flops enumerates every distinct flop exactly once.
func Flops() []board.Board {
	cards := New()
	out := make([]board.Board, 0, FlopCount)
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			for k := j + 1; k < len(cards); k++ {
				out = append(out, board.Board{cards[i], cards[j], cards[k]})
			}
		}
	}
	return out
}

// Dealer deals random flops of three distinct cards. It is safe for concurrent use.
type Dealer struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewDealer creates a dealer. A zero seed seeds from the clock.
func NewDealer(seed int64) *Dealer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Dealer{r: rand.New(rand.NewSource(seed))}
}

// Flop shuffles the top three cards of a fresh deck into place and returns them.
func (d *Dealer) Flop() board.Board {
	d.mu.Lock()
	defer d.mu.Unlock()

	cards := New()
	var b board.Board
	for i := 0; i < board.Size; i++ {
		j := i + d.r.Intn(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
		b[i] = cards[i]
	}
	return b
}

// Flops deals n independent flops.
func (d *Dealer) Flops(n int) []board.Board {
	if n < 0 {
		n = 0
	}
	out := make([]board.Board, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.Flop())
	}
	return out
}
