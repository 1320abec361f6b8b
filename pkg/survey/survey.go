package survey

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/mchmarny/flopctl/pkg/board"
	"github.com/mchmarny/flopctl/pkg/texture"
	"golang.org/x/sync/errgroup"
)

const (
	chunkSize = 1024
	binFormat = "%.2f"
)

// Summary is the distribution of textures over a set of flops.
type Summary struct {
	Total        int                               `json:"total" yaml:"total"`
	Suits        map[texture.SuitClass]int         `json:"suits" yaml:"suits"`
	Connectivity map[texture.ConnectivityClass]int `json:"connectivity" yaml:"connectivity"`
	Pairing      map[texture.PairingClass]int      `json:"pairing" yaml:"pairing"`
	HighCard     map[texture.HighCardClass]int     `json:"high_card" yaml:"highCard"`
	Wet          int                               `json:"wet" yaml:"wet"`
	LowCard      int                               `json:"low_card" yaml:"lowCard"`
	MinScore     float64                           `json:"min_score" yaml:"minScore"`
	MaxScore     float64                           `json:"max_score" yaml:"maxScore"`
	MeanScore    float64                           `json:"mean_score" yaml:"meanScore"`
	Histogram    map[string]int                    `json:"histogram" yaml:"histogram"`

	sum float64
}

func newSummary() *Summary {
	return &Summary{
		Suits:        make(map[texture.SuitClass]int),
		Connectivity: make(map[texture.ConnectivityClass]int),
		Pairing:      make(map[texture.PairingClass]int),
		HighCard:     make(map[texture.HighCardClass]int),
		Histogram:    make(map[string]int),
	}
}

func (s *Summary) add(r *texture.Report) {
	if s.Total == 0 || r.Dynamic < s.MinScore {
		s.MinScore = r.Dynamic
	}
	if s.Total == 0 || r.Dynamic > s.MaxScore {
		s.MaxScore = r.Dynamic
	}
	s.Total++
	s.sum += r.Dynamic
	s.Suits[r.Suits]++
	s.Connectivity[r.Connectivity]++
	s.Pairing[r.Pairing]++
	s.HighCard[r.HighCard]++
	if r.Wet {
		s.Wet++
	}
	if r.LowCard {
		s.LowCard++
	}
	s.Histogram[fmt.Sprintf(binFormat, r.Dynamic)]++
}

func (s *Summary) merge(o *Summary) {
	if o.Total == 0 {
		return
	}
	if s.Total == 0 || o.MinScore < s.MinScore {
		s.MinScore = o.MinScore
	}
	if s.Total == 0 || o.MaxScore > s.MaxScore {
		s.MaxScore = o.MaxScore
	}
	s.Total += o.Total
	s.sum += o.sum
	s.Wet += o.Wet
	s.LowCard += o.LowCard
	for k, v := range o.Suits {
		s.Suits[k] += v
	}
	for k, v := range o.Connectivity {
		s.Connectivity[k] += v
	}
	for k, v := range o.Pairing {
		s.Pairing[k] += v
	}
	for k, v := range o.HighCard {
		s.HighCard[k] += v
	}
	for k, v := range o.Histogram {
		s.Histogram[k] += v
	}
}

// Bins returns the histogram keys in ascending numeric score order.
func (s *Summary) Bins() []string {
	keys := make([]string, 0, len(s.Histogram))
	scores := make(map[string]float64, len(s.Histogram))
	for k := range s.Histogram {
		keys = append(keys, k)
		v, err := strconv.ParseFloat(k, 64)
		if err != nil {
			v = math.Inf(1)
		}
		scores[k] = v
	}
	sort.Slice(keys, func(i, j int) bool {
		if scores[keys[i]] != scores[keys[j]] {
			return scores[keys[i]] < scores[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

type options struct {
	workers int
	weights texture.Weights
}

// Option configures Run.
type Option func(*options)

// WithWorkers bounds the number of concurrent workers. Values < 1 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithWeights sets the dynamic score weights.
func WithWeights(w texture.Weights) Option {
	return func(o *options) {
		o.weights = w
	}
}

// Run analyzes the boards concurrently and aggregates the results.
// The summary does not depend on the number of workers.
func Run(ctx context.Context, boards []board.Board, opts ...Option) (*Summary, error) {
	o := &options{
		workers: runtime.GOMAXPROCS(0),
		weights: texture.DefaultWeights,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if err := o.weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}

	start := time.Now()
	total := newSummary()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for lo := 0; lo < len(boards); lo += chunkSize {
		if err := gctx.Err(); err != nil {
			break
		}
		hi := min(lo+chunkSize, len(boards))
		chunk := boards[lo:hi]

		g.Go(func() error {
			part := newSummary()
			for _, b := range chunk {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				part.add(texture.AnalyzeWith(b, o.weights))
			}
			mu.Lock()
			total.merge(part)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("survey interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("survey interrupted: %w", err)
	}

	if total.Total > 0 {
		total.MeanScore = total.sum / float64(total.Total)
	}

	slog.Debug("survey complete",
		"boards", total.Total,
		"workers", o.workers,
		"duration", time.Since(start),
	)

	return total, nil
}
