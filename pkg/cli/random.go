package cli

import (
	"context"
	"fmt"

	"github.com/mchmarny/flopctl/pkg/deck"
	"github.com/mchmarny/flopctl/pkg/texture"
	urfave "github.com/urfave/cli/v3"
)

const (
	randomCountDefault = 1
	randomCountMax     = 1000
)

var (
	countFlag = &urfave.IntFlag{
		Name:  "count",
		Usage: fmt.Sprintf("Number of flops to deal (max: %d)", randomCountMax),
		Value: randomCountDefault,
	}

	seedFlag = &urfave.Int64Flag{
		Name:  "seed",
		Usage: "Random seed for reproducible flops (optional, default: time based)",
	}

	randomCmd = &urfave.Command{
		Name:    "random",
		Aliases: []string{"r"},
		Usage:   "Deal random flops and classify them",
		UsageText: `flopctl random --count 5
   flopctl random --count 5 --seed 42    # reproducible`,
		Action: cmdRandom,
		Flags: []urfave.Flag{
			countFlag,
			seedFlag,
		},
	}
)

func cmdRandom(_ context.Context, cmd *urfave.Command) error {
	n := cmd.Int(countFlag.Name)
	if n < 1 || n > randomCountMax {
		return fmt.Errorf("invalid count: %d (want 1-%d)", n, randomCountMax)
	}

	cfg := getConfig(cmd)
	d := deck.NewDealer(cmd.Int64(seedFlag.Name))

	list := make([]*texture.Report, 0, n)
	for _, b := range d.Flops(n) {
		list = append(list, texture.AnalyzeWith(b, cfg.Config.Weights))
	}

	if err := encode(writer(cmd), cfg.Config.Format, list); err != nil {
		return fmt.Errorf("error encoding list: %w", err)
	}
	return nil
}
