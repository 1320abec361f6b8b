package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/flopctl/pkg/deck"
	"github.com/mchmarny/flopctl/pkg/survey"
	urfave "github.com/urfave/cli/v3"
)

var (
	workersFlag = &urfave.IntFlag{
		Name:  "workers",
		Usage: "Number of concurrent workers (optional, defaults to config value or CPU count)",
	}

	surveyCmd = &urfave.Command{
		Name:  "survey",
		Usage: fmt.Sprintf("Classify all %d possible flops and summarize the texture distribution", deck.FlopCount),
		UsageText: `flopctl survey
   flopctl --format table survey --workers 4`,
		Action: cmdSurvey,
		Flags: []urfave.Flag{
			workersFlag,
		},
	}
)

func cmdSurvey(ctx context.Context, cmd *urfave.Command) error {
	cfg := getConfig(cmd)

	workers := cfg.Config.Survey.Workers
	if cmd.IsSet(workersFlag.Name) {
		workers = cmd.Int(workersFlag.Name)
	}
	if workers < 0 {
		return fmt.Errorf("invalid workers: %d", workers)
	}

	slog.Debug("survey starting", "flops", deck.FlopCount, "workers", workers)

	s, err := survey.Run(ctx, deck.Flops(),
		survey.WithWorkers(workers),
		survey.WithWeights(cfg.Config.Weights),
	)
	if err != nil {
		return fmt.Errorf("running survey: %w", err)
	}

	if err := encode(writer(cmd), cfg.Config.Format, s); err != nil {
		return fmt.Errorf("error encoding summary: %w", err)
	}
	return nil
}
