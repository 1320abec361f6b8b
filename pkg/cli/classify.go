package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mchmarny/flopctl/pkg/board"
	"github.com/mchmarny/flopctl/pkg/texture"
	urfave "github.com/urfave/cli/v3"
)

var (
	errBoardRequired = errors.New("board required, e.g. As Ts Td or AsTsTd")

	classifyCmd = &urfave.Command{
		Name:    "classify",
		Aliases: []string{"c"},
		Usage:   "Classify flop texture (suits, connectivity, pairing) and score it",
		UsageText: `flopctl classify As Ts Td             # separate cards
   flopctl classify AsTsTd               # compact board
   flopctl --format table classify 2c3d4h`,
		ArgsUsage: "<board>",
		Action:    cmdClassify,
	}

	scoreCmd = &urfave.Command{
		Name:      "score",
		Aliases:   []string{"s"},
		Usage:     "Print only the dynamic score of a flop",
		UsageText: `flopctl score Ac 2d Ks`,
		ArgsUsage: "<board>",
		Action:    cmdScore,
	}
)

func parseArgs(cmd *urfave.Command) (board.Board, error) {
	if cmd.NArg() == 0 {
		return board.Board{}, errBoardRequired
	}
	b, err := board.ParseString(strings.Join(cmd.Args().Slice(), " "))
	if err != nil {
		return board.Board{}, fmt.Errorf("parsing board: %w", err)
	}
	slog.Debug("board parsed", "board", b.String())
	return b, nil
}

func cmdClassify(_ context.Context, cmd *urfave.Command) error {
	b, err := parseArgs(cmd)
	if err != nil {
		return err
	}

	cfg := getConfig(cmd)
	r := texture.AnalyzeWith(b, cfg.Config.Weights)

	if err := encode(writer(cmd), cfg.Config.Format, r); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	return nil
}

func cmdScore(_ context.Context, cmd *urfave.Command) error {
	b, err := parseArgs(cmd)
	if err != nil {
		return err
	}

	cfg := getConfig(cmd)
	score := texture.ScoreWith(b, cfg.Config.Weights)

	if err := encode(writer(cmd), cfg.Config.Format, score); err != nil {
		return fmt.Errorf("error encoding score: %w", err)
	}
	return nil
}

func writer(cmd *urfave.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
