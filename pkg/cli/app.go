package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mchmarny/flopctl/pkg/config"
	"github.com/mchmarny/flopctl/pkg/logging"
	urfave "github.com/urfave/cli/v3"
)

const (
	appName      = "flopctl"
	appConfigKey = "app-config"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	debugFlag = &urfave.BoolFlag{
		Name:    "debug",
		Usage:   "Prints verbose logs (optional, default: false)",
		Sources: urfave.EnvVars("FLOPCTL_DEBUG"),
	}

	configDirFlag = &urfave.StringFlag{
		Name:  "config",
		Usage: fmt.Sprintf("Path to the config directory (optional, defaults to $HOME/.%s)", appName),
	}

	noColorFlag = &urfave.BoolFlag{
		Name:    "no-color",
		Usage:   "Disables coloured log output (optional, default: false)",
		Sources: urfave.EnvVars("FLOPCTL_NO_COLOR"),
	}

	formatFlag = &urfave.StringFlag{
		Name:    "format",
		Aliases: []string{"o"},
		Usage:   "Output format [json, yaml, table] (optional, defaults to config value)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info", false)

	if err := config.LoadDotEnv(); err != nil {
		slog.Warn("ignoring env file", "error", err)
	}

	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Dir     string
	Debug   bool
	NoColor bool
	Config  *config.Config
}

func getConfig(cmd *urfave.Command) *appConfig {
	if cfg, ok := cmd.Root().Metadata[appConfigKey].(*appConfig); ok {
		return cfg
	}
	return &appConfig{Config: config.Default()}
}

func newApp() *urfave.Command {
	return &urfave.Command{
		Name:                  appName,
		Version:               fmt.Sprintf("%s (%s - %s)", version, commit, date),
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Usage:                 "Classify poker flop textures and score how dynamic they are",
		Metadata:              map[string]any{},
		Flags: []urfave.Flag{
			debugFlag,
			noColorFlag,
			configDirFlag,
			formatFlag,
		},
		Commands: []*urfave.Command{
			classifyCmd,
			scoreCmd,
			randomCmd,
			surveyCmd,
			serverCmd,
		},
		Before: before,
	}
}

func before(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
	dir := cmd.String(configDirFlag.Name)
	if dir == "" {
		d, _, err := config.GetOrCreateHomeDir(appName)
		if err != nil {
			return ctx, fmt.Errorf("resolving config dir: %w", err)
		}
		dir = d
	}

	cfg, err := config.ReadOrCreate(dir)
	if err != nil {
		return ctx, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return ctx, fmt.Errorf("applying env: %w", err)
	}

	if f := cmd.String(formatFlag.Name); f != "" {
		cfg.Format = config.NormalizeFormat(f)
	}

	debug := cmd.Bool(debugFlag.Name)
	if debug {
		cfg.LogLevel = "debug"
	}
	noColor := cmd.Bool(noColorFlag.Name)
	logging.SetDefaultCLILogger(cfg.LogLevel, noColor)

	if err := cfg.Validate(); err != nil {
		return ctx, fmt.Errorf("invalid config: %w", err)
	}

	slog.Debug("config loaded",
		"dir", dir,
		"format", cfg.Format,
		"workers", cfg.Survey.Workers,
		"started", time.Now().Format(time.RFC3339),
	)

	cmd.Root().Metadata[appConfigKey] = &appConfig{
		Dir:     dir,
		Debug:   debug,
		NoColor: noColor,
		Config:  cfg,
	}
	return ctx, nil
}
