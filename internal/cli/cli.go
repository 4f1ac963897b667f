// Package cli implements boardctl, the terminal dashboard for the teamboard API.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/spec-kit/teamboard/internal/config"
)

// Run parses args and executes the selected command, writing dashboard output to out.
func Run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// logs go to stderr so stdout stays a clean board
	cfg.Logger.Output = "stderr"

	app := &cli.Command{
		Name:    "boardctl",
		Usage:   "Team and project dashboard backed by the teamboard API",
		Version: cfg.App.Version,
		Flags:   globalFlags(cfg),
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			// flags may have replaced values checked by config.Load
			return ctx, cfg.Validate()
		},
		Commands: []*cli.Command{
			cmdTickets(cfg, out),
			cmdProjects(cfg, out),
			cmdMembers(cfg, out),
			cmdCertifications(cfg, out),
			cmdHolidays(cfg, out),
			cmdSummary(cfg, out),
			cmdAddProject(cfg, out),
			cmdComment(cfg, out),
			cmdMove(cfg, out),
			cmdDelete(cfg, out),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return fmt.Errorf("boardctl: %w", err)
	}
	return nil
}

func globalFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Base URL of the teamboard API",
			Category:    "Connection",
			Value:       cfg.Client.BaseURL,
			Sources:     cli.EnvVars("TEAMBOARD_API_URL"),
			Destination: &cfg.Client.BaseURL,
		},
		&cli.IntFlag{
			Name:        "timeout",
			Usage:       "Per-request timeout in seconds",
			Category:    "Connection",
			Value:       cfg.Client.RequestTimeoutSeconds,
			Sources:     cli.EnvVars("TEAMBOARD_API_TIMEOUT_SECONDS"),
			Destination: &cfg.Client.RequestTimeoutSeconds,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       cfg.Logger.Level,
			Sources:     cli.EnvVars("LOG_LEVEL"),
			Destination: &cfg.Logger.Level,
		},
		&cli.BoolFlag{
			Name:        "strict-dates",
			Usage:       "Report malformed certification dates as errors",
			Category:    "Board",
			Value:       cfg.Board.StrictDates,
			Sources:     cli.EnvVars("BOARD_STRICT_DATES"),
			Destination: &cfg.Board.StrictDates,
		},
	}
}
