// Package cli implements postctl, a terminal client for the generation API.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/postcraft-backend/internal/client"
)

// Error carries the process exit code.
type Error struct {
	Code    int
	Message string
}

// config holds the values shared by every command.
type config struct {
	url      string
	token    string
	timeout  time.Duration
	logLevel string

	out io.Writer
	log *slog.Logger
}

// Run executes postctl with argv, writing results to out.
func Run(ctx context.Context, argv []string, out io.Writer) *Error {
	cfg := &config{out: out, log: NewLogger("info", os.Stderr)}

	cmd := &cli.Command{
		Name:  "postctl",
		Usage: "Generate, review and rate post suggestions",
		Flags: globalFlags(cfg),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg.log = NewLogger(cfg.logLevel, os.Stderr)
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCommand(cfg),
			watchCommand(cfg),
			cancelCommand(cfg),
			statusCommand(cfg),
			suggestionsCommand(cfg),
			useCommand(cfg),
			dismissCommand(cfg),
			swipeCommand(cfg),
			historyCommand(cfg),
			streaksCommand(cfg),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		cfg.log.Error("command failed", slog.Any("error", err))
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}

func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "url",
			Usage:       "API base URL",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("POSTCRAFT_URL"),
			Destination: &cfg.url,
		},
		&cli.StringFlag{
			Name:        "token",
			Aliases:     []string{"t"},
			Usage:       "Access token",
			Sources:     cli.EnvVars("POSTCRAFT_TOKEN"),
			Destination: &cfg.token,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Per-request timeout",
			Value:       10 * time.Second,
			Sources:     cli.EnvVars("POSTCRAFT_TIMEOUT"),
			Destination: &cfg.timeout,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("POSTCRAFT_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

func (cfg *config) newAPI() (*client.API, error) {
	if cfg.token == "" {
		return nil, goerr.New("token is required (--token or POSTCRAFT_TOKEN)")
	}
	return client.NewAPI(cfg.url, cfg.token, cfg.timeout, cfg.log), nil
}

// newSession creates a Session that prints notifications to cfg.out.
func (cfg *config) newSession() (*client.Session, error) {
	api, err := cfg.newAPI()
	if err != nil {
		return nil, err
	}
	return client.NewSession(api, clockwork.NewRealClock(), &printNotifier{w: cfg.out}, cfg.log), nil
}
