package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/postcraft-backend/internal/client"
	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

func generateCommand(cfg *config) *cli.Command {
	var watch bool

	return &cli.Command{
		Name:  "generate",
		Usage: "Request a new batch of suggestions",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "watch",
				Aliases:     []string{"w"},
				Usage:       "Wait until the run finishes",
				Destination: &watch,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := cfg.newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			// Attach to an in-flight run first so a second request is never sent.
			if _, err := session.Bootstrap(ctx); err != nil {
				return goerr.Wrap(err, "failed to load session")
			}

			runID, err := session.Generate(ctx)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(cfg.out, "run %s in progress\n", runID)

			if !watch {
				return nil
			}
			return waitForRun(ctx, cfg, session)
		},
	}
}

func watchCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Follow the generation in flight, if any",
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := cfg.newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			run, err := session.Bootstrap(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load session")
			}
			if run == nil {
				fmt.Fprintln(cfg.out, "no generation in flight")
				return nil
			}
			fmt.Fprintf(cfg.out, "watching run %s\n", run.ID)
			return waitForRun(ctx, cfg, session)
		},
	}
}

func cancelCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:  "cancel",
		Usage: "Cancel the generation in flight",
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := cfg.newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Cancel(ctx); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					fmt.Fprintln(cfg.out, "nothing to cancel")
					return nil
				}
				return goerr.Wrap(err, "failed to cancel generation")
			}
			fmt.Fprintln(cfg.out, "generation cancelled")
			return nil
		},
	}
}

func statusCommand(cfg *config) *cli.Command {
	var runFlag string

	return &cli.Command{
		Name:  "status",
		Usage: "Show a generation run (latest by default)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "run",
				Aliases:     []string{"r"},
				Usage:       "Run id",
				Destination: &runFlag,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			api, err := cfg.newAPI()
			if err != nil {
				return err
			}

			var runID *uuid.UUID
			if runFlag != "" {
				id, err := uuid.Parse(runFlag)
				if err != nil {
					return goerr.Wrap(err, "invalid run id", goerr.V("run", runFlag))
				}
				runID = &id
			}

			run, err := api.GetStatus(ctx, runID)
			if err != nil {
				return explain(err)
			}
			if run == nil {
				fmt.Fprintln(cfg.out, "no generation runs yet")
				return nil
			}
			printRun(cfg.out, run)
			return nil
		},
	}
}

// waitForRun blocks until the polled run reaches a terminal status. The
// session notifier prints the outcome.
func waitForRun(ctx context.Context, cfg *config, session *client.Session) error {
	st, err := session.Poller().Wait(ctx)
	if err != nil {
		return goerr.Wrap(err, "stopped watching", goerr.V("state", st))
	}
	if st == client.PollFailed {
		return goerr.New("generation failed")
	}
	if st == client.PollCompleted {
		printActive(cfg.out, session.Lifecycle().View())
	}
	return nil
}

// explain turns capacity, precondition and conflict errors into guidance.
func explain(err error) error {
	var capErr *domain.CapacityError
	var pre *domain.PreconditionError
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &capErr):
		return goerr.Wrap(err, "You have reached the limit of active suggestions. Review your active suggestions first.",
			goerr.V("current", capErr.Current), goerr.V("max", capErr.Max))
	case errors.As(err, &pre):
		return goerr.Wrap(err, pre.Reason)
	case errors.As(err, &conflict):
		return goerr.Wrap(err, "a generation is already running", goerr.V("run", conflict.RunID))
	case errors.Is(err, domain.ErrUnauthorized):
		return goerr.Wrap(err, "not signed in: check --token")
	case errors.Is(err, domain.ErrTransientIO):
		return goerr.Wrap(err, "server unavailable, try again shortly")
	}
	return err
}
