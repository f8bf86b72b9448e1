package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func suggestionsCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:    "suggestions",
		Aliases: []string{"ls"},
		Usage:   "List active suggestions",
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := cfg.newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Lifecycle().Refresh(ctx); err != nil {
				return explain(err)
			}
			printActive(cfg.out, session.Lifecycle().View())
			return nil
		},
	}
}

func useCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:      "use",
		Usage:     "Mark a suggestion as used",
		ArgsUsage: "<suggestion-id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := suggestionArg(c)
			if err != nil {
				return err
			}
			session, err := cfg.newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Lifecycle().Refresh(ctx); err != nil {
				return explain(err)
			}
			if err := session.Lifecycle().MarkAsUsed(ctx, id); err != nil {
				return explain(err)
			}
			v := session.Lifecycle().View()
			fmt.Fprintf(cfg.out, "marked as used, %d/%d active\n", v.ActiveCount, v.MaxActive)
			return nil
		},
	}
}

func dismissCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:      "dismiss",
		Usage:     "Dismiss a suggestion",
		ArgsUsage: "<suggestion-id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := suggestionArg(c)
			if err != nil {
				return err
			}
			session, err := cfg.newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Lifecycle().Refresh(ctx); err != nil {
				return explain(err)
			}
			return explain(session.Lifecycle().Dismiss(ctx, id))
		},
	}
}

func suggestionArg(c *cli.Command) (uuid.UUID, error) {
	if c.Args().Len() == 0 {
		return uuid.Nil, goerr.New("suggestion id is required")
	}
	raw := c.Args().Get(0)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, goerr.Wrap(err, "invalid suggestion id", goerr.V("id", raw))
	}
	return id, nil
}
