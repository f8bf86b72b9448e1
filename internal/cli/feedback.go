package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/postcraft-backend/internal/client"
	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

func swipeCommand(cfg *config) *cli.Command {
	var snapshot string

	return &cli.Command{
		Name:      "swipe",
		Usage:     "Like or dislike a suggestion",
		ArgsUsage: "<suggestion-id> <like|dislike>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "snapshot",
				Usage:       "Suggestion content kept with the swipe (defaults to the current content)",
				Destination: &snapshot,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := suggestionArg(c)
			if err != nil {
				return err
			}
			action := domain.SwipeAction(c.Args().Get(1))
			if !action.IsValid() {
				return goerr.New("action must be like or dislike", goerr.V("action", action))
			}

			session, err := cfg.newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			var content *string
			if snapshot != "" {
				content = &snapshot
			} else if err := session.Lifecycle().Refresh(ctx); err == nil {
				for _, s := range session.Lifecycle().View().Suggestions {
					if s.ID == id {
						content = &s.Content
						break
					}
				}
			}

			if _, err := session.Recorder().RecordSwipe(ctx, id, action, content); err != nil {
				return explain(err)
			}
			fmt.Fprintf(cfg.out, "recorded %s\n", action)
			return nil
		},
	}
}

func historyCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recent swipes and like rate",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of swipes to load",
				Value: client.DefaultHistoryLimit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := cfg.newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			rec := session.Recorder()
			if err := rec.FetchHistory(ctx, int(c.Int("limit"))); err != nil {
				return explain(err)
			}
			printSwipes(cfg.out, rec.RecentSwipes())
			printStats(cfg.out, "all time", rec.AllTimeStats())
			return nil
		},
	}
}

func streaksCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:  "streaks",
		Usage: "Show the current and best posting streak",
		Action: func(ctx context.Context, c *cli.Command) error {
			api, err := cfg.newAPI()
			if err != nil {
				return err
			}
			st, err := api.Streaks(ctx)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(cfg.out, "current streak: %d days\nbest streak:    %d days\n", st.Current, st.Best)
			return nil
		},
	}
}
