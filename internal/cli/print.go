package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/postcraft-backend/internal/client"
	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ client.ProgressNotifier = (*printNotifier)(nil)

// printNotifier writes session notifications as plain lines.
type printNotifier struct {
	mu           sync.Mutex
	w            io.Writer
	lastProgress int
}

func (n *printNotifier) Info(msg string)    { n.line("%s", msg) }
func (n *printNotifier) Success(msg string) { n.line("✔ %s", msg) }
func (n *printNotifier) Error(msg string)   { n.line("✘ %s", msg) }

func (n *printNotifier) Progress(run *domain.GenerationRun) {
	n.mu.Lock()
	changed := run.Progress != n.lastProgress
	n.lastProgress = run.Progress
	n.mu.Unlock()
	if changed {
		n.line("… %s %d%% (%d/%d)", run.Status, run.Progress, run.Generated, run.Requested)
	}
}

func (n *printNotifier) line(format string, args ...any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, format+"\n", args...)
}

func printRun(w io.Writer, run *domain.GenerationRun) {
	fmt.Fprintf(w, "run:        %s\n", run.ID)
	fmt.Fprintf(w, "status:     %s\n", run.Status)
	fmt.Fprintf(w, "progress:   %d%% (%d/%d)\n", run.Progress, run.Generated, run.Requested)
	if len(run.PostTypes) > 0 {
		fmt.Fprintf(w, "post types: %s\n", strings.Join(run.PostTypes, ", "))
	}
	fmt.Fprintf(w, "created:    %s\n", run.CreatedAt.Local().Format(time.DateTime))
	if run.CompletedAt != nil {
		fmt.Fprintf(w, "completed:  %s\n", run.CompletedAt.Local().Format(time.DateTime))
	}
	if run.ErrorMessage != nil {
		fmt.Fprintf(w, "error:      %s\n", *run.ErrorMessage)
	}
}

func printActive(w io.Writer, v client.ActiveView) {
	fmt.Fprintf(w, "%d/%d active", v.ActiveCount, v.MaxActive)
	if !v.CanGenerate {
		fmt.Fprint(w, " (review your active suggestions before generating more)")
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range v.Suggestions {
		postType := "-"
		if s.PostType != nil {
			postType = *s.PostType
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, postType, preview(s.Content, 60))
	}
	tw.Flush()
}

func printSwipes(w io.Writer, swipes []domain.SwipeRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range swipes {
		content := ""
		if s.ContentSnapshot != nil {
			content = preview(*s.ContentSnapshot, 50)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.CreatedAt.Local().Format(time.DateTime), s.Action, content)
	}
	tw.Flush()
}

func printStats(w io.Writer, label string, st domain.SwipeStats) {
	fmt.Fprintf(w, "%s: %d likes, %d dislikes, %d total, %d%% liked\n", label, st.Likes, st.Dislikes, st.Total, st.LikeRate)
}

func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
