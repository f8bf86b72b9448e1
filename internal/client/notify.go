package client

import (
	"log/slog"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// Notifier surfaces user-facing messages.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// ProgressNotifier is implemented by notifiers that also want progress of
// the polled run.
type ProgressNotifier interface {
	Progress(run *domain.GenerationRun)
}

// LogNotifier writes notifications to a slog.Logger.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger}
}

func (n *LogNotifier) Info(msg string)    { n.log.Info(msg, slog.String("kind", "info")) }
func (n *LogNotifier) Success(msg string) { n.log.Info(msg, slog.String("kind", "success")) }
func (n *LogNotifier) Error(msg string)   { n.log.Error(msg, slog.String("kind", "error")) }

func (n *LogNotifier) Progress(run *domain.GenerationRun) {
	n.log.Debug("generation progress",
		slog.String("run_id", run.ID.String()),
		slog.Int("progress", run.Progress),
		slog.Int("generated", run.Generated),
	)
}
