package feedback

import (
	"io"
	"log/slog"
)

// CallEvent records one remote feedback call, retries included.
type CallEvent struct {
	Mode             Mode
	LanguageFunction LanguageFunction
	LatencyMs        int64
	Attempts         int
	Success          bool
	ErrorCode        string
}

// Observer receives remote call events.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events as structured log lines.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"mode", event.Mode,
		"language_function", event.LanguageFunction,
		"latency_ms", event.LatencyMs,
		"attempts", event.Attempts,
	}
	if !event.Success {
		o.logger.Warn("feedback_call", append(attrs, "error_code", event.ErrorCode)...)
		return
	}
	o.logger.Info("feedback_call", attrs...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
