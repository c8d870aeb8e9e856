package oracle

import (
	"io"
	"log/slog"
)

// CallEvent records metadata about a single oracle invocation.
type CallEvent struct {
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about oracle calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs call events to w.
func NewLogObserver(w io.Writer) Observer {
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		o.logger.Info("oracle_call",
			"model", event.Model,
			"latency_ms", event.LatencyMs,
			"success", true,
		)
		return
	}
	o.logger.Error("oracle_call",
		"model", event.Model,
		"latency_ms", event.LatencyMs,
		"success", false,
		"error_code", event.ErrorCode,
	)
}
