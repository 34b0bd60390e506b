package meter

import (
	"log/slog"

	"github.com/ineyio/partquote"
)

// LogMeter logs lookup events using slog.
type LogMeter struct {
	Logger *slog.Logger
}

var _ partquote.Meter = (*LogMeter)(nil)

// NewLogMeter creates a LogMeter with the given logger.
// If logger is nil, slog.Default() is used.
func NewLogMeter(logger *slog.Logger) *LogMeter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMeter{Logger: logger}
}

func (m *LogMeter) OnQuote(e partquote.QuoteEvent) {
	if e.Found {
		m.Logger.Info("quote",
			"request_id", e.RequestID,
			"part", e.Part.String(),
			"supplier", e.Supplier,
			"price", e.Price,
			"asked", e.Asked,
			"stocking", e.Stocking,
			"duration_us", e.Duration.Microseconds(),
		)
	} else {
		m.Logger.Warn("quote_unavailable",
			"request_id", e.RequestID,
			"part", e.Part.String(),
			"asked", e.Asked,
			"duration_us", e.Duration.Microseconds(),
		)
	}
}
