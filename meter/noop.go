package meter

import "github.com/ineyio/partquote"

// NoopMeter is a meter that does nothing.
type NoopMeter struct{}

var _ partquote.Meter = (*NoopMeter)(nil)

func (m *NoopMeter) OnQuote(partquote.QuoteEvent) {}
