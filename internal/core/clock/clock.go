package clock

import "time"

// Clock abstracts wall-clock access so the tick loop can be driven
// manually in tests.
type Clock interface {
	Now() time.Time
	NewTicker(interval time.Duration) Ticker
}

// Ticker delivers periodic time signals.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// System is the real Clock backed by the time package.
type System struct{}

// Now returns the current wall-clock time.
func (System) Now() time.Time { return time.Now() }

// NewTicker returns a ticker firing every interval.
func (System) NewTicker(interval time.Duration) Ticker {
	return &systemTicker{time.NewTicker(interval)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t *systemTicker) C() <-chan time.Time { return t.ticker.C }
func (t *systemTicker) Stop()               { t.ticker.Stop() }
