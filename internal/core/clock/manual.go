package clock

import (
	"sync"
	"time"
)

// Manual is a Clock whose time only moves when Advance is called.
// Tickers created from it fire synchronously inside Advance, which keeps
// tests deterministic.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManual creates a Manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the frozen current time.
func (clk *Manual) Now() time.Time {
	clk.mu.Lock()
	defer clk.mu.Unlock()
	return clk.now
}

// NewTicker returns a ticker driven by Advance.
func (clk *Manual) NewTicker(interval time.Duration) Ticker {
	ticker := &manualTicker{
		ch:       make(chan time.Time, 64),
		interval: interval,
	}
	clk.mu.Lock()
	ticker.last = clk.now
	clk.tickers = append(clk.tickers, ticker)
	clk.mu.Unlock()
	return ticker
}

// Advance moves time forward and fires every due ticker interval.
func (clk *Manual) Advance(delta time.Duration) {
	clk.mu.Lock()
	clk.now = clk.now.Add(delta)
	now := clk.now
	tickers := append([]*manualTicker(nil), clk.tickers...)
	clk.mu.Unlock()

	for _, ticker := range tickers {
		ticker.fireUpTo(now)
	}
}

type manualTicker struct {
	mu       sync.Mutex
	ch       chan time.Time
	interval time.Duration
	last     time.Time
	stopped  bool
}

func (ticker *manualTicker) C() <-chan time.Time { return ticker.ch }

func (ticker *manualTicker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.stopped = true
}

func (ticker *manualTicker) fireUpTo(now time.Time) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.stopped || ticker.interval <= 0 {
		return
	}
	for !ticker.last.Add(ticker.interval).After(now) {
		ticker.last = ticker.last.Add(ticker.interval)
		select {
		case ticker.ch <- ticker.last:
		default:
		}
	}
}
