package auctiontime

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"uchoose-client/internal/models"
)

// Ticker keeps one auction's countdown fresh. It holds a single timer at a time and
// re-arms it with the interval of the state it just computed, so the cadence moves from
// one minute to one second as the auction enters its last hour.
type Ticker struct {
	clock  clock.Clock
	start  time.Time
	end    time.Time
	onTick func(models.AuctionTimeState)
}

// NewTicker creates a ticker for [start, end]; onTick receives every computed state.
func NewTicker(clk clock.Clock, start, end time.Time, onTick func(models.AuctionTimeState)) *Ticker {
	if clk == nil {
		clk = clock.New()
	}
	return &Ticker{clock: clk, start: start, end: end, onTick: onTick}
}

// Run computes immediately and then on every timer fire until ctx is done or the auction
// has finished. It blocks; run it in its own goroutine.
func (t *Ticker) Run(ctx context.Context) {
	for {
		st := ComputeState(t.clock.Now(), t.start, t.end)

		// Arm before publishing so a reader reacting to the state never races the timer.
		var timer *clock.Timer
		if d := NextInterval(st); d > 0 {
			timer = t.clock.Timer(d)
		}

		if t.onTick != nil {
			t.onTick(st)
		}
		if timer == nil {
			return
		}

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
