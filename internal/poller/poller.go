// Package poller runs a task immediately and then on a fixed interval until cancelled.
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"

	"uchoose-client/utils"
)

// Task is one polling round. A failed round is logged and retried on the next tick.
type Task func(ctx context.Context) error

// Poller is a cancellable repeating task
type Poller struct {
	name     string
	clock    clock.Clock
	interval time.Duration
	task     Task
}

// New creates a poller; a nil clock uses the wall clock.
func New(name string, clk clock.Clock, interval time.Duration, task Task) *Poller {
	if clk == nil {
		clk = clock.New()
	}
	return &Poller{name: name, clock: clk, interval: interval, task: task}
}

// Run blocks until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	ticker := p.clock.Ticker(p.interval)
	defer ticker.Stop()

	p.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *Poller) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.task(ctx); err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return
		}
		utils.Warn("poller: round failed", map[string]any{
			"poller": p.name,
			"error":  err.Error(),
		})
	}
}
