package auctiontime

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"uchoose-client/internal/models"
)

func nextState(t *testing.T, states <-chan models.AuctionTimeState) models.AuctionTimeState {
	t.Helper()
	select {
	case st := <-states:
		return st
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ticker state")
		return models.AuctionTimeState{}
	}
}

// Tests the ticker re-arms with a one second cadence once under an hour remains
func TestTicker_SwitchesCadence(t *testing.T) {
	mock := clock.NewMock()
	start := base
	end := base.Add(3 * time.Hour)
	mock.Set(end.Add(-(time.Hour + time.Minute)))

	states := make(chan models.AuctionTimeState, 16)
	ticker := NewTicker(mock, start, end, func(st models.AuctionTimeState) { states <- st })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	st := nextState(t, states)
	require.Equal(t, LabelFewHours, st.Label)
	require.Equal(t, int64(60000), st.NextRefreshMs)

	mock.Add(SlowRefresh)
	st = nextState(t, states)
	require.Equal(t, 1, st.RemainingHours)
	require.Equal(t, int64(60000), st.NextRefreshMs)

	mock.Add(SlowRefresh)
	st = nextState(t, states)
	require.Equal(t, LabelCritical, st.Label)
	require.Equal(t, "59:00", st.Countdown)
	require.Equal(t, int64(1000), st.NextRefreshMs)

	mock.Add(FastRefresh)
	st = nextState(t, states)
	require.Equal(t, "58:59", st.Countdown)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker did not stop after cancel")
	}
}

// Tests the ticker stops by itself once the auction finishes
func TestTicker_StopsWhenFinished(t *testing.T) {
	mock := clock.NewMock()
	start := base
	end := base.Add(time.Hour)
	mock.Set(end.Add(-time.Second))

	states := make(chan models.AuctionTimeState, 16)
	ticker := NewTicker(mock, start, end, func(st models.AuctionTimeState) { states <- st })

	done := make(chan struct{})
	go func() {
		ticker.Run(context.Background())
		close(done)
	}()

	st := nextState(t, states)
	require.Equal(t, models.PhaseActive, st.Phase)

	mock.Add(FastRefresh)
	st = nextState(t, states)
	require.Equal(t, models.PhaseActive, st.Phase)
	require.Equal(t, "00:00", st.Countdown)

	mock.Add(FastRefresh)
	st = nextState(t, states)
	require.Equal(t, models.PhaseFinished, st.Phase)
	require.Equal(t, 100, st.Percentage)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker kept running after the auction finished")
	}
}

// Tests a not-started auction wakes up exactly at its start
func TestTicker_WakesAtStart(t *testing.T) {
	mock := clock.NewMock()
	start := base
	end := base.Add(2 * time.Hour)
	mock.Set(start.Add(-15 * time.Second))

	states := make(chan models.AuctionTimeState, 16)
	ticker := NewTicker(mock, start, end, func(st models.AuctionTimeState) { states <- st })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ticker.Run(ctx)

	st := nextState(t, states)
	require.Equal(t, models.PhaseNotStarted, st.Phase)
	require.Equal(t, int64(15000), st.NextRefreshMs)

	mock.Add(15 * time.Second)
	st = nextState(t, states)
	require.Equal(t, models.PhaseActive, st.Phase)
	require.Equal(t, 0, st.Percentage)
}
