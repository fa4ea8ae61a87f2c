// Package auctiontime classifies an auction against the wall clock and renders its
// countdown: lifecycle phase, elapsed percentage, color band and remaining-time label.
package auctiontime

import (
	"fmt"
	"math"
	"time"

	"uchoose-client/internal/models"
)

// Labels shown next to the progress bar
const (
	LabelNotStarted = "No iniciado"
	LabelExpired    = "Vencido"
	LabelFewHours   = "Pocas horas"
	LabelCritical   = "¡Tiempo crítico!"
)

// Recompute intervals
const (
	SlowRefresh = 60 * time.Second
	FastRefresh = time.Second
)

// ComputeState classifies now against [start, end]. Zero or inverted bounds degrade to
// NOT_STARTED with percentage 0 instead of rendering garbage.
func ComputeState(now, start, end time.Time) models.AuctionTimeState {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return notStarted(now, 0)
	}

	if now.Before(start) {
		return notStarted(now, start.Sub(now))
	}

	if now.After(end) {
		return models.AuctionTimeState{
			Phase:         models.PhaseFinished,
			Percentage:    100,
			Color:         models.ColorRed,
			Label:         LabelExpired,
			ComputedAt:    now,
			NextRefreshMs: 0,
		}
	}

	total := end.Sub(start)
	elapsed := now.Sub(start)
	pct := float64(elapsed) / float64(total) * 100
	pct = math.Min(100, math.Max(0, pct))
	percentage := int(math.Floor(pct + 0.5))

	remaining := end.Sub(now)
	totalSeconds := int64(remaining / time.Second)
	totalMinutes := totalSeconds / 60
	totalHours := totalMinutes / 60
	days := totalHours / 24

	st := models.AuctionTimeState{
		Phase:          models.PhaseActive,
		Percentage:     percentage,
		Color:          ColorFor(percentage),
		Days:           int(days),
		Hours:          int(totalHours % 24),
		Minutes:        int(totalMinutes % 60),
		Seconds:        int(totalSeconds % 60),
		RemainingHours: int(totalHours),
		Remaining:      remaining,
		ComputedAt:     now,
	}

	switch {
	case totalHours >= 24:
		st.Label = daysLabel(st.Days)
	case totalHours >= 1:
		st.Label = LabelFewHours
		st.Countdown = fmt.Sprintf("%02d:%02d", st.Hours, st.Minutes)
	default:
		st.Label = LabelCritical
		st.Countdown = fmt.Sprintf("%02d:%02d", st.Minutes, st.Seconds)
	}

	st.NextRefreshMs = NextInterval(st).Milliseconds()
	return st
}

// ForAuction parses the auction's timestamps in loc and computes its state at now.
func ForAuction(now time.Time, a models.Auction, loc *time.Location) models.AuctionTimeState {
	start, end := Bounds(a, loc)
	return ComputeState(now, start, end)
}

// Bounds returns the parsed start and end of an auction; unparsable values come back zero.
func Bounds(a models.Auction, loc *time.Location) (time.Time, time.Time) {
	start, err := models.ParseTimestamp(a.StartingDate, loc)
	if err != nil {
		start = time.Time{}
	}
	end, err := models.ParseTimestamp(a.EndDate, loc)
	if err != nil {
		end = time.Time{}
	}
	return start, end
}

// ColorFor maps a percentage to its band. Each threshold belongs to the band above it.
func ColorFor(percentage int) models.ProgressColor {
	switch {
	case percentage < 50:
		return models.ColorGreen
	case percentage < 65:
		return models.ColorYellow
	case percentage < 85:
		return models.ColorOrange
	default:
		return models.ColorRed
	}
}

// NextInterval is how long to wait before recomputing st. Zero means stop.
func NextInterval(st models.AuctionTimeState) time.Duration {
	switch st.Phase {
	case models.PhaseFinished:
		return 0
	case models.PhaseNotStarted:
		if st.StartsIn > 0 && st.StartsIn < SlowRefresh {
			return st.StartsIn
		}
		return SlowRefresh
	default:
		if st.RemainingHours >= 1 {
			return SlowRefresh
		}
		return FastRefresh
	}
}

func notStarted(now time.Time, startsIn time.Duration) models.AuctionTimeState {
	st := models.AuctionTimeState{
		Phase:      models.PhaseNotStarted,
		Percentage: 0,
		Color:      models.ColorGreen,
		Label:      LabelNotStarted,
		StartsIn:   startsIn,
		ComputedAt: now,
	}
	st.NextRefreshMs = NextInterval(st).Milliseconds()
	return st
}

func daysLabel(days int) string {
	if days == 1 {
		return "1 día restante"
	}
	return fmt.Sprintf("%d días restantes", days)
}
