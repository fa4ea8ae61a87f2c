// Package slots turns a service's slot templates and same-day reservations into a grid of
// bookable 30-minute sub-slots, and validates a selection before it is booked.
package slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"uchoose-client/internal/models"
	"uchoose-client/internal/uchooseerrors"
)

// Step is the fixed length of a bookable sub-slot
const Step = 30 * time.Minute

// stepMinutes walks the wall clock, so a daylight-saving day still gets an even grid.
const stepMinutes = models.TimeOfDay(Step / time.Minute)

var two = decimal.NewFromInt(2)

type interval struct {
	start models.TimeOfDay
	end   models.TimeOfDay
}

// GenerateSubSlots walks every template of date in 30-minute steps and emits the steps
// that fit entirely inside the template and do not overlap a reservation. Templates are
// not sorted against each other.
func GenerateSubSlots(date time.Time, templates []models.SlotTemplate, reservations []models.Reservation) ([]models.BookableSubSlot, error) {
	if date.IsZero() {
		return nil, uchooseerrors.ErrNoDateSelected
	}

	busy, err := reservationIntervals(reservations)
	if err != nil {
		return nil, err
	}

	subSlots := []models.BookableSubSlot{}
	for i, tpl := range templates {
		startTOD, err := models.ParseTimeOfDay(tpl.StartTime)
		if err != nil {
			return nil, fmt.Errorf("template %d start: %w", i, uchooseerrors.ErrInvalidSlotTemplate)
		}
		endTOD, err := models.ParseTimeOfDay(tpl.EndTime)
		if err != nil {
			return nil, fmt.Errorf("template %d end: %w", i, uchooseerrors.ErrInvalidSlotTemplate)
		}

		price := tpl.Price.Div(two)

		seq := 0
		for slotStart := startTOD; slotStart+stepMinutes <= endTOD; slotStart += stepMinutes {
			slotEnd := slotStart + stepMinutes
			if overlapsAny(slotStart, slotEnd, busy) {
				continue
			}
			subSlots = append(subSlots, models.BookableSubSlot{
				ID:          fmt.Sprintf("%d-%d", i, seq),
				StartTime:   slotStart,
				EndTime:     slotEnd,
				Price:       price,
				TemplateRef: tpl,
			})
			seq++
		}
	}
	return subSlots, nil
}

// Selection is a validated, contiguous run of sub-slots
type Selection struct {
	SubSlots []models.BookableSubSlot
	Start    models.TimeOfDay
	End      models.TimeOfDay
}

// ValidateContiguousSelection keeps the selected sub-slots, sorts them by start time and
// requires every sub-slot to end exactly where the next one begins.
func ValidateContiguousSelection(selectedIDs []string, all []models.BookableSubSlot) (Selection, error) {
	selected := filterSelected(selectedIDs, all)
	if len(selected) == 0 {
		return Selection{}, uchooseerrors.ErrNoSlotsSelected
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].StartTime < selected[j].StartTime
	})

	for i := 1; i < len(selected); i++ {
		prev, cur := selected[i-1], selected[i]
		if prev.EndTime != cur.StartTime {
			return Selection{}, fmt.Errorf("%s ends at %s but %s starts at %s: %w",
				prev.ID, prev.EndTime, cur.ID, cur.StartTime, uchooseerrors.ErrNonContiguousSelection)
		}
	}

	return Selection{
		SubSlots: selected,
		Start:    selected[0].StartTime,
		End:      selected[len(selected)-1].EndTime,
	}, nil
}

// ComputeTotalPrice sums the price of the selected sub-slots.
func ComputeTotalPrice(selectedIDs []string, all []models.BookableSubSlot) decimal.Decimal {
	total := decimal.Zero
	for _, s := range filterSelected(selectedIDs, all) {
		total = total.Add(s.Price)
	}
	return total
}

// Coverage says how a total is paid given a stored credit balance
type Coverage struct {
	CoveredByCredits bool
	NewBalance       decimal.Decimal // only meaningful when CoveredByCredits
	Shortfall        decimal.Decimal // amount routed to checkout otherwise
}

// CoverageFor debits credits when they cover the whole total, and otherwise routes the
// difference to checkout.
func CoverageFor(credits, total decimal.Decimal) Coverage {
	if credits.GreaterThanOrEqual(total) {
		return Coverage{CoveredByCredits: true, NewBalance: credits.Sub(total), Shortfall: decimal.Zero}
	}
	return Coverage{CoveredByCredits: false, NewBalance: credits, Shortfall: total.Sub(credits)}
}

func filterSelected(selectedIDs []string, all []models.BookableSubSlot) []models.BookableSubSlot {
	ids := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		ids[id] = struct{}{}
	}
	selected := make([]models.BookableSubSlot, 0, len(selectedIDs))
	for _, s := range all {
		if _, ok := ids[s.ID]; ok {
			selected = append(selected, s)
		}
	}
	return selected
}

// reservationIntervals reduces reservations to their time-of-day range as written in the
// timestamp; the date part is already filtered by the backend. Parsing in UTC keeps wall
// times that do not exist in the local zone from being shifted.
func reservationIntervals(reservations []models.Reservation) ([]interval, error) {
	busy := make([]interval, 0, len(reservations))
	for _, r := range reservations {
		start, err := models.ParseTimestamp(r.StartingDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("reservation %d start: %w", r.ID, uchooseerrors.ErrInvalidPayload)
		}
		end, err := models.ParseTimestamp(r.EndDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("reservation %d end: %w", r.ID, uchooseerrors.ErrInvalidPayload)
		}
		busy = append(busy, interval{start: models.TimeOfDayOf(start), end: models.TimeOfDayOf(end)})
	}
	return busy, nil
}

// overlapsAny uses half-open intervals: touching endpoints do not overlap.
func overlapsAny(start, end models.TimeOfDay, busy []interval) bool {
	for _, b := range busy {
		if start < b.end && end > b.start {
			return true
		}
	}
	return false
}
