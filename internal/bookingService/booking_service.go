package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"uchoose-client/internal/apiclient"
	"uchoose-client/internal/models"
	"uchoose-client/internal/payment"
	"uchoose-client/internal/repository"
	"uchoose-client/internal/slots"
	"uchoose-client/internal/uchooseerrors"
	"uchoose-client/utils"
)

// SlotGrid is the bookable sub-slot grid of one service on one date
type SlotGrid struct {
	Service        int                      `json:"service"`
	ServiceDetails models.ServiceDetails    `json:"service_details"`
	Date           string                   `json:"date"`
	SubSlots       []models.BookableSubSlot `json:"sub_slots"`
}

// Options tunes a BookingService; zero values pick the defaults.
type Options struct {
	Clock    clock.Clock
	Location *time.Location
}

// BookingService drives booking attempts from date selection to a paid reservation
type BookingService struct {
	backend  apiclient.Backend
	checkout payment.Checkout
	store    repository.SessionStore
	clock    clock.Clock
	loc      *time.Location

	mu       sync.Mutex          // serializes read-modify-write of attempts
	inFlight map[string]struct{} // attempts with a confirmation being submitted
}

// NewBookingService creates a new BookingService instance
func NewBookingService(backend apiclient.Backend, checkout payment.Checkout, store repository.SessionStore, opts Options) *BookingService {
	if checkout == nil {
		checkout = payment.Disabled{}
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &BookingService{
		backend:  backend,
		checkout: checkout,
		store:    store,
		clock:    opts.Clock,
		loc:      opts.Location,
		inFlight: make(map[string]struct{}),
	}
}

// AvailableSlots loads a service's templates and reservations for date and derives the grid
func (s *BookingService) AvailableSlots(ctx context.Context, serviceID int, date string) (SlotGrid, error) {
	if serviceID <= 0 {
		return SlotGrid{}, fmt.Errorf("service: %w - id %d", uchooseerrors.ErrInvalidService, serviceID)
	}
	day, err := s.parseDate(date)
	if err != nil {
		return SlotGrid{}, err
	}
	date = day.Format(models.DateLayout)

	var (
		entry        models.ServiceSlots
		reservations []models.Reservation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entry, err = s.backend.GetServiceSlots(gctx, serviceID, date)
		if err != nil {
			return fmt.Errorf("service: failed to load slots of service %d: %w", serviceID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reservations, err = s.backend.ListServiceReservations(gctx, serviceID, date)
		if err != nil {
			return fmt.Errorf("service: failed to load reservations of service %d: %w", serviceID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return SlotGrid{}, err
	}

	subSlots, err := slots.GenerateSubSlots(day, entry.Slots, reservations)
	if err != nil {
		return SlotGrid{}, fmt.Errorf("service: failed to build slots of service %d on %s: %w", serviceID, date, err)
	}

	return SlotGrid{
		Service:        serviceID,
		ServiceDetails: entry.ServiceDetails,
		Date:           date,
		SubSlots:       subSlots,
	}, nil
}

// StartAttempt opens an idle booking attempt for a service
func (s *BookingService) StartAttempt(serviceID int) (models.BookingAttempt, error) {
	if serviceID <= 0 {
		return models.BookingAttempt{}, fmt.Errorf("service: %w - id %d", uchooseerrors.ErrInvalidService, serviceID)
	}

	now := s.clock.Now()
	attempt := models.BookingAttempt{
		ID:        utils.GenerateID(),
		ServiceID: serviceID,
		State:     models.BookingIdle,
		SubSlots:  []models.BookableSubSlot{},
		Selected:  []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.SaveAttempt(attempt); err != nil {
		return models.BookingAttempt{}, fmt.Errorf("service: failed to save attempt: %w", err)
	}
	return attempt, nil
}

// GetAttempt returns the current state of an attempt
func (s *BookingService) GetAttempt(attemptID string) (models.BookingAttempt, error) {
	attempt, err := s.store.GetAttempt(attemptID)
	if err != nil {
		return models.BookingAttempt{}, fmt.Errorf("service: failed to get attempt %s: %w", attemptID, err)
	}
	return attempt, nil
}

// SelectDate loads the grid for date and clears the selection. An empty grid is valid.
func (s *BookingService) SelectDate(ctx context.Context, attemptID, date string) (models.BookingAttempt, error) {
	attempt, err := s.GetAttempt(attemptID)
	if err != nil {
		return models.BookingAttempt{}, err
	}
	if err := s.checkMutable(attempt); err != nil {
		return models.BookingAttempt{}, err
	}

	grid, err := s.AvailableSlots(ctx, attempt.ServiceID, date)
	if err != nil {
		return models.BookingAttempt{}, err
	}

	return s.update(attemptID, func(a *models.BookingAttempt) error {
		if err := s.checkMutable(*a); err != nil {
			return err
		}
		a.Date = grid.Date
		a.SubSlots = grid.SubSlots
		a.Selected = []string{}
		a.Summary = nil
		a.State = models.BookingDateSelected
		return nil
	})
}

// ToggleSlot adds or removes one sub-slot from the selection. Any change drops a pending
// confirmation back to slot selection.
func (s *BookingService) ToggleSlot(attemptID, slotID string) (models.BookingAttempt, error) {
	return s.update(attemptID, func(a *models.BookingAttempt) error {
		if err := s.checkMutable(*a); err != nil {
			return err
		}
		if a.State == models.BookingIdle || a.Date == "" {
			return fmt.Errorf("service: %w", uchooseerrors.ErrNoDateSelected)
		}
		if !hasSubSlot(a.SubSlots, slotID) {
			return fmt.Errorf("service: %w - %q", uchooseerrors.ErrSlotNotFound, slotID)
		}

		a.Selected = toggle(a.Selected, slotID)
		a.Summary = nil
		if len(a.Selected) == 0 {
			a.State = models.BookingDateSelected
		} else {
			a.State = models.BookingSlotsSelected
		}
		return nil
	})
}

// RequestConfirm validates the selection and prices it against the client's credits
func (s *BookingService) RequestConfirm(ctx context.Context, attemptID string) (models.BookingAttempt, error) {
	attempt, err := s.GetAttempt(attemptID)
	if err != nil {
		return models.BookingAttempt{}, err
	}
	if err := s.checkMutable(attempt); err != nil {
		return models.BookingAttempt{}, err
	}
	sel, err := validateSelection(attempt)
	if err != nil {
		return models.BookingAttempt{}, err
	}

	client, err := s.backend.GetClientDetails(ctx)
	if err != nil {
		return models.BookingAttempt{}, fmt.Errorf("service: failed to load client credits: %w", err)
	}

	return s.update(attemptID, func(a *models.BookingAttempt) error {
		if err := s.checkMutable(*a); err != nil {
			return err
		}
		if !sameSelection(a.Selected, attempt.Selected) || a.Date != attempt.Date {
			return fmt.Errorf("service: %w - selection changed while pricing", uchooseerrors.ErrInvalidTransition)
		}
		a.Summary = summarize(a.Date, sel, a.Selected, a.SubSlots, client)
		a.State = models.BookingConfirmPending
		return nil
	})
}

// Confirm submits a pending booking. Credits are debited and the reservation created when
// they cover the total; otherwise a checkout for the shortfall is opened.
func (s *BookingService) Confirm(ctx context.Context, attemptID string) (models.BookingAttempt, error) {
	s.mu.Lock()
	attempt, err := s.store.GetAttempt(attemptID)
	if err != nil {
		s.mu.Unlock()
		return models.BookingAttempt{}, fmt.Errorf("service: failed to get attempt %s: %w", attemptID, err)
	}
	if _, busy := s.inFlight[attemptID]; busy {
		s.mu.Unlock()
		return models.BookingAttempt{}, fmt.Errorf("service: %w", uchooseerrors.ErrSubmissionInFlight)
	}
	if attempt.State != models.BookingConfirmPending {
		s.mu.Unlock()
		return models.BookingAttempt{}, fmt.Errorf("service: %w - confirm from %s", uchooseerrors.ErrInvalidTransition, attempt.State)
	}
	s.inFlight[attemptID] = struct{}{}
	s.mu.Unlock()

	outcome, err := s.submit(ctx, attempt)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, attemptID)
	if err != nil {
		return models.BookingAttempt{}, err
	}

	attempt, err = s.store.GetAttempt(attemptID)
	if err != nil {
		return models.BookingAttempt{}, fmt.Errorf("service: failed to get attempt %s: %w", attemptID, err)
	}
	attempt.Outcome = &outcome
	attempt.State = models.BookingConfirmed
	attempt.UpdatedAt = s.clock.Now()
	if err := s.store.SaveAttempt(attempt); err != nil {
		return models.BookingAttempt{}, fmt.Errorf("service: failed to save attempt %s: %w", attemptID, err)
	}

	utils.Info("service: booking confirmed", map[string]any{
		"booking_id": attemptID,
		"service_id": attempt.ServiceID,
		"method":     outcome.Method,
	})
	return attempt, nil
}

// Cancel dismisses a pending confirmation and keeps the selection
func (s *BookingService) Cancel(attemptID string) (models.BookingAttempt, error) {
	return s.update(attemptID, func(a *models.BookingAttempt) error {
		if err := s.checkMutable(*a); err != nil {
			return err
		}
		if a.State != models.BookingConfirmPending {
			return fmt.Errorf("service: %w - cancel from %s", uchooseerrors.ErrInvalidTransition, a.State)
		}
		a.State = models.BookingCancelled
		return nil
	})
}

func (s *BookingService) submit(ctx context.Context, attempt models.BookingAttempt) (models.BookingOutcome, error) {
	sel, err := validateSelection(attempt)
	if err != nil {
		return models.BookingOutcome{}, err
	}

	client, err := s.backend.GetClientDetails(ctx)
	if err != nil {
		return models.BookingOutcome{}, fmt.Errorf("service: failed to load client credits: %w", err)
	}

	total := slots.ComputeTotalPrice(attempt.Selected, attempt.SubSlots)
	coverage := slots.CoverageFor(client.Credits, total)
	startingDate := models.NaiveTimestamp(attempt.Date, sel.Start)
	endDate := models.NaiveTimestamp(attempt.Date, sel.End)

	if !coverage.CoveredByCredits {
		url, err := s.checkout.CreateCreditSession(ctx, payment.CreditCheckout{
			Quantity:     payment.CreditQuantity(coverage.Shortfall),
			ServiceID:    attempt.ServiceID,
			StartingDate: startingDate,
			EndDate:      endDate,
		})
		if err != nil {
			return models.BookingOutcome{}, fmt.Errorf("service: failed to open checkout: %w", err)
		}
		return models.BookingOutcome{Method: models.PaymentCheckout, CheckoutURL: url}, nil
	}

	if err := s.backend.UpdateClientCredits(ctx, client.ID, coverage.NewBalance); err != nil {
		return models.BookingOutcome{}, fmt.Errorf("service: failed to debit credits of client %d: %w", client.ID, err)
	}

	reservation := models.NewReservation{Service: attempt.ServiceID, StartingDate: startingDate, EndDate: endDate}
	if _, err := s.backend.CreateReservation(ctx, reservation); err != nil {
		// Put the balance back; the reservation never existed.
		if restoreErr := s.backend.UpdateClientCredits(context.WithoutCancel(ctx), client.ID, client.Credits); restoreErr != nil {
			utils.Error("service: failed to restore credits", map[string]any{
				"client_id": client.ID,
				"credits":   client.Credits.String(),
				"error":     restoreErr.Error(),
			})
		}
		return models.BookingOutcome{}, fmt.Errorf("service: failed to create reservation for service %d: %w", attempt.ServiceID, err)
	}

	balance := coverage.NewBalance
	return models.BookingOutcome{Method: models.PaymentCredits, Reservation: &reservation, RemainingCredits: &balance}, nil
}

// update applies fn to the stored attempt under the service lock and saves the result
func (s *BookingService) update(attemptID string, fn func(*models.BookingAttempt) error) (models.BookingAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, err := s.store.GetAttempt(attemptID)
	if err != nil {
		return models.BookingAttempt{}, fmt.Errorf("service: failed to get attempt %s: %w", attemptID, err)
	}
	if _, busy := s.inFlight[attemptID]; busy {
		return models.BookingAttempt{}, fmt.Errorf("service: %w", uchooseerrors.ErrSubmissionInFlight)
	}
	if err := fn(&attempt); err != nil {
		return models.BookingAttempt{}, err
	}
	attempt.UpdatedAt = s.clock.Now()
	if err := s.store.SaveAttempt(attempt); err != nil {
		return models.BookingAttempt{}, fmt.Errorf("service: failed to save attempt %s: %w", attemptID, err)
	}
	return attempt, nil
}

// checkMutable rejects changes to a confirmed attempt
func (s *BookingService) checkMutable(a models.BookingAttempt) error {
	if a.State == models.BookingConfirmed {
		return fmt.Errorf("service: %w - attempt %s is confirmed", uchooseerrors.ErrInvalidTransition, a.ID)
	}
	return nil
}

func (s *BookingService) parseDate(date string) (time.Time, error) {
	if strings.TrimSpace(date) == "" {
		return time.Time{}, fmt.Errorf("service: %w", uchooseerrors.ErrNoDateSelected)
	}
	day, err := models.ParseDate(date, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("service: %w - %q", uchooseerrors.ErrInvalidDate, date)
	}
	return day, nil
}

func validateSelection(a models.BookingAttempt) (slots.Selection, error) {
	if a.Date == "" {
		return slots.Selection{}, fmt.Errorf("service: %w", uchooseerrors.ErrNoDateSelected)
	}
	sel, err := slots.ValidateContiguousSelection(a.Selected, a.SubSlots)
	if err != nil {
		return slots.Selection{}, fmt.Errorf("service: %w", err)
	}
	return sel, nil
}

func summarize(date string, sel slots.Selection, selected []string, all []models.BookableSubSlot, client models.Client) *models.BookingSummary {
	total := slots.ComputeTotalPrice(selected, all)
	coverage := slots.CoverageFor(client.Credits, total)
	return &models.BookingSummary{
		Date:             date,
		StartTime:        sel.Start,
		EndTime:          sel.End,
		Total:            total,
		Credits:          client.Credits,
		CoveredByCredits: coverage.CoveredByCredits,
		Shortfall:        coverage.Shortfall,
	}
}

func hasSubSlot(all []models.BookableSubSlot, id string) bool {
	for _, s := range all {
		if s.ID == id {
			return true
		}
	}
	return false
}

func toggle(selected []string, id string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, s := range selected {
		if s == id {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

func sameSelection(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
