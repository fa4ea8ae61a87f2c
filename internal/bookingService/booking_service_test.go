package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"uchoose-client/internal/apiclient"
	model "uchoose-client/internal/models"
	"uchoose-client/internal/payment"
	"uchoose-client/internal/repository"
	"uchoose-client/internal/uchooseerrors"
)

const testDate = "2025-06-14"

// decimalEq matches a decimal by value; Div leaves a different internal exponent.
type decimalEq struct{ want decimal.Decimal }

func (m decimalEq) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string { return "is decimal " + m.want.String() }

func credits(v int64) gomock.Matcher { return decimalEq{want: decimal.NewFromInt(v)} }

type fixture struct {
	svc      *BookingService
	backend  *apiclient.MockBackend
	checkout *payment.MockCheckout
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mock := clock.NewMock()
	mock.Set(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))

	backend := apiclient.NewMockBackend(ctrl)
	checkout := payment.NewMockCheckout(ctrl)
	svc := NewBookingService(backend, checkout, repository.NewMemoryRepo(), Options{Clock: mock, Location: time.UTC})
	return fixture{svc: svc, backend: backend, checkout: checkout}
}

// grid: 09:00-11:00 at 10 per hour with 10:00-10:30 reserved -> 0-0 09:00, 0-1 09:30, 0-2 10:30
func (f fixture) expectGrid() {
	f.backend.EXPECT().GetServiceSlots(gomock.Any(), 3, testDate).Return(model.ServiceSlots{
		Service:        3,
		ServiceDetails: model.ServiceDetails{ID: 3, Name: "Pantalla Sol"},
		Slots:          []model.SlotTemplate{{ID: 1, StartTime: "09:00:00", EndTime: "11:00:00", Price: decimal.NewFromInt(10)}},
	}, nil)
	f.backend.EXPECT().ListServiceReservations(gomock.Any(), 3, testDate).Return([]model.Reservation{
		{ID: 1, Service: 3, StartingDate: "2025-06-14T10:00:00", EndDate: "2025-06-14T10:30:00"},
	}, nil)
}

// pending walks a fresh attempt to ConfirmPending with 0-0 and 0-1 selected (total 10)
func (f fixture) pending(t *testing.T, balance int64) model.BookingAttempt {
	t.Helper()
	f.expectGrid()
	f.backend.EXPECT().GetClientDetails(gomock.Any()).Return(model.Client{ID: 9, Credits: decimal.NewFromInt(balance)}, nil)

	a, err := f.svc.StartAttempt(3)
	require.NoError(t, err)
	_, err = f.svc.SelectDate(context.Background(), a.ID, testDate)
	require.NoError(t, err)
	_, err = f.svc.ToggleSlot(a.ID, "0-1")
	require.NoError(t, err)
	_, err = f.svc.ToggleSlot(a.ID, "0-0")
	require.NoError(t, err)
	a, err = f.svc.RequestConfirm(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmPending, a.State)
	return a
}

func TestBookingService_AvailableSlots(t *testing.T) {
	f := newFixture(t)
	f.expectGrid()

	grid, err := f.svc.AvailableSlots(context.Background(), 3, testDate)
	require.NoError(t, err)
	require.Equal(t, "Pantalla Sol", grid.ServiceDetails.Name)
	require.Len(t, grid.SubSlots, 3)
	require.Equal(t, []string{"0-0", "0-1", "0-2"}, []string{grid.SubSlots[0].ID, grid.SubSlots[1].ID, grid.SubSlots[2].ID})
	require.True(t, decimal.NewFromInt(5).Equal(grid.SubSlots[0].Price))
}

func TestBookingService_AvailableSlotsErrors(t *testing.T) {
	tests := []struct {
		name          string
		serviceID     int
		date          string
		mockSetup     func(f fixture)
		expectedError error
	}{
		{name: "no_date", serviceID: 3, date: "", mockSetup: func(fixture) {}, expectedError: uchooseerrors.ErrNoDateSelected},
		{name: "bad_date", serviceID: 3, date: "14/06/2025", mockSetup: func(fixture) {}, expectedError: uchooseerrors.ErrInvalidDate},
		{name: "bad_service", serviceID: 0, date: testDate, mockSetup: func(fixture) {}, expectedError: uchooseerrors.ErrInvalidService},
		{
			name:      "reservations_fail",
			serviceID: 3,
			date:      testDate,
			mockSetup: func(f fixture) {
				f.backend.EXPECT().GetServiceSlots(gomock.Any(), 3, testDate).Return(model.ServiceSlots{}, nil).AnyTimes()
				f.backend.EXPECT().ListServiceReservations(gomock.Any(), 3, testDate).Return(nil, uchooseerrors.ErrBackendUnavailable)
			},
			expectedError: uchooseerrors.ErrBackendUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.mockSetup(f)
			_, err := f.svc.AvailableSlots(context.Background(), tc.serviceID, tc.date)
			require.ErrorIs(t, err, tc.expectedError)
		})
	}
}

// Tests the selection transitions between Idle, DateSelected and SlotsSelected
func TestBookingService_SelectionTransitions(t *testing.T) {
	f := newFixture(t)

	a, err := f.svc.StartAttempt(3)
	require.NoError(t, err)
	require.Equal(t, model.BookingIdle, a.State)

	_, err = f.svc.ToggleSlot(a.ID, "0-0")
	require.ErrorIs(t, err, uchooseerrors.ErrNoDateSelected)

	_, err = f.svc.RequestConfirm(context.Background(), a.ID)
	require.ErrorIs(t, err, uchooseerrors.ErrNoDateSelected)

	f.expectGrid()
	a, err = f.svc.SelectDate(context.Background(), a.ID, testDate)
	require.NoError(t, err)
	require.Equal(t, model.BookingDateSelected, a.State)
	require.Len(t, a.SubSlots, 3)

	_, err = f.svc.RequestConfirm(context.Background(), a.ID)
	require.ErrorIs(t, err, uchooseerrors.ErrNoSlotsSelected)

	_, err = f.svc.ToggleSlot(a.ID, "9-9")
	require.ErrorIs(t, err, uchooseerrors.ErrSlotNotFound)

	a, err = f.svc.ToggleSlot(a.ID, "0-0")
	require.NoError(t, err)
	require.Equal(t, model.BookingSlotsSelected, a.State)
	require.Equal(t, []string{"0-0"}, a.Selected)

	a, err = f.svc.ToggleSlot(a.ID, "0-0")
	require.NoError(t, err)
	require.Equal(t, model.BookingDateSelected, a.State)
	require.Empty(t, a.Selected)

	// 09:00-09:30 and 10:30-11:00 leave a gap; no backend call is made
	_, err = f.svc.ToggleSlot(a.ID, "0-0")
	require.NoError(t, err)
	_, err = f.svc.ToggleSlot(a.ID, "0-2")
	require.NoError(t, err)
	_, err = f.svc.RequestConfirm(context.Background(), a.ID)
	require.ErrorIs(t, err, uchooseerrors.ErrNonContiguousSelection)

	// a new date clears the selection
	f.expectGrid()
	a, err = f.svc.SelectDate(context.Background(), a.ID, testDate)
	require.NoError(t, err)
	require.Equal(t, model.BookingDateSelected, a.State)
	require.Empty(t, a.Selected)
}

// Tests the confirmation summary and that any toggle drops it
func TestBookingService_RequestConfirmSummary(t *testing.T) {
	f := newFixture(t)
	a := f.pending(t, 4)

	require.NotNil(t, a.Summary)
	require.Equal(t, testDate, a.Summary.Date)
	require.Equal(t, "09:00", a.Summary.StartTime.String())
	require.Equal(t, "10:00", a.Summary.EndTime.String())
	require.True(t, decimal.NewFromInt(10).Equal(a.Summary.Total))
	require.False(t, a.Summary.CoveredByCredits)
	require.True(t, decimal.NewFromInt(6).Equal(a.Summary.Shortfall))

	a, err := f.svc.ToggleSlot(a.ID, "0-1")
	require.NoError(t, err)
	require.Equal(t, model.BookingSlotsSelected, a.State)
	require.Nil(t, a.Summary)
}

// Tests confirming with enough credits debits them and creates the reservation
func TestBookingService_ConfirmWithCredits(t *testing.T) {
	f := newFixture(t)
	a := f.pending(t, 25)

	f.backend.EXPECT().GetClientDetails(gomock.Any()).Return(model.Client{ID: 9, Credits: decimal.NewFromInt(25)}, nil)
	gomock.InOrder(
		f.backend.EXPECT().UpdateClientCredits(gomock.Any(), 9, credits(15)).Return(nil),
		f.backend.EXPECT().CreateReservation(gomock.Any(), model.NewReservation{
			Service:      3,
			StartingDate: "2025-06-14T09:00:00",
			EndDate:      "2025-06-14T10:00:00",
		}).Return(model.Reservation{ID: 77}, nil),
	)

	a, err := f.svc.Confirm(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmed, a.State)
	require.Equal(t, model.PaymentCredits, a.Outcome.Method)
	require.True(t, decimal.NewFromInt(15).Equal(*a.Outcome.RemainingCredits))

	// confirmed is terminal
	_, err = f.svc.ToggleSlot(a.ID, "0-2")
	require.ErrorIs(t, err, uchooseerrors.ErrInvalidTransition)
	_, err = f.svc.Confirm(context.Background(), a.ID)
	require.ErrorIs(t, err, uchooseerrors.ErrInvalidTransition)
}

// Tests credits exactly equal to the total are enough
func TestBookingService_ConfirmExactCredits(t *testing.T) {
	f := newFixture(t)
	a := f.pending(t, 10)
	require.True(t, a.Summary.CoveredByCredits)

	f.backend.EXPECT().GetClientDetails(gomock.Any()).Return(model.Client{ID: 9, Credits: decimal.NewFromInt(10)}, nil)
	f.backend.EXPECT().UpdateClientCredits(gomock.Any(), 9, credits(0)).Return(nil)
	f.backend.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(model.Reservation{ID: 78}, nil)

	a, err := f.svc.Confirm(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentCredits, a.Outcome.Method)
}

// Tests a shortfall opens a checkout for the rounded-up number of credits
func TestBookingService_ConfirmWithCheckout(t *testing.T) {
	f := newFixture(t)
	a := f.pending(t, 4)

	f.backend.EXPECT().GetClientDetails(gomock.Any()).Return(model.Client{ID: 9, Credits: decimal.RequireFromString("3.5")}, nil)
	f.checkout.EXPECT().CreateCreditSession(gomock.Any(), payment.CreditCheckout{
		Quantity:     7,
		ServiceID:    3,
		StartingDate: "2025-06-14T09:00:00",
		EndDate:      "2025-06-14T10:00:00",
	}).Return("https://checkout.stripe.test/s/1", nil)

	a, err := f.svc.Confirm(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmed, a.State)
	require.Equal(t, model.PaymentCheckout, a.Outcome.Method)
	require.Equal(t, "https://checkout.stripe.test/s/1", a.Outcome.CheckoutURL)
}

// Tests a failed reservation restores the debited credits and leaves the attempt pending
func TestBookingService_ConfirmReservationFails(t *testing.T) {
	f := newFixture(t)
	a := f.pending(t, 25)

	f.backend.EXPECT().GetClientDetails(gomock.Any()).Return(model.Client{ID: 9, Credits: decimal.NewFromInt(25)}, nil)
	gomock.InOrder(
		f.backend.EXPECT().UpdateClientCredits(gomock.Any(), 9, credits(15)).Return(nil),
		f.backend.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(model.Reservation{}, &apiclient.StatusError{Status: 409}),
		f.backend.EXPECT().UpdateClientCredits(gomock.Any(), 9, credits(25)).Return(nil),
	)

	_, err := f.svc.Confirm(context.Background(), a.ID)
	require.ErrorIs(t, err, uchooseerrors.ErrBackendStatus)

	a, err = f.svc.GetAttempt(a.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmPending, a.State)
	require.Nil(t, a.Outcome)
}

// Tests cancel keeps the selection and allows a new request
func TestBookingService_CancelAndRetry(t *testing.T) {
	f := newFixture(t)
	a := f.pending(t, 4)

	a, err := f.svc.Cancel(a.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingCancelled, a.State)
	require.ElementsMatch(t, []string{"0-0", "0-1"}, a.Selected)

	_, err = f.svc.Cancel(a.ID)
	require.ErrorIs(t, err, uchooseerrors.ErrInvalidTransition)

	_, err = f.svc.Confirm(context.Background(), a.ID)
	require.ErrorIs(t, err, uchooseerrors.ErrInvalidTransition)

	f.backend.EXPECT().GetClientDetails(gomock.Any()).Return(model.Client{ID: 9, Credits: decimal.NewFromInt(4)}, nil)
	a, err = f.svc.RequestConfirm(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmPending, a.State)
}

// Tests a second confirm while the first is being submitted is rejected
func TestBookingService_ConfirmInFlight(t *testing.T) {
	f := newFixture(t)
	a := f.pending(t, 4)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.backend.EXPECT().GetClientDetails(gomock.Any()).Return(model.Client{ID: 9, Credits: decimal.NewFromInt(4)}, nil)
	f.checkout.EXPECT().CreateCreditSession(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, payment.CreditCheckout) (string, error) {
		close(entered)
		<-release
		return "https://checkout.stripe.test/s/2", nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.svc.Confirm(context.Background(), a.ID)
		require.NoError(t, err)
	}()

	<-entered
	_, err := f.svc.Confirm(context.Background(), a.ID)
	require.ErrorIs(t, err, uchooseerrors.ErrSubmissionInFlight)
	_, err = f.svc.ToggleSlot(a.ID, "0-2")
	require.ErrorIs(t, err, uchooseerrors.ErrSubmissionInFlight)
	_, err = f.svc.Cancel(a.ID)
	require.ErrorIs(t, err, uchooseerrors.ErrSubmissionInFlight)

	close(release)
	wg.Wait()

	a, err = f.svc.GetAttempt(a.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmed, a.State)
}

func TestBookingService_UnknownAttempt(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetAttempt("missing")
	require.ErrorIs(t, err, uchooseerrors.ErrAttemptNotFound)
	_, err = f.svc.ToggleSlot("missing", "0-0")
	require.ErrorIs(t, err, uchooseerrors.ErrAttemptNotFound)
	_, err = f.svc.Confirm(context.Background(), "missing")
	require.ErrorIs(t, err, uchooseerrors.ErrAttemptNotFound)

	_, err = f.svc.StartAttempt(0)
	require.ErrorIs(t, err, uchooseerrors.ErrInvalidService)
}
