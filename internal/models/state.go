package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionPhase is the temporal lifecycle phase of an auction
type AuctionPhase string

const (
	PhaseNotStarted AuctionPhase = "NOT_STARTED"
	PhaseActive     AuctionPhase = "ACTIVE"
	PhaseFinished   AuctionPhase = "FINISHED"
)

// ProgressColor is the color band of the auction progress bar
type ProgressColor string

const (
	ColorGreen  ProgressColor = "green"
	ColorYellow ProgressColor = "yellow"
	ColorOrange ProgressColor = "orange"
	ColorRed    ProgressColor = "red"
)

// AuctionTimeState is the rendered countdown of one auction at a point in time
type AuctionTimeState struct {
	Phase      AuctionPhase  `json:"phase"`
	Percentage int           `json:"percentage"`
	Color      ProgressColor `json:"color"`
	Label      string        `json:"label"`
	Countdown  string        `json:"countdown,omitempty"`

	// Display components of the remaining time: Hours is modulo 24, Minutes and Seconds modulo 60.
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`

	RemainingHours int           `json:"remaining_hours"`
	Remaining      time.Duration `json:"-"`
	StartsIn       time.Duration `json:"-"`
	ComputedAt     time.Time     `json:"computed_at"`
	NextRefreshMs  int64         `json:"next_refresh_ms"`
}

// AuctionView is the snapshot held for one open auction detail view
type AuctionView struct {
	ID            string           `json:"view_id"`
	Auction       Auction          `json:"auction"`
	TimeState     AuctionTimeState `json:"time_state"`
	Bids          []Bid            `json:"bids"`
	BidsFetchedAt time.Time        `json:"bids_fetched_at"`
	OpenedAt      time.Time        `json:"opened_at"`
}

// BookingState is the state of one booking attempt
type BookingState string

const (
	BookingIdle           BookingState = "IDLE"
	BookingDateSelected   BookingState = "DATE_SELECTED"
	BookingSlotsSelected  BookingState = "SLOTS_SELECTED"
	BookingConfirmPending BookingState = "CONFIRM_PENDING"
	BookingConfirmed      BookingState = "CONFIRMED"
	BookingCancelled      BookingState = "CANCELLED"
)

// PaymentMethod is how a confirmed booking was paid
type PaymentMethod string

const (
	PaymentCredits  PaymentMethod = "credits"
	PaymentCheckout PaymentMethod = "checkout"
)

// BookingSummary is what the confirmation modal shows
type BookingSummary struct {
	Date             string          `json:"date"`
	StartTime        TimeOfDay       `json:"start_time"`
	EndTime          TimeOfDay       `json:"end_time"`
	Total            decimal.Decimal `json:"total"`
	Credits          decimal.Decimal `json:"credits"`
	CoveredByCredits bool            `json:"covered_by_credits"`
	Shortfall        decimal.Decimal `json:"shortfall"`
}

// BookingOutcome is the result of a confirmed booking
type BookingOutcome struct {
	Method           PaymentMethod    `json:"method"`
	Reservation      *NewReservation  `json:"reservation,omitempty"`
	RemainingCredits *decimal.Decimal `json:"remaining_credits,omitempty"`
	CheckoutURL      string           `json:"checkout_url,omitempty"`
}

// BookingAttempt tracks one client's walk through the booking flow for a service
type BookingAttempt struct {
	ID        string            `json:"booking_id"`
	ServiceID int               `json:"service_id"`
	State     BookingState      `json:"state"`
	Date      string            `json:"date,omitempty"`
	SubSlots  []BookableSubSlot `json:"sub_slots"`
	Selected  []string          `json:"selected"`
	Summary   *BookingSummary   `json:"summary,omitempty"`
	Outcome   *BookingOutcome   `json:"outcome,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
