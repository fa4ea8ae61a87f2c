package uchooseerrors

import "errors"

// Session store errors
var (
	ErrViewNotFound    = errors.New("auction view not found")
	ErrViewClosed      = errors.New("auction view closed")
	ErrAttemptNotFound = errors.New("booking attempt not found")
)

// Selection and booking errors. These are recovered locally and never reach the backend.
var (
	ErrNoDateSelected         = errors.New("select a date")
	ErrNoSlotsSelected        = errors.New("select at least one slot")
	ErrNonContiguousSelection = errors.New("non-contiguous selection")
	ErrSlotNotFound           = errors.New("slot not found")
	ErrInvalidTransition      = errors.New("invalid booking transition")
	ErrSubmissionInFlight     = errors.New("booking submission already in flight")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidSlotTemplate    = errors.New("invalid slot template")
	ErrInvalidService         = errors.New("invalid service")
)

// Auction errors
var (
	ErrInvalidAuction        = errors.New("invalid auction")
	ErrInvalidBid            = errors.New("invalid bid")
	ErrAuctionNotActive      = errors.New("auction is not active")
	ErrAuctionNotCancellable = errors.New("auction cannot be cancelled")
)

// Backend collaborator errors
var (
	ErrBackendUnavailable  = errors.New("backend unavailable")
	ErrBackendStatus       = errors.New("backend returned an error status")
	ErrInvalidPayload      = errors.New("invalid backend payload")
	ErrCheckoutUnavailable = errors.New("checkout unavailable")
	ErrInvalidCheckout     = errors.New("invalid checkout quantity")
)
