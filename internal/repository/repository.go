package repository

import (
	"fmt"
	"sync"
	"time"

	model "uchoose-client/internal/models"
	"uchoose-client/internal/uchooseerrors"
)

// SessionStore holds the view-local snapshots of fetched backend data. Nothing in it is a
// source of truth: every write replaces the previous value (last write wins).
type SessionStore interface {
	CreateView(view model.AuctionView) error
	GetView(viewID string) (model.AuctionView, error)
	SetViewBids(viewID string, bids []model.Bid, fetchedAt time.Time) error
	SetViewTimeState(viewID string, state model.AuctionTimeState) error
	CloseView(viewID string) error
	ForgetView(viewID string)

	SaveAttempt(attempt model.BookingAttempt) error
	GetAttempt(attemptID string) (model.BookingAttempt, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of SessionStore
type MemoryRepo struct {
	mu          sync.RWMutex
	views       map[string]model.AuctionView    // key: viewID -> value: latest snapshot
	closedViews map[string]struct{}             // views torn down; late writes are rejected
	attempts    map[string]model.BookingAttempt // key: attemptID -> value: attempt
}

// NewMemoryRepo creates a new in-memory session store
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		views:       make(map[string]model.AuctionView),
		closedViews: make(map[string]struct{}),
		attempts:    make(map[string]model.BookingAttempt),
	}
}

// CreateView registers a freshly opened auction view
func (r *MemoryRepo) CreateView(view model.AuctionView) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if view.ID == "" {
		return fmt.Errorf("create view: empty view id: %w", uchooseerrors.ErrViewNotFound)
	}
	r.views[view.ID] = cloneView(view)
	return nil
}

// GetView returns a copy of the view snapshot
func (r *MemoryRepo) GetView(viewID string) (model.AuctionView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	view, ok := r.views[viewID]
	if !ok {
		return model.AuctionView{}, fmt.Errorf("get view %s: %w", viewID, uchooseerrors.ErrViewNotFound)
	}
	return cloneView(view), nil
}

// SetViewBids replaces the bid list of a view
func (r *MemoryRepo) SetViewBids(viewID string, bids []model.Bid, fetchedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, err := r.openViewLocked(viewID)
	if err != nil {
		return fmt.Errorf("set bids for view %s: %w", viewID, err)
	}
	view.Bids = append([]model.Bid(nil), bids...)
	view.BidsFetchedAt = fetchedAt
	r.views[viewID] = view
	return nil
}

// SetViewTimeState replaces the countdown of a view
func (r *MemoryRepo) SetViewTimeState(viewID string, state model.AuctionTimeState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, err := r.openViewLocked(viewID)
	if err != nil {
		return fmt.Errorf("set time state for view %s: %w", viewID, err)
	}
	view.TimeState = state
	r.views[viewID] = view
	return nil
}

// CloseView drops the snapshot and remembers the id so late responses are discarded
func (r *MemoryRepo) CloseView(viewID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.views[viewID]; !ok {
		return fmt.Errorf("close view %s: %w", viewID, uchooseerrors.ErrViewNotFound)
	}
	delete(r.views, viewID)
	r.closedViews[viewID] = struct{}{}
	return nil
}

// ForgetView drops the closed marker once nothing can write to the view anymore
func (r *MemoryRepo) ForgetView(viewID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.closedViews, viewID)
}

// SaveAttempt stores or replaces a booking attempt
func (r *MemoryRepo) SaveAttempt(attempt model.BookingAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if attempt.ID == "" {
		return fmt.Errorf("save attempt: empty attempt id: %w", uchooseerrors.ErrAttemptNotFound)
	}
	r.attempts[attempt.ID] = cloneAttempt(attempt)
	return nil
}

// GetAttempt returns a copy of a booking attempt
func (r *MemoryRepo) GetAttempt(attemptID string) (model.BookingAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attempt, ok := r.attempts[attemptID]
	if !ok {
		return model.BookingAttempt{}, fmt.Errorf("get attempt %s: %w", attemptID, uchooseerrors.ErrAttemptNotFound)
	}
	return cloneAttempt(attempt), nil
}

func (r *MemoryRepo) openViewLocked(viewID string) (model.AuctionView, error) {
	if _, closed := r.closedViews[viewID]; closed {
		return model.AuctionView{}, uchooseerrors.ErrViewClosed
	}
	view, ok := r.views[viewID]
	if !ok {
		return model.AuctionView{}, uchooseerrors.ErrViewNotFound
	}
	return view, nil
}

func cloneView(v model.AuctionView) model.AuctionView {
	v.Bids = append([]model.Bid(nil), v.Bids...)
	return v
}

func cloneAttempt(a model.BookingAttempt) model.BookingAttempt {
	a.SubSlots = append([]model.BookableSubSlot(nil), a.SubSlots...)
	a.Selected = append([]string(nil), a.Selected...)
	if a.Summary != nil {
		s := *a.Summary
		a.Summary = &s
	}
	if a.Outcome != nil {
		o := *a.Outcome
		a.Outcome = &o
	}
	return a
}
