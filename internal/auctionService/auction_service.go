package auction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/shopspring/decimal"

	"uchoose-client/internal/apiclient"
	"uchoose-client/internal/auctiontime"
	"uchoose-client/internal/models"
	"uchoose-client/internal/poller"
	"uchoose-client/internal/repository"
	"uchoose-client/internal/uchooseerrors"
	"uchoose-client/utils"
)

// DefaultPollInterval is how often an open view refreshes its bids
const DefaultPollInterval = 5 * time.Second

// DefaultViewTTL is how long an open view survives without being read
const DefaultViewTTL = 2 * time.Minute

// AuctionState is an auction together with its countdown at one instant
type AuctionState struct {
	Auction     models.Auction          `json:"auction"`
	TimeState   models.AuctionTimeState `json:"time_state"`
	Status      string                  `json:"status"`
	Cancellable bool                    `json:"cancellable"`
}

// AuctionGroups is a service's auction list split by phase, each in backend order
type AuctionGroups struct {
	Upcoming []AuctionState `json:"upcoming"`
	Active   []AuctionState `json:"active"`
	Finished []AuctionState `json:"finished"`
}

// AuctionDraft is what a worker fills in to start an auction. StartingDate is local-naive;
// the end is StartingDate plus DurationMinutes.
type AuctionDraft struct {
	Service         int
	StartingDate    string
	DurationMinutes int
	StartingBid     decimal.Decimal
	TimeFrame       int
}

// auctionDateLayout is the minute-precision form the create form submits
const auctionDateLayout = "2006-01-02T15:04"

// Options tunes an AuctionService; zero values pick the defaults.
type Options struct {
	Clock        clock.Clock
	Location     *time.Location
	PollInterval time.Duration
	ViewTTL      time.Duration
}

// viewSession owns the background work of one open view
type viewSession struct {
	cancel   context.CancelFunc
	done     chan struct{}
	lastSeen time.Time // guarded by AuctionService.mu
}

// AuctionService serves auction countdowns and keeps open detail views refreshed
type AuctionService struct {
	backend      apiclient.Backend
	store        repository.SessionStore
	clock        clock.Clock
	loc          *time.Location
	pollInterval time.Duration
	viewTTL      time.Duration

	mu       sync.Mutex
	sessions map[string]*viewSession
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(backend apiclient.Backend, store repository.SessionStore, opts Options) *AuctionService {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.ViewTTL <= 0 {
		opts.ViewTTL = DefaultViewTTL
	}
	return &AuctionService{
		backend:      backend,
		store:        store,
		clock:        opts.Clock,
		loc:          opts.Location,
		pollInterval: opts.PollInterval,
		viewTTL:      opts.ViewTTL,
		sessions:     make(map[string]*viewSession),
	}
}

// GetState fetches an auction and computes its countdown now. serviceInfo is true when the
// auction is shown inside a service's info panel, where it can never be cancelled.
func (s *AuctionService) GetState(ctx context.Context, auctionID int, serviceInfo bool) (AuctionState, error) {
	if auctionID <= 0 {
		return AuctionState{}, fmt.Errorf("service: %w - invalid auction id %d", uchooseerrors.ErrInvalidAuction, auctionID)
	}

	a, err := s.backend.GetAuction(ctx, auctionID)
	if err != nil {
		return AuctionState{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	st := auctiontime.ForAuction(s.clock.Now(), a, s.loc)
	return AuctionState{
		Auction:     a,
		TimeState:   st,
		Status:      auctiontime.Status(st.Phase),
		Cancellable: auctiontime.CanCancel(st.Phase, serviceInfo),
	}, nil
}

// ListServiceAuctions fetches a service's auctions and groups them by phase. activeOnly
// keeps just the running ones, as clients see them; serviceInfo is passed to CanCancel.
func (s *AuctionService) ListServiceAuctions(ctx context.Context, serviceID int, serviceInfo, activeOnly bool) (AuctionGroups, error) {
	if serviceID <= 0 {
		return AuctionGroups{}, fmt.Errorf("service: %w - invalid service id %d", uchooseerrors.ErrInvalidService, serviceID)
	}

	auctions, err := s.backend.ListServiceAuctions(ctx, serviceID)
	if err != nil {
		return AuctionGroups{}, fmt.Errorf("service: failed to list auctions of service %d: %w", serviceID, err)
	}

	now := s.clock.Now()
	groups := AuctionGroups{Upcoming: []AuctionState{}, Active: []AuctionState{}, Finished: []AuctionState{}}
	for _, a := range auctions {
		st := auctiontime.ForAuction(now, a, s.loc)
		state := AuctionState{
			Auction:     a,
			TimeState:   st,
			Status:      auctiontime.Status(st.Phase),
			Cancellable: auctiontime.CanCancel(st.Phase, serviceInfo),
		}
		switch st.Phase {
		case models.PhaseActive:
			groups.Active = append(groups.Active, state)
		case models.PhaseFinished:
			if !activeOnly {
				groups.Finished = append(groups.Finished, state)
			}
		default:
			if !activeOnly {
				groups.Upcoming = append(groups.Upcoming, state)
			}
		}
	}
	return groups, nil
}

// CreateAuction validates a draft and creates the auction. Nothing reaches the backend
// unless the window is non-empty and the winner gets some control time.
func (s *AuctionService) CreateAuction(ctx context.Context, draft AuctionDraft) (models.Auction, error) {
	if draft.Service <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - invalid service id %d", uchooseerrors.ErrInvalidService, draft.Service)
	}
	start, err := models.ParseTimestamp(draft.StartingDate, s.loc)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w - invalid starting date %q", uchooseerrors.ErrInvalidAuction, draft.StartingDate)
	}
	end := start.Add(time.Duration(draft.DurationMinutes) * time.Minute)
	if !start.Before(end) {
		return models.Auction{}, fmt.Errorf("service: %w - end must come after start", uchooseerrors.ErrInvalidAuction)
	}
	if draft.TimeFrame <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - time frame must be at least one minute", uchooseerrors.ErrInvalidAuction)
	}
	if draft.StartingBid.IsNegative() {
		return models.Auction{}, fmt.Errorf("service: %w - negative starting bid", uchooseerrors.ErrInvalidAuction)
	}

	created, err := s.backend.CreateAuction(ctx, models.NewAuction{
		StartingDate: start.Format(auctionDateLayout),
		EndDate:      end.In(s.loc).Format(auctionDateLayout),
		Duration:     draft.DurationMinutes,
		StartingBid:  draft.StartingBid,
		TimeFrame:    draft.TimeFrame,
		Service:      draft.Service,
	})
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for service %d: %w", draft.Service, err)
	}

	utils.Info("service: auction created", map[string]any{"auction_id": created.ID, "service_id": draft.Service})
	return created, nil
}

// OpenView starts a detail view of an auction. Its bids are re-fetched every poll interval
// and its countdown re-computed on the ticker's cadence until CloseView.
func (s *AuctionService) OpenView(ctx context.Context, auctionID int) (models.AuctionView, error) {
	if auctionID <= 0 {
		return models.AuctionView{}, fmt.Errorf("service: %w - invalid auction id %d", uchooseerrors.ErrInvalidAuction, auctionID)
	}

	a, err := s.backend.GetAuction(ctx, auctionID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	now := s.clock.Now()
	start, end := auctiontime.Bounds(a, s.loc)
	view := models.AuctionView{
		ID:        utils.GenerateID(),
		Auction:   a,
		TimeState: auctiontime.ComputeState(now, start, end),
		Bids:      []models.Bid{},
		OpenedAt:  now,
	}

	// Background work keeps the request's values (bearer token) but not its deadline.
	bgCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sess := &viewSession{cancel: cancel, done: make(chan struct{}), lastSeen: now}

	s.mu.Lock()
	if err := s.store.CreateView(view); err != nil {
		s.mu.Unlock()
		cancel()
		return models.AuctionView{}, fmt.Errorf("service: failed to open view for auction %d: %w", auctionID, err)
	}
	s.sessions[view.ID] = sess
	s.mu.Unlock()

	bids := poller.New("bids:"+view.ID, s.clock, s.pollInterval, s.refreshBids(view.ID, auctionID))
	countdown := auctiontime.NewTicker(s.clock, start, end, s.publishTimeState(view.ID))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		bids.Run(bgCtx)
	}()
	go func() {
		defer wg.Done()
		countdown.Run(bgCtx)
	}()
	go func() {
		wg.Wait()
		close(sess.done)
	}()

	utils.Info("service: auction view opened", map[string]any{"view_id": view.ID, "auction_id": auctionID})
	return view, nil
}

// GetView returns the latest snapshot of an open view and keeps it alive for another TTL
func (s *AuctionService) GetView(viewID string) (models.AuctionView, error) {
	view, err := s.store.GetView(viewID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to get view %s: %w", viewID, err)
	}

	s.mu.Lock()
	if sess, ok := s.sessions[viewID]; ok {
		sess.lastSeen = s.clock.Now()
	}
	s.mu.Unlock()
	return view, nil
}

// CloseView stops the view's poller and ticker and waits for them to exit
func (s *AuctionService) CloseView(viewID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[viewID]
	delete(s.sessions, viewID)
	s.mu.Unlock()

	return s.teardown(viewID, sess, ok)
}

// ReapIdleViews closes every view that has not been read for longer than the view TTL
// and returns how many it closed.
func (s *AuctionService) ReapIdleViews() int {
	cutoff := s.clock.Now().Add(-s.viewTTL)

	s.mu.Lock()
	idle := make(map[string]*viewSession)
	for viewID, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			idle[viewID] = sess
			delete(s.sessions, viewID)
		}
	}
	s.mu.Unlock()

	reaped := 0
	for viewID, sess := range idle {
		if err := s.teardown(viewID, sess, true); err != nil {
			utils.Warn("service: failed to reap idle view", map[string]any{"view_id": viewID, "error": err.Error()})
			continue
		}
		reaped++
		utils.Info("service: idle auction view closed", map[string]any{"view_id": viewID})
	}
	return reaped
}

// teardown marks the view closed so late results are dropped, then stops its goroutines
func (s *AuctionService) teardown(viewID string, sess *viewSession, running bool) error {
	err := s.store.CloseView(viewID)
	if running {
		sess.cancel()
		<-sess.done
	}
	if err != nil {
		return fmt.Errorf("service: failed to close view %s: %w", viewID, err)
	}
	s.store.ForgetView(viewID)
	return nil
}

// Shutdown closes every open view, giving up when ctx is done
func (s *AuctionService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*viewSession)
	s.mu.Unlock()

	for viewID, sess := range sessions {
		sess.cancel()
		if err := s.store.CloseView(viewID); err != nil && !errors.Is(err, uchooseerrors.ErrViewNotFound) {
			utils.Warn("service: failed to close view on shutdown", map[string]any{"view_id": viewID, "error": err.Error()})
		}
	}
	for viewID, sess := range sessions {
		select {
		case <-sess.done:
			s.store.ForgetView(viewID)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// PlaceBid validates a bid and submits it while the auction is running
func (s *AuctionService) PlaceBid(ctx context.Context, bid models.NewBid) (models.Bid, error) {
	if bid.Auction <= 0 || bid.Client <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - missing auction or client", uchooseerrors.ErrInvalidBid)
	}
	if !bid.Quantity.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid quantity", uchooseerrors.ErrInvalidBid)
	}

	a, err := s.backend.GetAuction(ctx, bid.Auction)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get auction %d: %w", bid.Auction, err)
	}
	if st := auctiontime.ForAuction(s.clock.Now(), a, s.loc); st.Phase != models.PhaseActive {
		return models.Bid{}, fmt.Errorf("service: %w - auction %d is %s", uchooseerrors.ErrAuctionNotActive, a.ID, st.Phase)
	}
	if bid.Quantity.LessThan(a.StartingBid) {
		return models.Bid{}, fmt.Errorf("service: %w - starting bid is %s", uchooseerrors.ErrInvalidBid, a.StartingBid)
	}

	created, err := s.backend.CreateBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to create bid on auction %d: %w", bid.Auction, err)
	}
	return created, nil
}

// CancelAuction deletes an auction that has not finished yet
func (s *AuctionService) CancelAuction(ctx context.Context, auctionID int) error {
	state, err := s.GetState(ctx, auctionID, false)
	if err != nil {
		return err
	}
	if !state.Cancellable {
		return fmt.Errorf("service: %w - auction %d is %s", uchooseerrors.ErrAuctionNotCancellable, auctionID, state.TimeState.Phase)
	}
	if err := s.backend.DeleteAuction(ctx, auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction %d: %w", auctionID, err)
	}
	return nil
}

func (s *AuctionService) refreshBids(viewID string, auctionID int) poller.Task {
	return func(ctx context.Context) error {
		bids, err := s.backend.ListAuctionBids(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("list bids of auction %d: %w", auctionID, err)
		}
		if err := s.store.SetViewBids(viewID, bids, s.clock.Now()); err != nil {
			if errors.Is(err, uchooseerrors.ErrViewClosed) {
				return nil
			}
			return err
		}
		return nil
	}
}

func (s *AuctionService) publishTimeState(viewID string) func(models.AuctionTimeState) {
	return func(st models.AuctionTimeState) {
		if err := s.store.SetViewTimeState(viewID, st); err != nil && !errors.Is(err, uchooseerrors.ErrViewClosed) {
			utils.Warn("service: failed to publish time state", map[string]any{"view_id": viewID, "error": err.Error()})
		}
	}
}
