package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"uchoose-client/internal/auctiontime"
	model "uchoose-client/internal/models"
	"uchoose-client/internal/payment"
	"uchoose-client/services/helpers"
)

func TestGetAuctionState(t *testing.T) {
	tests := []struct {
		name            string
		url             string
		wantStatus      int
		wantPhase       string
		wantLabel       string
		wantCancellable bool
	}{
		{
			name:            "Active",
			url:             "/auctions/1/state",
			wantStatus:      http.StatusOK,
			wantPhase:       "ACTIVE",
			wantLabel:       auctiontime.LabelFewHours,
			wantCancellable: true,
		},
		{
			name:       "Active_In_Service_Info",
			url:        "/auctions/1/state?service_info=true",
			wantStatus: http.StatusOK,
			wantPhase:  "ACTIVE",
			wantLabel:  auctiontime.LabelFewHours,
		},
		{
			name:       "Finished",
			url:        "/auctions/2/state",
			wantStatus: http.StatusOK,
			wantPhase:  "FINISHED",
			wantLabel:  auctiontime.LabelExpired,
		},
		{
			name:       "Not_Found_Passes_Through",
			url:        "/auctions/99/state",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Invalid_ID",
			url:        "/auctions/x/state",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestRouter(t, NewFakeBackend(0), payment.Disabled{})
			resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, tt.url, nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			data := Data(t, resp)
			state := data["time_state"].(map[string]any)
			require.Equal(t, tt.wantPhase, state["phase"])
			require.Equal(t, tt.wantLabel, state["label"])
			require.Equal(t, tt.wantCancellable, data["cancellable"])
		})
	}
}

func TestAuctionViewLifecycle(t *testing.T) {
	env := SetupTestRouter(t, NewFakeBackend(0), payment.Disabled{})

	resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions/1/views", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	viewID := Data(t, resp)["view_id"].(string)

	// first poll round runs on open and sees no bids yet
	require.Eventually(t, func() bool {
		resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/views/"+viewID, nil)
		return w.Code == http.StatusOK && Data(t, resp)["bids_fetched_at"] != "0001-01-01T00:00:00Z"
	}, time.Second, 10*time.Millisecond)

	resp, w = ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/bids", helpers.PlaceBidRequest{
		Auction:  1,
		Client:   9,
		Event:    "Partido",
		Platform: "web",
		Quantity: decimal.NewFromInt(12),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 12.0, Data(t, resp)["quantity"])
	env.Backend.AddBid(model.Bid{ID: 2, Auction: 1, Client: 4, Quantity: decimal.NewFromInt(15)})

	env.Clock.Add(time.Second)
	require.Eventually(t, func() bool {
		resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/views/"+viewID, nil)
		return w.Code == http.StatusOK && len(Data(t, resp)["bids"].([]any)) == 2
	}, time.Second, 10*time.Millisecond)

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodDelete, "/views/"+viewID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodGet, "/views/"+viewID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceBidRules(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name:       "Below_Starting_Bid",
			request:    helpers.PlaceBidRequest{Auction: 1, Client: 9, Quantity: decimal.NewFromInt(5)},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Finished_Auction",
			request:    helpers.PlaceBidRequest{Auction: 2, Client: 9, Quantity: decimal.NewFromInt(50)},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Missing_Client",
			request:    helpers.PlaceBidRequest{Auction: 1, Quantity: decimal.NewFromInt(50)},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid_JSON",
			request:    []byte("{auction: 1}"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestRouter(t, NewFakeBackend(0), payment.Disabled{})
			_, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/bids", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)
			require.Empty(t, env.Backend.Bids[1])
		})
	}
}

func TestCancelAuction(t *testing.T) {
	env := SetupTestRouter(t, NewFakeBackend(0), payment.Disabled{})

	_, w := ExecuteRequestAndParse(t, env.Router, http.MethodDelete, "/auctions/2", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	_, w = ExecuteRequestAndParse(t, env.Router, http.MethodDelete, "/auctions/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []int{1}, env.Backend.Deleted)
}

func TestListServiceAuctions(t *testing.T) {
	fake := NewFakeBackend(0)
	fake.Auctions[3] = model.Auction{ID: 3, StartingDate: "2025-06-05T20:00:00", EndDate: "2025-06-06T20:00:00", StartingBid: decimal.NewFromInt(10), TimeFrame: 30, Service: 3}
	fake.Auctions[4] = model.Auction{ID: 4, StartingDate: "2025-06-01T20:00:00", EndDate: "2025-06-02T20:00:00", StartingBid: decimal.NewFromInt(10), TimeFrame: 30, Service: 8}
	env := SetupTestRouter(t, fake, payment.Disabled{})

	tests := []struct {
		name         string
		url          string
		wantStatus   int
		wantUpcoming int
		wantActive   int
		wantFinished int
	}{
		{name: "All_Groups", url: "/services/3/auctions", wantStatus: http.StatusOK, wantUpcoming: 1, wantActive: 1, wantFinished: 1},
		{name: "Active_Only", url: "/services/3/auctions?active_only=true", wantStatus: http.StatusOK, wantActive: 1},
		{name: "Other_Service", url: "/services/8/auctions", wantStatus: http.StatusOK, wantActive: 1},
		{name: "Unknown_Service", url: "/services/42/auctions", wantStatus: http.StatusOK},
		{name: "Invalid_ID", url: "/services/x/auctions", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodGet, tt.url, nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			data := Data(t, resp)
			require.Len(t, data["upcoming"], tt.wantUpcoming)
			require.Len(t, data["active"], tt.wantActive)
			require.Len(t, data["finished"], tt.wantFinished)
		})
	}
}

func TestCreateAuction(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
		wantEnd    string
	}{
		{
			name:       "Created",
			request:    helpers.CreateAuctionRequest{Service: 3, StartingDate: "2025-06-03T18:00", Duration: 120, StartingBid: decimal.NewFromInt(10), TimeFrame: 30},
			wantStatus: http.StatusCreated,
			wantEnd:    "2025-06-03T20:00",
		},
		{
			name:       "Zero_Duration",
			request:    helpers.CreateAuctionRequest{Service: 3, StartingDate: "2025-06-03T18:00", TimeFrame: 30},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Zero_Time_Frame",
			request:    helpers.CreateAuctionRequest{Service: 3, StartingDate: "2025-06-03T18:00", Duration: 120},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Bad_Start",
			request:    helpers.CreateAuctionRequest{Service: 3, StartingDate: "mañana", Duration: 120, TimeFrame: 30},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Missing_Service",
			request:    helpers.CreateAuctionRequest{StartingDate: "2025-06-03T18:00", Duration: 120, TimeFrame: 30},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestRouter(t, NewFakeBackend(0), payment.Disabled{})
			resp, w := ExecuteRequestAndParse(t, env.Router, http.MethodPost, "/auctions", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusCreated {
				require.Empty(t, env.Backend.Created)
				return
			}

			require.Len(t, env.Backend.Created, 1)
			require.Equal(t, tt.wantEnd, env.Backend.Created[0].EndDate)
			require.Equal(t, 120, env.Backend.Created[0].Duration)
			data := Data(t, resp)
			require.Equal(t, 3.0, data["service"])
			require.Equal(t, tt.wantEnd, data["end_date"])
		})
	}
}
