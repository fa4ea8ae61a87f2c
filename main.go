package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"

	"uchoose-client/internal/apiclient"
	auction "uchoose-client/internal/auctionService"
	booking "uchoose-client/internal/bookingService"
	"uchoose-client/internal/config"
	"uchoose-client/internal/payment"
	"uchoose-client/internal/repository"
	"uchoose-client/internal/server"
	"uchoose-client/utils"
)

func main() {
	// The backend and the browser read amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Warn("unknown log level, keeping info", map[string]any{"level": cfg.LogLevel})
	}

	backend := apiclient.New(apiclient.Config{
		BaseURL: cfg.BackendURL,
		Token:   cfg.BackendToken,
		Timeout: cfg.RequestTimeout,
	})
	store := repository.NewMemoryRepo()
	checkout := payment.NewStripeCheckout(payment.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		CreditPriceID: cfg.StripePriceID,
		FrontendURL:   cfg.FrontendURL,
	})
	if _, disabled := checkout.(payment.Disabled); disabled {
		utils.Warn("stripe is not configured, credit checkout disabled", nil)
	}

	auctionSvc := auction.NewAuctionService(backend, store, auction.Options{
		Location:     cfg.Location,
		PollInterval: cfg.BidPollInterval,
		ViewTTL:      cfg.ViewTTL,
	})
	bookingSvc := booking.NewBookingService(backend, checkout, store, booking.Options{
		Location: cfg.Location,
	})

	router := server.SetupRouter(auctionSvc, bookingSvc)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go auctionSvc.RunReaper(ctx)

	go func() {
		utils.Info("starting uchoose client server", map[string]any{
			"addr":     srv.Addr,
			"backend":  cfg.BackendURL,
			"location": cfg.Location.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
	if err := auctionSvc.Shutdown(shutdownCtx); err != nil {
		utils.Error("closing auction views failed", map[string]any{"error": err.Error()})
	}
}
