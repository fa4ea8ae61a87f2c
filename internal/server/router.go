package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	auctionhandler "uchoose-client/services/auction/handler"
	bookinghandler "uchoose-client/services/booking/handler"
	"uchoose-client/utils"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService auctionhandler.AuctionServiceInterface, bookingService bookinghandler.BookingServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlate logs
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(BearerTokenMiddleware)

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"alive": true}, "ok")
	})

	auctionHandler := auctionhandler.NewAuctionHandler(auctionService)
	bookingHandler := bookinghandler.NewBookingHandler(bookingService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("/:auction_id/state", auctionHandler.GetStateHandler)
		auctions.DELETE("/:auction_id", auctionHandler.CancelAuctionHandler)
		auctions.POST("/:auction_id/views", auctionHandler.OpenViewHandler)
	}

	views := router.Group("/views")
	{
		views.GET("/:view_id", auctionHandler.GetViewHandler)
		views.DELETE("/:view_id", auctionHandler.CloseViewHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	services := router.Group("/services")
	{
		services.GET("/:service_id/slots", bookingHandler.GetSlotsHandler)
		services.GET("/:service_id/auctions", auctionHandler.ListServiceAuctionsHandler)
	}

	bookings := router.Group("/bookings")
	{
		bookings.POST("", bookingHandler.CreateBookingHandler)
		bookings.GET("/:booking_id", bookingHandler.GetBookingHandler)
		bookings.PUT("/:booking_id/date", bookingHandler.SelectDateHandler)
		bookings.POST("/:booking_id/toggle", bookingHandler.ToggleSlotHandler)
		bookings.POST("/:booking_id/confirm-request", bookingHandler.RequestConfirmHandler)
		bookings.POST("/:booking_id/confirm", bookingHandler.ConfirmHandler)
		bookings.POST("/:booking_id/cancel", bookingHandler.CancelBookingHandler)
	}

	return router
}
