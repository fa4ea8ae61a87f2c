package models

import (
	"github.com/shopspring/decimal"
)

// Auction is a time-boxed auction for control of a service (e.g. a shared screen)
type Auction struct {
	ID           int             `json:"id" validate:"required"`
	StartingDate string          `json:"starting_date"`
	EndDate      string          `json:"end_date"`
	StartingBid  decimal.Decimal `json:"starting_bid"`
	TimeFrame    int             `json:"time_frame"` // minutes of control granted to the winner
	Service      int             `json:"service" validate:"required"`
}

// NewAuction is the payload of auctions/create/; Duration is in minutes
type NewAuction struct {
	StartingDate string          `json:"starting_date"`
	EndDate      string          `json:"end_date"`
	Duration     int             `json:"duration"`
	StartingBid  decimal.Decimal `json:"starting_bid"`
	TimeFrame    int             `json:"time_frame"`
	Service      int             `json:"service"`
}

// Bid represents a client's bid on an auction
type Bid struct {
	ID       int             `json:"id" validate:"required"`
	Auction  int             `json:"auction" validate:"required"`
	Client   int             `json:"client"`
	Event    string          `json:"event"`
	Platform string          `json:"platform"`
	Quantity decimal.Decimal `json:"quantity"`
}

// NewBid is the payload of bids/create/
type NewBid struct {
	Event    string          `json:"event"`
	Platform string          `json:"platform"`
	Quantity decimal.Decimal `json:"quantity"`
	Auction  int             `json:"auction"`
	Client   int             `json:"client"`
}

// SlotTemplate is a recurring priced time range of a service for a given date
type SlotTemplate struct {
	ID        int             `json:"id"`
	Name      string          `json:"name,omitempty"`
	StartTime string          `json:"start_time" validate:"required"`
	EndTime   string          `json:"end_time" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Color     string          `json:"color,omitempty"`
}

// ServiceDetails is the subset of a service shown next to its slots
type ServiceDetails struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ServiceSlots is one entry of services/recomendations/
type ServiceSlots struct {
	Service        int            `json:"service"`
	ServiceDetails ServiceDetails `json:"service_details"`
	Slots          []SlotTemplate `json:"slots"`
}

// Reservation is an existing booking of a service
type Reservation struct {
	ID           int    `json:"id"`
	Service      int    `json:"service"`
	StartingDate string `json:"starting_date" validate:"required"`
	EndDate      string `json:"end_date" validate:"required"`
	Client       int    `json:"client"`
}

// NewReservation is the payload of reservations/create/
type NewReservation struct {
	Service      int    `json:"service"`
	StartingDate string `json:"starting_date"`
	EndDate      string `json:"end_date"`
}

// Client is the authenticated client with its stored credit balance
type Client struct {
	ID      int             `json:"id" validate:"required"`
	Name    string          `json:"name"`
	Surname string          `json:"surname"`
	Credits decimal.Decimal `json:"credits"`
}

// BookableSubSlot is a derived 30-minute slot that can be selected for booking
type BookableSubSlot struct {
	ID          string          `json:"id"`
	StartTime   TimeOfDay       `json:"start_time"`
	EndTime     TimeOfDay       `json:"end_time"`
	Price       decimal.Decimal `json:"price"`
	TemplateRef SlotTemplate    `json:"template"`
}
