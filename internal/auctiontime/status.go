package auctiontime

import "uchoose-client/internal/models"

// Status is the short badge shown on auction list cards
func Status(phase models.AuctionPhase) string {
	switch phase {
	case models.PhaseActive:
		return "En curso"
	case models.PhaseFinished:
		return "Finalizada"
	default:
		return "Próxima"
	}
}

// CanCancel reports whether the cancel action applies: the auction must be upcoming or
// active, and the card must not be rendered inside a service detail (serviceInfo).
func CanCancel(phase models.AuctionPhase, serviceInfo bool) bool {
	return (phase == models.PhaseNotStarted || phase == models.PhaseActive) && !serviceInfo
}
