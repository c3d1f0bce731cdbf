package httpapi

import (
	"net/http"

	"gigbook/internal/models"
)

func (s *Server) handlePurchaseTicket(w http.ResponseWriter, r *http.Request) {
	var req models.TicketRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ticket, err := s.svc.Tickets.Purchase(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (s *Server) handleListAttendeeTickets(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tickets, err := s.svc.Tickets.ListByAttendee(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (s *Server) handleGetConcertTicket(w http.ResponseWriter, r *http.Request) {
	concertID, ok := pathID(w, r, "concertID")
	if !ok {
		return
	}
	attendeeID, ok := pathID(w, r, "attendeeID")
	if !ok {
		return
	}
	ticket, err := s.svc.Tickets.GetForConcert(r.Context(), concertID, attendeeID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (s *Server) handleCancelTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Tickets.Cancel(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "ticket deleted"})
}
