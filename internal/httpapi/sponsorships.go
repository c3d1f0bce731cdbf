package httpapi

import (
	"net/http"

	"gigbook/internal/models"
)

func (s *Server) handleListSponsorships(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.Sponsorships.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleListConcertSponsorships(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	items, err := s.svc.Sponsorships.ListByConcert(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateSponsorship(w http.ResponseWriter, r *http.Request) {
	var sp models.Sponsorship
	if !decodeJSON(w, r, &sp) {
		return
	}
	created, err := s.svc.Sponsorships.Create(r.Context(), &sp)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteSponsorship(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Sponsorships.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "sponsorship deleted"})
}
