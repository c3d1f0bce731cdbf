package httpapi

import (
	"net/http"

	"gigbook/internal/models"
)

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var f models.Feedback
	if !decodeJSON(w, r, &f) {
		return
	}
	created, err := s.svc.Feedback.Submit(r.Context(), &f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListConcertFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	items, err := s.svc.Feedback.ListByConcert(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Feedback.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "feedback deleted"})
}
