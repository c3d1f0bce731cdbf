package httpapi

import (
	"net/http"
	"strconv"

	"gigbook/internal/models"
)

type priceIncreaseRequest struct {
	PriceIncrease float64 `json:"priceIncrease"`
}

type priceIncreaseResponse struct {
	Message  string  `json:"message"`
	NewPrice float64 `json:"newPrice"`
}

func (s *Server) handleListConcerts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.ConcertFilter{Status: models.ConcertStatus(query.Get("status"))}

	if raw := query.Get("upcoming"); raw != "" {
		upcoming, err := strconv.ParseBool(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "upcoming must be true or false"})
			return
		}
		filter.Upcoming = upcoming
	}

	concerts, err := s.svc.Concerts.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, concerts)
}

func (s *Server) handleGetConcert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	concert, err := s.svc.Concerts.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, concert)
}

func (s *Server) handleCreateConcert(w http.ResponseWriter, r *http.Request) {
	var concert models.Concert
	if !decodeJSON(w, r, &concert) {
		return
	}
	created, err := s.svc.Concerts.Create(r.Context(), &concert)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateConcert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var concert models.Concert
	if !decodeJSON(w, r, &concert) {
		return
	}
	updated, err := s.svc.Concerts.Update(r.Context(), id, &concert)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteConcert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Concerts.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "concert deleted"})
}

func (s *Server) handleConcertRevenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	revenue, err := s.svc.Concerts.Revenue(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

func (s *Server) handleConcertSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	summary, err := s.svc.Concerts.Summary(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleIncreasePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req priceIncreaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	price, err := s.svc.Concerts.IncreasePrice(r.Context(), id, req.PriceIncrease)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, priceIncreaseResponse{Message: "price updated", NewPrice: price})
}

func (s *Server) handleAttendeeDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	dashboard, err := s.svc.Concerts.Dashboard(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}
