package httpapi

import (
	"net/http"

	"gigbook/internal/models"
)

// Venues

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := s.svc.Venues.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, venues)
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	venue, err := s.svc.Venues.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var venue models.Venue
	if !decodeJSON(w, r, &venue) {
		return
	}
	created, err := s.svc.Venues.Create(r.Context(), &venue)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Venues.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "venue deleted"})
}

// Artists

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.svc.Artists.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, artists)
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	artist, err := s.svc.Artists.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var artist models.Artist
	if !decodeJSON(w, r, &artist) {
		return
	}
	created, err := s.svc.Artists.Create(r.Context(), &artist)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Artists.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "artist deleted"})
}

// Staff

func (s *Server) handleListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := s.svc.Staff.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (s *Server) handleGetStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	member, err := s.svc.Staff.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (s *Server) handleCreateStaff(w http.ResponseWriter, r *http.Request) {
	var member models.Staff
	if !decodeJSON(w, r, &member) {
		return
	}
	created, err := s.svc.Staff.Create(r.Context(), &member)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Staff.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "staff member deleted"})
}

// Streaming platforms

func (s *Server) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := s.svc.Streaming.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, platforms)
}

func (s *Server) handleGetPlatform(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	platform, err := s.svc.Streaming.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, platform)
}

func (s *Server) handleCreatePlatform(w http.ResponseWriter, r *http.Request) {
	var platform models.StreamingPlatform
	if !decodeJSON(w, r, &platform) {
		return
	}
	created, err := s.svc.Streaming.Create(r.Context(), &platform)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdatePlatform(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var platform models.StreamingPlatform
	if !decodeJSON(w, r, &platform) {
		return
	}
	updated, err := s.svc.Streaming.Update(r.Context(), id, &platform)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePlatform(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.svc.Streaming.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "streaming platform deleted"})
}
