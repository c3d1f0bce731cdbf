package httpapi

import (
	"net/http"

	"gigbook/internal/app/admins"
	"gigbook/internal/app/attendees"
)

type attendeeView struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactInfo   string `json:"contactInfo"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

type loginResponse struct {
	Message  string       `json:"message"`
	Attendee attendeeView `json:"attendee"`
	Token    string       `json:"token"`
}

type adminLoginResponse struct {
	Success  bool   `json:"success"`
	AdminID  int64  `json:"adminId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req attendees.RegisterInput
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.svc.Attendees.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		ContactInfo string `json:"contactInfo"`
	}{created.ID, created.Name, created.ContactInfo})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req attendees.LoginInput
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := s.svc.Attendees.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	a := res.Attendee
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "login successful",
		Attendee: attendeeView{
			ID:            a.ID,
			Name:          a.Name,
			ContactInfo:   a.ContactInfo,
			LoyaltyPoints: a.LoyaltyPoints,
		},
		Token: res.Token,
	})
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req admins.LoginInput
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := s.svc.Admins.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, adminLoginResponse{
		Success:  true,
		AdminID:  res.Admin.ID,
		Username: res.Admin.Username,
		Token:    res.Token,
	})
}
