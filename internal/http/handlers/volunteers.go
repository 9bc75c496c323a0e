package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"server/internal/domain"
	"server/internal/sqlinline"
)

type volunteerRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Interest     string `json:"interest"`
	Availability string `json:"availability"`
	Experience   string `json:"experience"`
}

func (req *volunteerRequest) missingField() string {
	switch {
	case req.FirstName == "":
		return "firstName"
	case req.LastName == "":
		return "lastName"
	case req.Email == "":
		return "email"
	case req.Phone == "":
		return "phone"
	case req.Interest == "":
		return "interest"
	case req.Availability == "":
		return "availability"
	}
	return ""
}

func (a *App) VolunteerCreate(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if field := req.missingField(); field != "" {
		a.error(w, http.StatusBadRequest, "bad_request", field+" is required")
		return
	}

	v := domain.Volunteer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Interest:     req.Interest,
		Availability: req.Availability,
		Experience:   req.Experience,
	}

	err := a.SQL.QueryRow(r.Context(), sqlinline.QInsertVolunteer,
		v.FirstName, v.LastName, v.Email, v.Phone, v.Interest, v.Availability, v.Experience).
		Scan(&v.ID)
	if err != nil {
		// A repeat application is recognized, not treated as a server fault.
		if isUniqueViolation(err) {
			a.error(w, http.StatusBadRequest, "duplicate", "an application with this email already exists")
			return
		}
		a.Logger.Error().Err(err).Msg("volunteers: insert failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to submit application")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"message": "application submitted successfully",
		"id":      v.ID,
	})
}
