package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/sqlinline"
)

type signupRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

const minPasswordLength = 8

// invalidCredentials is the single message for both unknown email and wrong
// password, so responses cannot be used to enumerate accounts.
const invalidCredentials = "invalid email or password"

func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "all fields are required")
		return
	}
	if req.Password != req.ConfirmPassword {
		a.error(w, http.StatusBadRequest, "bad_request", "passwords do not match")
		return
	}
	if len(req.Password) < minPasswordLength {
		a.error(w, http.StatusBadRequest, "bad_request", "password must be at least 8 characters")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Application-level duplicate check; the unique constraint below backs it up.
	var existingID string
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectUserIDByEmail, email).Scan(&existingID)
	if err == nil {
		a.error(w, http.StatusBadRequest, "duplicate", "email already in use")
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		a.Logger.Error().Err(err).Msg("signup: duplicate check failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create user")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.Logger.Error().Err(err).Msg("signup: hash password failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create user")
		return
	}

	var userID string
	err = a.SQL.QueryRow(r.Context(), sqlinline.QInsertUser, req.FirstName, req.LastName, email, hash).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			a.error(w, http.StatusBadRequest, "duplicate", "email already in use")
			return
		}
		a.Logger.Error().Err(err).Msg("signup: insert user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create user")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"message": "user created successfully",
		"userId":  userID,
	})
}

func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user domain.User
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectUserByEmail, email).
		Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusUnauthorized, "unauthorized", invalidCredentials)
			return
		}
		a.Logger.Error().Err(err).Msg("login: lookup failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to log in")
		return
	}

	if !auth.VerifyPassword(req.Password, user.Password) {
		a.error(w, http.StatusUnauthorized, "unauthorized", invalidCredentials)
		return
	}

	token, err := auth.IssueToken(a.JWTSecret, user.ID, user.Email, a.TokenTTL)
	if err != nil {
		a.Logger.Error().Err(err).Msg("login: issue token failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to log in")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"user": userDTO{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
		"token": token,
	})
}
