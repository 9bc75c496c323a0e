package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/sqlinline"
)

type bioUpdateRequest struct {
	Bio string `json:"bio"`
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (a *App) BioGet(w http.ResponseWriter, r *http.Request) {
	claims := a.currentClaims(r)
	if claims == nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	var user domain.User
	var bio string
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectUserWithBio, claims.UserID).
		Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Msg("bio: fetch failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}

	a.json(w, http.StatusOK, map[string]string{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"bio":       bio,
	})
}

// BioUpdate is an upsert: the bio row is created lazily on the first write and
// overwritten on every later one, so repeating the same update never yields a
// second row.
func (a *App) BioUpdate(w http.ResponseWriter, r *http.Request) {
	claims := a.currentClaims(r)
	if claims == nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	var req bioUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	if _, err := a.SQL.Exec(r.Context(), sqlinline.QUpsertBio, claims.UserID, req.Bio); err != nil {
		a.Logger.Error().Err(err).Msg("bio: upsert failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update bio")
		return
	}

	a.json(w, http.StatusOK, map[string]string{"message": "bio updated successfully"})
}

func (a *App) PasswordChange(w http.ResponseWriter, r *http.Request) {
	claims := a.currentClaims(r)
	if claims == nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	var req passwordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		a.error(w, http.StatusBadRequest, "bad_request", "password must be at least 8 characters")
		return
	}

	var currentHash string
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectUserPassword, claims.UserID).Scan(&currentHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Msg("password: fetch failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to change password")
		return
	}

	if !auth.VerifyPassword(req.CurrentPassword, currentHash) {
		a.error(w, http.StatusUnauthorized, "unauthorized", "current password is incorrect")
		return
	}

	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		a.Logger.Error().Err(err).Msg("password: hash failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to change password")
		return
	}

	if _, err := a.SQL.Exec(r.Context(), sqlinline.QUpdateUserPassword, claims.UserID, newHash); err != nil {
		a.Logger.Error().Err(err).Msg("password: update failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to change password")
		return
	}

	a.json(w, http.StatusOK, map[string]string{"message": "password changed successfully"})
}
