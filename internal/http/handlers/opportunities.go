package handlers

import (
	"net/http"

	"server/internal/domain"
)

func (a *App) OpportunitiesList(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, domain.Opportunities())
}
