package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"server/internal/auth"
	"server/internal/infra"
	"server/internal/middleware"
)

// App bundles the dependencies every handler needs. It is constructed once at
// startup and injected into the router, never reached through package globals.
type App struct {
	SQL       infra.SQLExecutor
	Logger    zerolog.Logger
	JWTSecret string
	TokenTTL  time.Duration
}

func NewApp(sql infra.SQLExecutor, logger zerolog.Logger, jwtSecret string, tokenTTL time.Duration) *App {
	return &App{SQL: sql, Logger: logger, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}

// currentClaims returns the verified token claims the auth middleware attached,
// or nil on routes that never passed the gate.
func (a *App) currentClaims(r *http.Request) *auth.Claims {
	return middleware.ClaimsFromContext(r.Context())
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
