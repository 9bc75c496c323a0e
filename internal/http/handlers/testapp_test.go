package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/auth"
	"server/internal/infra"
	"server/internal/middleware"
)

const testSecret = "test-secret"

func newTestApp(sql infra.SQLExecutor) *App {
	return &App{SQL: sql, Logger: zerolog.Nop(), JWTSecret: testSecret, TokenTTL: time.Hour}
}

// jsonRequest builds a request carrying a JSON body.
func jsonRequest(method, target, body string) *http.Request {
	req, _ := http.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches verified claims the way the auth middleware would.
func asUser(req *http.Request, userID, email string) *http.Request {
	claims := &auth.Claims{UserID: userID, Email: email}
	return req.WithContext(middleware.ContextWithClaims(req.Context(), claims))
}
