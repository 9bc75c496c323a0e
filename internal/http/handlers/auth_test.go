package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server/internal/auth"
	"server/internal/sqlinline"
)

func TestSignupRejectsPasswordMismatch(t *testing.T) {
	fake := &fakeSQL{}
	app := newTestApp(fake)

	req := jsonRequest("POST", "/api/signup", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"longenough","confirmPassword":"different1"}`)
	rr := httptest.NewRecorder()
	app.Signup(rr, req)

	assert.Equal(t, 400, rr.Code)
	assert.Empty(t, fake.calls, "no statement should run for a rejected signup")
}

func TestSignupRejectsShortPassword(t *testing.T) {
	fake := &fakeSQL{}
	app := newTestApp(fake)

	req := jsonRequest("POST", "/api/signup", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"short1","confirmPassword":"short1"}`)
	rr := httptest.NewRecorder()
	app.Signup(rr, req)

	assert.Equal(t, 400, rr.Code)
	assert.Empty(t, fake.calls)
}

func TestSignupRejectsMissingFields(t *testing.T) {
	fake := &fakeSQL{}
	app := newTestApp(fake)

	req := jsonRequest("POST", "/api/signup", `{"firstName":"Ada","password":"longenough","confirmPassword":"longenough"}`)
	rr := httptest.NewRecorder()
	app.Signup(rr, req)

	assert.Equal(t, 400, rr.Code)
	assert.Empty(t, fake.calls)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	fake := &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			if query == sqlinline.QSelectUserIDByEmail {
				return ValueRow("existing-user")
			}
			t.Fatalf("unexpected query: %s", query)
			return SimpleRow{}
		},
	}
	app := newTestApp(fake)

	req := jsonRequest("POST", "/api/signup", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"longenough","confirmPassword":"longenough"}`)
	rr := httptest.NewRecorder()
	app.Signup(rr, req)

	assert.Equal(t, 400, rr.Code)
	assert.Contains(t, rr.Body.String(), "email already in use")
}

func TestSignupCreatesUser(t *testing.T) {
	var insertedEmail string
	fake := &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			switch query {
			case sqlinline.QSelectUserIDByEmail:
				return SimpleRow{}
			case sqlinline.QInsertUser:
				insertedEmail = args[2].(string)
				return ValueRow("user-123")
			}
			t.Fatalf("unexpected query: %s", query)
			return SimpleRow{}
		},
	}
	app := newTestApp(fake)

	req := jsonRequest("POST", "/api/signup", `{"firstName":"Ada","lastName":"Lovelace","email":" Ada@Example.com ","password":"longenough","confirmPassword":"longenough"}`)
	rr := httptest.NewRecorder()
	app.Signup(rr, req)

	require.Equal(t, 201, rr.Code)

	var payload struct {
		Message string `json:"message"`
		UserID  string `json:"userId"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
	assert.Equal(t, "user-123", payload.UserID)
	assert.Equal(t, "ada@example.com", insertedEmail, "email should be normalized before storage")
}

func TestLoginFailureShapeDoesNotLeakAccountExistence(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	// Unknown email.
	noUser := &fakeSQL{}
	app := newTestApp(noUser)
	rrUnknown := httptest.NewRecorder()
	app.Login(rrUnknown, jsonRequest("POST", "/api/login", `{"email":"ghost@example.com","password":"whatever12"}`))

	// Known email, wrong password.
	known := &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			return ValueRow("user-123", "Ada", "Lovelace", "ada@example.com", hash)
		},
	}
	app = newTestApp(known)
	rrWrong := httptest.NewRecorder()
	app.Login(rrWrong, jsonRequest("POST", "/api/login", `{"email":"ada@example.com","password":"wrong-password"}`))

	assert.Equal(t, 401, rrUnknown.Code)
	assert.Equal(t, 401, rrWrong.Code)
	assert.Equal(t, rrUnknown.Body.String(), rrWrong.Body.String(), "failure responses must be indistinguishable")
}

func TestLoginIssuesTokenWithUserClaims(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	fake := &fakeSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			return ValueRow("user-123", "Ada", "Lovelace", "ada@example.com", hash)
		},
	}
	app := newTestApp(fake)

	rr := httptest.NewRecorder()
	app.Login(rr, jsonRequest("POST", "/api/login", `{"email":"ada@example.com","password":"correct-password"}`))

	require.Equal(t, 200, rr.Code)

	var payload struct {
		Token string  `json:"token"`
		User  userDTO `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
	require.NotEmpty(t, payload.Token)

	claims, err := auth.VerifyToken(testSecret, payload.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", payload.User.FirstName)
}
