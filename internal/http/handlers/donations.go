package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/sqlinline"
)

type cardInfo struct {
	CardNumber  string `json:"cardNumber"`
	CardType    string `json:"cardType"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`
}

type donationCreateRequest struct {
	Amount         float64  `json:"amount"`
	Frequency      string   `json:"frequency"`
	Email          string   `json:"email"`
	CardInfo       cardInfo `json:"cardInfo"`
	CardholderName string   `json:"cardholderName"`
	Country        string   `json:"country"`
}

// donationDTO is the redacted projection: no card number, no hashes, only the
// last four digits survive into responses.
type donationDTO struct {
	ID             string    `json:"id"`
	Amount         float64   `json:"amount"`
	Frequency      string    `json:"frequency"`
	Email          string    `json:"email"`
	CardLast4      string    `json:"card_last4"`
	CardholderName string    `json:"cardholder_name"`
	Country        string    `json:"country"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
}

func donationView(d domain.Donation) donationDTO {
	return donationDTO{
		ID:             d.ID,
		Amount:         d.Amount,
		Frequency:      string(d.Frequency),
		Email:          d.Email,
		CardLast4:      d.CardLast4,
		CardholderName: d.CardholderName,
		Country:        d.Country,
		PaymentStatus:  d.PaymentStatus,
		CreatedAt:      d.CreatedAt,
	}
}

func scanDonation(row pgx.Row) (domain.Donation, error) {
	var d domain.Donation
	var frequency string
	err := row.Scan(&d.ID, &d.Amount, &frequency, &d.Email, &d.CardLast4, &d.CardholderName, &d.Country, &d.PaymentStatus, &d.CreatedAt)
	d.Frequency = domain.DonationFrequency(frequency)
	return d, err
}

func cardDigits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (req *donationCreateRequest) validate() string {
	switch {
	case req.Amount <= 0:
		return "amount must be a positive number"
	case req.Email == "":
		return "email is required"
	case req.CardInfo.CardNumber == "":
		return "card number is required"
	case req.CardInfo.ExpiryMonth == "" || req.CardInfo.ExpiryYear == "":
		return "card expiry is required"
	case req.CardInfo.CVV == "":
		return "cvv is required"
	case req.CardholderName == "":
		return "cardholder name is required"
	case req.Country == "":
		return "country is required"
	}
	if len(cardDigits(req.CardInfo.CardNumber)) < 4 {
		return "invalid card number"
	}
	if req.Frequency != "" && !domain.ValidFrequency(domain.DonationFrequency(req.Frequency)) {
		return "frequency must be one of one-time, monthly, quarterly, yearly"
	}
	return ""
}

// DonationCreate inserts the donation and its payment method inside one
// transaction: either both rows exist afterwards or neither does. The deferred
// rollback releases the connection on every failure path; it is a no-op once
// the transaction has committed.
func (a *App) DonationCreate(w http.ResponseWriter, r *http.Request) {
	var req donationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if msg := req.validate(); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = string(domain.FrequencyOneTime)
	}
	digits := cardDigits(req.CardInfo.CardNumber)
	last4 := digits[len(digits)-4:]

	ctx := r.Context()
	tx, err := a.SQL.Begin(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("donations: begin failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to process donation")
		return
	}
	defer tx.Rollback(ctx)

	var donationID string
	err = tx.QueryRow(ctx, sqlinline.QInsertDonation,
		req.Amount, frequency, req.Email, last4, req.CardholderName, req.Country).
		Scan(&donationID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("donations: insert donation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to process donation")
		return
	}

	pm := domain.PaymentMethod{
		DonationID:     donationID,
		CardType:       req.CardInfo.CardType,
		CardNumberHash: auth.HashSensitive(req.CardInfo.CardNumber),
		ExpiryMonth:    req.CardInfo.ExpiryMonth,
		ExpiryYear:     req.CardInfo.ExpiryYear,
		CVVHash:        auth.HashSensitive(req.CardInfo.CVV),
	}
	_, err = tx.Exec(ctx, sqlinline.QInsertPaymentMethod,
		pm.DonationID, pm.CardType, pm.CardNumberHash, pm.ExpiryMonth, pm.ExpiryYear, pm.CVVHash)
	if err != nil {
		a.Logger.Error().Err(err).Msg("donations: insert payment method failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to process donation")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		a.Logger.Error().Err(err).Msg("donations: commit failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to process donation")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"message":    "donation processed successfully",
		"donationId": donationID,
	})
}

func (a *App) DonationGet(w http.ResponseWriter, r *http.Request) {
	donationID := chi.URLParam(r, "id")

	d, err := scanDonation(a.SQL.QueryRow(r.Context(), sqlinline.QSelectDonationByID, donationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "donation not found")
			return
		}
		a.Logger.Error().Err(err).Msg("donations: fetch failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donation")
		return
	}

	a.json(w, http.StatusOK, donationView(d))
}

// DonationsListByEmail returns a donor's history. The route sits behind the
// auth gate, and the email parameter must match the token's own claim so one
// donor cannot read another's records.
func (a *App) DonationsListByEmail(w http.ResponseWriter, r *http.Request) {
	claims := a.currentClaims(r)
	if claims == nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email query parameter is required")
		return
	}
	if !strings.EqualFold(email, claims.Email) {
		a.error(w, http.StatusForbidden, "forbidden", "email does not match authenticated user")
		return
	}

	rows, err := a.SQL.Query(r.Context(), sqlinline.QListDonationsByEmail, email)
	if err != nil {
		a.Logger.Error().Err(err).Msg("donations: list failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}
	defer rows.Close()

	donations := []donationDTO{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			a.Logger.Error().Err(err).Msg("donations: scan failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
			return
		}
		donations = append(donations, donationView(d))
	}
	if err := rows.Err(); err != nil {
		a.Logger.Error().Err(err).Msg("donations: rows failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}

	a.json(w, http.StatusOK, donations)
}
