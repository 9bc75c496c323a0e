package domain

import "time"

// DonationFrequency enumerates the supported giving cadences.
type DonationFrequency string

const (
	FrequencyOneTime   DonationFrequency = "one-time"
	FrequencyMonthly   DonationFrequency = "monthly"
	FrequencyQuarterly DonationFrequency = "quarterly"
	FrequencyYearly    DonationFrequency = "yearly"
)

// ValidFrequency reports whether f is one of the supported cadences.
func ValidFrequency(f DonationFrequency) bool {
	switch f {
	case FrequencyOneTime, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// Donation is a contribution record. It exclusively owns its PaymentMethod;
// deleting a donation cascades to it. No payment gateway is invoked, so
// payment_status defaults to "completed" at the storage layer.
type Donation struct {
	ID             string
	Amount         float64
	Frequency      DonationFrequency
	Email          string
	CardLast4      string
	CardholderName string
	Country        string
	PaymentStatus  string
	CreatedAt      time.Time
}

// PaymentMethod stores only derived card data: hashes of the PAN and CVV plus
// expiry. The raw number and CVV never reach a column.
type PaymentMethod struct {
	ID             string
	DonationID     string
	CardType       string
	CardNumberHash string
	ExpiryMonth    string
	ExpiryYear     string
	CVVHash        string
	CreatedAt      time.Time
}
