package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusExpired PaymentStatus = "expired"
)

// Payment is the ledger entry for a gateway checkout session. CartKey is the
// hashed cart storage key, never the client's session token. UserID is empty
// for guest checkouts.
type Payment struct {
	ID            string        `json:"id"`
	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency"`
	Description   string        `json:"description"`
	CartKey       string        `json:"-"`
	UserID        string        `json:"-"`
	CustomerEmail string        `json:"customer_email,omitempty"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
