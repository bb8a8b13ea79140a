package models

type CheckoutRequest struct {
	PlanName string  `json:"planName"`
	Price    float64 `json:"price"`
}

// CheckoutSessionResponse carries the gateway session id the client redirects with.
type CheckoutSessionResponse struct {
	ID string `json:"id"`
}

type CheckoutErrorResponse struct {
	Error string `json:"error"`
}

// CheckoutCompletedEvent is published once the gateway confirms a paid session.
type CheckoutCompletedEvent struct {
	Type        string `json:"type"`
	SessionID   string `json:"session_id"`
	UserID      string `json:"user_id,omitempty"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}
