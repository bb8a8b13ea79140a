package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/utils"
)

type PaymentRepository interface {
	UpsertPayment(ctx context.Context, payment *models.Payment) (bool, error)
	GetPaymentByID(ctx context.Context, id string) (*models.Payment, error)
}

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{DB: db}
}

// UpsertPayment records a checkout session and reports whether its status changed.
// Webhooks may be redelivered: a repeated status, or any update to a paid session,
// leaves the row untouched and returns false.
func (r *paymentRepository) UpsertPayment(ctx context.Context, payment *models.Payment) (bool, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO payments (id, amount, currency, description, cart_key, user_id, customer_email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status, customer_email = EXCLUDED.customer_email, updated_at = NOW()
		WHERE payments.status <> EXCLUDED.status AND payments.status <> 'paid'
		RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, payment.ID, payment.Amount, payment.Currency, payment.Description,
		payment.CartKey, payment.UserID, payment.CustomerEmail, payment.Status).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to upsert payment: %w", err)
	}

	return true, nil
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	payment := &models.Payment{}

	query := `
		SELECT id, amount, currency, description, cart_key, user_id, customer_email, status, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&payment.ID, &payment.Amount, &payment.Currency, &payment.Description,
		&payment.CartKey, &payment.UserID, &payment.CustomerEmail, &payment.Status, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return payment, nil
}
