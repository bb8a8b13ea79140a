package service

import (
	"context"
	"database/sql"
	"encoding/json"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/middleware"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	repository "github.com/aaravmahajanofficial/cloud-kitchen/internal/repositories"
	"github.com/aaravmahajanofficial/cloud-kitchen/pkg/messaging"
	"github.com/aaravmahajanofficial/cloud-kitchen/pkg/sendgrid"
	"github.com/aaravmahajanofficial/cloud-kitchen/pkg/stripe"
	"github.com/google/uuid"
)

const (
	eventCheckoutCompleted = "checkout.session.completed"
	eventCheckoutExpired   = "checkout.session.expired"

	checkoutCompletedType = "checkout.completed"
)

type PaymentService interface {
	GetPayment(ctx context.Context, id string, userID uuid.UUID) (*models.Payment, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error)
}

type paymentService struct {
	repo         repository.PaymentRepository
	stripeClient stripe.Client
	carts        repository.CartRepository
	publisher    messaging.Publisher
	mailer       sendgrid.EmailService
	topic        string
}

// NewPaymentService records gateway checkout outcomes. publisher and mailer are
// optional; a nil one skips that side effect.
func NewPaymentService(
	repo repository.PaymentRepository,
	stripeClient stripe.Client,
	carts repository.CartRepository,
	publisher messaging.Publisher,
	mailer sendgrid.EmailService,
	topic string,
) PaymentService {
	return &paymentService{
		repo:         repo,
		stripeClient: stripeClient,
		carts:        carts,
		publisher:    publisher,
		mailer:       mailer,
		topic:        topic,
	}
}

// GetPayment implements PaymentService. A payment owned by someone else, or by
// a guest, is reported as not found.
func (s *paymentService) GetPayment(ctx context.Context, id string, userID uuid.UUID) (*models.Payment, error) {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Payment not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch payment").WithError(err)
	}

	if payment.UserID == "" || payment.UserID != userID.String() {
		return nil, errors.NotFoundError("Payment not found")
	}

	return payment, nil
}

// HandleWebhook implements PaymentService.
func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {

	logger := middleware.LoggerFromContext(ctx)

	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return stripe.Event{}, errors.BadRequestError("Webhook signature verification failed").WithError(err)
	}

	var status models.PaymentStatus

	switch event.Type {
	case eventCheckoutCompleted:
		status = models.PaymentStatusPaid
	case eventCheckoutExpired:
		status = models.PaymentStatusExpired
	default:
		logger.Debug("Ignoring webhook event", slog.String("type", string(event.Type)))
		return event, nil
	}

	if event.Data == nil {
		return event, errors.BadRequestError("Invalid checkout session payload")
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil || session.ID == "" {
		return event, errors.BadRequestError("Invalid checkout session payload").WithError(err)
	}

	payment := paymentFromSession(&session, status)

	changed, err := s.repo.UpsertPayment(ctx, payment)
	if err != nil {
		return event, errors.DatabaseError("Failed to record payment").WithError(err)
	}

	if !changed {
		logger.Info("Checkout session already recorded",
			slog.String("sessionId", payment.ID),
			slog.String("eventId", event.ID))
		return event, nil
	}

	logger.Info("Checkout session recorded",
		slog.String("sessionId", payment.ID),
		slog.String("status", string(payment.Status)))

	if status == models.PaymentStatusPaid {
		s.afterPaid(ctx, payment)
	}

	return event, nil
}

// afterPaid runs the side effects of a session's first transition to paid.
// Failures are logged only, the payment is already recorded.
func (s *paymentService) afterPaid(ctx context.Context, payment *models.Payment) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("sessionId", payment.ID))

	if payment.CartKey != "" {
		if err := s.carts.Discard(ctx, payment.CartKey); err != nil {
			logger.Error("Failed to clear paid cart", slog.String("error", err.Error()))
		}
	}

	if s.publisher != nil {
		event := models.CheckoutCompletedEvent{
			Type:        checkoutCompletedType,
			SessionID:   payment.ID,
			UserID:      payment.UserID,
			Amount:      payment.Amount,
			Currency:    payment.Currency,
			Description: payment.Description,
		}

		if err := s.publisher.Publish(ctx, s.topic, payment.ID, event); err != nil {
			logger.Error("Failed to publish checkout event", slog.String("error", err.Error()))
		}
	}

	if s.mailer != nil && payment.CustomerEmail != "" {
		if err := s.mailer.Send(ctx, sendgrid.ReceiptEmail(payment.CustomerEmail, payment)); err != nil {
			logger.Error("Failed to send receipt", slog.String("error", err.Error()))
		}
	}
}

func paymentFromSession(session *stripe.CheckoutSession, status models.PaymentStatus) *models.Payment {

	email := session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		email = session.CustomerDetails.Email
	}

	return &models.Payment{
		ID:            session.ID,
		Amount:        session.AmountTotal,
		Currency:      string(session.Currency),
		Description:   session.Metadata[metadataPlanName],
		CartKey:       session.Metadata[metadataCartKey],
		UserID:        session.Metadata[metadataUserID],
		CustomerEmail: email,
		Status:        status,
	}
}
