package service_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	repository "github.com/aaravmahajanofficial/cloud-kitchen/internal/repositories"
	repoMocks "github.com/aaravmahajanofficial/cloud-kitchen/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/cloud-kitchen/internal/services"
	messagingMocks "github.com/aaravmahajanofficial/cloud-kitchen/pkg/messaging/mocks"
	sendgridMocks "github.com/aaravmahajanofficial/cloud-kitchen/pkg/sendgrid/mocks"
	stripeMocks "github.com/aaravmahajanofficial/cloud-kitchen/pkg/stripe/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	stripeapi "github.com/stripe/stripe-go/v81"
)

const checkoutTopic = "checkout.completed"

var (
	payerID = uuid.MustParse("6f1c2f0e-6a55-4a8e-9d0e-4d2f7c1b9a10")
	cartKey = repository.CartStorageKey("user:" + payerID.String())
)

type paymentDeps struct {
	repo      *repoMocks.MockPaymentRepository
	stripe    *stripeMocks.MockClient
	carts     *repoMocks.MockCartRepository
	publisher *messagingMocks.MockPublisher
	mailer    *sendgridMocks.MockEmailService
}

func setupPaymentService(t *testing.T) (service.PaymentService, paymentDeps) {
	t.Helper()

	deps := paymentDeps{
		repo:      repoMocks.NewMockPaymentRepository(t),
		stripe:    stripeMocks.NewMockClient(t),
		carts:     repoMocks.NewMockCartRepository(t),
		publisher: messagingMocks.NewMockPublisher(t),
		mailer:    sendgridMocks.NewMockEmailService(t),
	}

	svc := service.NewPaymentService(deps.repo, deps.stripe, deps.carts, deps.publisher, deps.mailer, checkoutTopic)

	return svc, deps
}

func checkoutEvent(t *testing.T, eventType string, session map[string]any) stripeapi.Event {
	t.Helper()

	raw, err := json.Marshal(session)
	require.NoError(t, err)

	return stripeapi.Event{
		ID:   "evt_test_1",
		Type: stripeapi.EventType(eventType),
		Data: &stripeapi.EventData{Raw: raw},
	}
}

func completedSession() map[string]any {
	return map[string]any{
		"id":             "cs_test_1",
		"object":         "checkout.session",
		"amount_total":   145100,
		"currency":       "pkr",
		"customer_email": "fallback@example.com",
		"customer_details": map[string]any{
			"email": "diner@example.com",
		},
		"metadata": map[string]string{
			"planName":    "Cloud Kitchen order (2 items)",
			"price":       "1451",
			"cartKey":     cartKey,
			"userId":      payerID.String(),
		},
	}
}

func TestGetPayment(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		expected := &models.Payment{ID: "cs_test_1", Amount: 50000, Currency: "pkr", UserID: payerID.String(), Status: models.PaymentStatusPaid}
		deps.repo.On("GetPaymentByID", ctx, "cs_test_1").Return(expected, nil).Once()

		// Act
		payment, err := svc.GetPayment(ctx, "cs_test_1", payerID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, payment)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		deps.repo.On("GetPaymentByID", ctx, "cs_missing").Return(nil, sql.ErrNoRows).Once()

		// Act
		payment, err := svc.GetPayment(ctx, "cs_missing", payerID)

		// Assert
		assert.Nil(t, payment)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Failure - Another user's payment is hidden", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		stored := &models.Payment{ID: "cs_test_1", UserID: payerID.String(), CustomerEmail: "diner@example.com", Status: models.PaymentStatusPaid}
		deps.repo.On("GetPaymentByID", ctx, "cs_test_1").Return(stored, nil).Once()

		// Act
		payment, err := svc.GetPayment(ctx, "cs_test_1", uuid.New())

		// Assert
		assert.Nil(t, payment)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - Guest payment is hidden", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		stored := &models.Payment{ID: "cs_guest", CartKey: repository.CartStorageKey("guest:tab-1"), Status: models.PaymentStatusPaid}
		deps.repo.On("GetPaymentByID", ctx, "cs_guest").Return(stored, nil).Once()

		// Act
		payment, err := svc.GetPayment(ctx, "cs_guest", uuid.Nil)

		// Assert
		assert.Nil(t, payment)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		dbErr := errors.New("connection reset by peer")
		deps.repo.On("GetPaymentByID", ctx, "cs_test_1").Return(nil, dbErr).Once()

		// Act
		payment, err := svc.GetPayment(ctx, "cs_test_1", payerID)

		// Assert
		assert.Nil(t, payment)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestHandleWebhook(t *testing.T) {
	ctx := t.Context()
	payload := []byte(`{"id":"evt_test_1"}`)
	signature := "t=1,v1=abc"

	t.Run("Success - Completed session records payment and runs side effects", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		event := checkoutEvent(t, "checkout.session.completed", completedSession())

		expectedPayment := &models.Payment{
			ID:            "cs_test_1",
			Amount:        145100,
			Currency:      "pkr",
			Description:   "Cloud Kitchen order (2 items)",
			CartKey:       cartKey,
			UserID:        payerID.String(),
			CustomerEmail: "diner@example.com",
			Status:        models.PaymentStatusPaid,
		}

		deps.stripe.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()
		deps.repo.On("UpsertPayment", ctx, expectedPayment).Return(true, nil).Once()
		deps.carts.On("Discard", ctx, cartKey).Return(nil).Once()
		deps.publisher.On("Publish", ctx, checkoutTopic, "cs_test_1", models.CheckoutCompletedEvent{
			Type:        "checkout.completed",
			SessionID:   "cs_test_1",
			UserID:      payerID.String(),
			Amount:      145100,
			Currency:    "pkr",
			Description: "Cloud Kitchen order (2 items)",
		}).Return(nil).Once()
		deps.mailer.On("Send", ctx, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			return req.To == "diner@example.com" && req.Subject == "Your Cloud Kitchen order is confirmed"
		})).Return(nil).Once()

		// Act
		got, err := svc.HandleWebhook(ctx, payload, signature)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "evt_test_1", got.ID)
	})

	t.Run("Success - Side effect failures do not fail the webhook", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		event := checkoutEvent(t, "checkout.session.completed", completedSession())

		deps.stripe.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()
		deps.repo.On("UpsertPayment", ctx, mock.Anything).Return(true, nil).Once()
		deps.carts.On("Discard", ctx, cartKey).Return(errors.New("redis: connection pool timeout")).Once()
		deps.publisher.On("Publish", ctx, checkoutTopic, "cs_test_1", mock.Anything).Return(errors.New("broker down")).Once()
		deps.mailer.On("Send", ctx, mock.Anything).Return(errors.New("sendgrid 401")).Once()

		// Act
		_, err := svc.HandleWebhook(ctx, payload, signature)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Success - Redelivered completion runs side effects once", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		event := checkoutEvent(t, "checkout.session.completed", completedSession())

		deps.stripe.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Twice()
		deps.repo.On("UpsertPayment", ctx, mock.Anything).Return(true, nil).Once()
		deps.repo.On("UpsertPayment", ctx, mock.Anything).Return(false, nil).Once()
		deps.carts.On("Discard", ctx, cartKey).Return(nil).Once()
		deps.publisher.On("Publish", ctx, checkoutTopic, "cs_test_1", mock.Anything).Return(nil).Once()
		deps.mailer.On("Send", ctx, mock.Anything).Return(nil).Once()

		// Act
		_, firstErr := svc.HandleWebhook(ctx, payload, signature)
		_, secondErr := svc.HandleWebhook(ctx, payload, signature)

		// Assert
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		deps.carts.AssertNumberOfCalls(t, "Discard", 1)
		deps.publisher.AssertNumberOfCalls(t, "Publish", 1)
		deps.mailer.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Success - Expired session recorded without side effects", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		event := checkoutEvent(t, "checkout.session.expired", map[string]any{
			"id":           "cs_test_2",
			"amount_total": 50000,
			"currency":     "pkr",
			"metadata":     map[string]string{"planName": "Gold", "price": "500"},
		})

		deps.stripe.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()
		deps.repo.On("UpsertPayment", ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.ID == "cs_test_2" && p.Status == models.PaymentStatusExpired && p.Description == "Gold"
		})).Return(true, nil).Once()

		// Act
		_, err := svc.HandleWebhook(ctx, payload, signature)

		// Assert
		require.NoError(t, err)
		deps.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		deps.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Success - Unhandled event type is acknowledged", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		event := stripeapi.Event{ID: "evt_test_3", Type: "invoice.paid"}
		deps.stripe.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()

		// Act
		got, err := svc.HandleWebhook(ctx, payload, signature)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "evt_test_3", got.ID)
		deps.repo.AssertNotCalled(t, "UpsertPayment", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Invalid signature", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		sigErr := errors.New("webhook has invalid signature")
		deps.stripe.On("VerifyWebhookSignature", payload, "bad").Return(stripeapi.Event{}, sigErr).Once()

		// Act
		_, err := svc.HandleWebhook(ctx, payload, "bad")

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.ErrorIs(t, err, sigErr)
	})

	t.Run("Failure - Session without id", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		event := checkoutEvent(t, "checkout.session.completed", map[string]any{"amount_total": 100})
		deps.stripe.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()

		// Act
		_, err := svc.HandleWebhook(ctx, payload, signature)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Payment not recorded", func(t *testing.T) {
		// Arrange
		svc, deps := setupPaymentService(t)
		event := checkoutEvent(t, "checkout.session.completed", completedSession())
		dbErr := errors.New("duplicate key")

		deps.stripe.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()
		deps.repo.On("UpsertPayment", ctx, mock.Anything).Return(false, dbErr).Once()

		// Act
		_, err := svc.HandleWebhook(ctx, payload, signature)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbErr)
		deps.carts.AssertNotCalled(t, "Discard", mock.Anything, mock.Anything)
	})
}
