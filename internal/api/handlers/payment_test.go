package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	repoMocks "github.com/aaravmahajanofficial/cloud-kitchen/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/cloud-kitchen/internal/services"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/services/mocks"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/testutils"
	stripeMocks "github.com/aaravmahajanofficial/cloud-kitchen/pkg/stripe/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

func TestGetPayment(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Payment Found", func(t *testing.T) {
		// Arrange
		mockPaymentService := mocks.NewMockPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(mockPaymentService)

		payment := &models.Payment{
			ID:        "cs_test_1",
			Amount:    50000,
			Currency:  "usd",
			CartKey:   "cart:0f",
			UserID:    userID.String(),
			Status:    models.PaymentStatusPaid,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		mockPaymentService.On("GetPayment", mock.Anything, "cs_test_1", userID).Return(payment, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/payments/cs_test_1", nil, userID, map[string]string{"id": "cs_test_1"})
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.GetPayment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Payment
		decodeData(t, rr, &got)
		assert.Equal(t, int64(50000), got.Amount)
		assert.Equal(t, models.PaymentStatusPaid, got.Status)
		assert.NotContains(t, rr.Body.String(), "cart:0f")
		assert.NotContains(t, rr.Body.String(), userID.String())
	})

	t.Run("Failure - Unauthenticated", func(t *testing.T) {
		// Arrange
		mockPaymentService := mocks.NewMockPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(mockPaymentService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/payments/cs_test_1", nil, map[string]string{"id": "cs_test_1"})
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.GetPayment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockPaymentService.AssertNotCalled(t, "GetPayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockPaymentService := mocks.NewMockPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(mockPaymentService)

		mockPaymentService.On("GetPayment", mock.Anything, "cs_missing", userID).Return(nil, appErrors.NotFoundError("Payment not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/payments/cs_missing", nil, userID, map[string]string{"id": "cs_missing"})
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.GetPayment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, appErrors.ErrCodeNotFound, decodeError(t, rr).Code)
	})

	t.Run("Failure - Another user's payment", func(t *testing.T) {
		// Arrange
		mockRepo := repoMocks.NewMockPaymentRepository(t)
		paymentService := service.NewPaymentService(mockRepo, stripeMocks.NewMockClient(t), repoMocks.NewMockCartRepository(t), nil, nil, "checkout.completed")
		paymentHandler := handlers.NewPaymentHandler(paymentService)

		mockRepo.On("GetPaymentByID", mock.Anything, "cs_victim").Return(&models.Payment{
			ID:            "cs_victim",
			Amount:        50000,
			Currency:      "pkr",
			CartKey:       "cart:0f",
			UserID:        uuid.NewString(),
			CustomerEmail: "victim@example.com",
			Status:        models.PaymentStatusPaid,
		}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/payments/cs_victim", nil, userID, map[string]string{"id": "cs_victim"})
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.GetPayment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, appErrors.ErrCodeNotFound, decodeError(t, rr).Code)
		assert.NotContains(t, rr.Body.String(), "victim@example.com")
	})
}

func TestHandleStripeWebhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	t.Run("Success - Event Processed", func(t *testing.T) {
		// Arrange
		mockPaymentService := mocks.NewMockPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(mockPaymentService)

		event := stripe.Event{ID: "evt_1", Type: "checkout.session.completed"}
		mockPaymentService.On("HandleWebhook", mock.Anything, payload, "t=1,v1=abc").Return(event, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload), nil)
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.HandleStripeWebhook().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var ack map[string]bool
		decodeData(t, rr, &ack)
		assert.True(t, ack["received"])
	})

	t.Run("Failure - Missing Signature", func(t *testing.T) {
		// Arrange
		mockPaymentService := mocks.NewMockPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(mockPaymentService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload), nil)
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.HandleStripeWebhook().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Stripe Signature is required", decodeError(t, rr).Message)
		mockPaymentService.AssertNotCalled(t, "HandleWebhook", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Invalid Signature", func(t *testing.T) {
		// Arrange
		mockPaymentService := mocks.NewMockPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(mockPaymentService)

		mockPaymentService.On("HandleWebhook", mock.Anything, payload, "bad").
			Return(stripe.Event{}, appErrors.BadRequestError("Webhook signature verification failed")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload), nil)
		req.Header.Set("Stripe-Signature", "bad")
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.HandleStripeWebhook().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Webhook signature verification failed", decodeError(t, rr).Message)
	})
}
