package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/middleware"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	service "github.com/aaravmahajanofficial/cloud-kitchen/internal/services"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/utils/response"
)

// maxWebhookBytes matches the gateway's own payload ceiling.
const maxWebhookBytes = 65536

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// GetPayment godoc
//
//	@Summary		Get a recorded checkout payment
//	@Description	Only the signed in user who paid can read a payment. Anyone else gets 404.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string	true	"Checkout session id"
//	@Success		200	{object}	models.Payment
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Payment not found"
//	@Security		BearerAuth
//	@Router			/api/v1/payments/{id} [get]
func (h *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized payment access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Payment ID is required"))
			return
		}

		payment, err := h.paymentService.GetPayment(r.Context(), id, claims.UserID)
		if err != nil {
			logger.Error("Failed to get payment", slog.String("paymentId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}

// HandleStripeWebhook godoc
//
//	@Summary		Gateway webhook
//	@Description	Records completed and expired checkout sessions. The request must carry a valid Stripe-Signature.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	response.APIResponse
//	@Failure		400	{object}	response.ErrorResponse	"Invalid signature or payload"
//	@Router			/api/v1/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body"))
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe Signature is required"))
			return
		}

		event, err := h.paymentService.HandleWebhook(r.Context(), payload, signature)
		if err != nil {
			logger.Error("Failed to process payment webhook",
				slog.String("eventId", event.ID),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Payment webhook processed",
			slog.String("eventId", event.ID),
			slog.String("type", string(event.Type)))
		response.Success(w, http.StatusOK, map[string]bool{"received": true})
	}
}
