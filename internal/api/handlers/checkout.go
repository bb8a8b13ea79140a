package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/middleware"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	service "github.com/aaravmahajanofficial/cloud-kitchen/internal/services"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/utils"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/utils/response"
)

const internalServerError = "Internal Server Error"

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreateCheckoutSession godoc
//
//	@Summary		Start a hosted checkout for a plan
//	@Description	Creates a single line item gateway checkout session. The client redirects with the returned id.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			plan	body		models.CheckoutRequest			true	"Plan name and price in major units"
//	@Success		200		{object}	models.CheckoutSessionResponse	"Gateway session id"
//	@Failure		400		{object}	models.CheckoutErrorResponse	"Missing plan name or price"
//	@Failure		429		{object}	response.ErrorResponse			"Too many attempts"
//	@Failure		500		{object}	models.CheckoutErrorResponse	"Gateway failure"
//	@Router			/create-checkout-session [post]
func (h *CheckoutHandler) CreateCheckoutSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid checkout request", slog.String("error", err.Error()))
			response.WriteJson(w, http.StatusBadRequest, models.CheckoutErrorResponse{Error: "Missing plan name or price"})
			return
		}

		session, err := h.checkoutService.CreateCheckoutSession(r.Context(), &req)
		if err != nil {
			writeCheckoutError(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, session)
	}
}

// CheckoutCart godoc
//
//	@Summary		Check out the current cart
//	@Description	Charges the cart total through a hosted checkout session.
//	@Tags			Checkout
//	@Produce		json
//	@Param			X-Cart-Session	header		string							false	"Guest cart session"
//	@Success		200				{object}	models.CheckoutSessionResponse	"Gateway session id"
//	@Failure		400				{object}	response.ErrorResponse			"Empty cart or missing session"
//	@Failure		429				{object}	response.ErrorResponse			"Too many attempts"
//	@Failure		500				{object}	response.ErrorResponse			"Gateway failure"
//	@Router			/api/v1/carts/checkout [post]
func (h *CheckoutHandler) CheckoutCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionKey, err := middleware.CartSessionKey(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var email string
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			email = claims.Email
		}

		session, err := h.checkoutService.CheckoutCart(r.Context(), sessionKey, email)
		if err != nil {
			logger.Error("Cart checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart checkout started", slog.String("sessionId", session.ID))
		response.Success(w, http.StatusOK, session)
	}
}

// writeCheckoutError keeps the bare {error} shape of the plan checkout route.
// Only validation messages reach the caller.
func writeCheckoutError(w http.ResponseWriter, err error) {

	if appErr, ok := errors.IsAppError(err); ok && appErr.StatusCode < http.StatusInternalServerError {
		response.WriteJson(w, appErr.StatusCode, models.CheckoutErrorResponse{Error: appErr.Message})
		return
	}

	response.WriteJson(w, http.StatusInternalServerError, models.CheckoutErrorResponse{Error: internalServerError})
}
