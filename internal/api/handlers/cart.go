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
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// sessionLogger resolves the cart session and scopes the logger to it.
func sessionLogger(w http.ResponseWriter, r *http.Request) (string, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	sessionKey, err := middleware.CartSessionKey(r)
	if err != nil {
		logger.Warn("Missing cart session")
		response.Error(w, err)
		return "", logger, false
	}

	return sessionKey, logger, true
}

// GetCart godoc
//
//	@Summary		Get the current cart
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Cart-Session	header		string					false	"Guest cart session"
//	@Success		200				{object}	models.Cart				"Items in insertion order with totals"
//	@Failure		400				{object}	response.ErrorResponse	"Missing cart session"
//	@Failure		500				{object}	response.ErrorResponse	"Storage failure"
//	@Router			/api/v1/carts [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionKey, logger, ok := sessionLogger(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sessionKey)
		if err != nil {
			logger.Error("Failed to get cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//
//	@Summary		Add a menu item to the cart
//	@Description	Adds the item with quantity 1 or increments it. Items from a different kitchen are rejected.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Cart-Session	header		string					false	"Guest cart session"
//	@Param			item			body		models.AddItemRequest	true	"Menu item record"
//	@Success		200				{object}	models.Cart
//	@Failure		400				{object}	response.ErrorResponse	"Invalid item"
//	@Failure		409				{object}	response.ErrorResponse	"Cart holds another kitchen"
//	@Router			/api/v1/carts/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionKey, logger, ok := sessionLogger(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), sessionKey, &req)
		if err != nil {
			logger.Warn("Failed to add item", slog.String("itemId", req.ID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("itemId", req.ID), slog.Int("totalItems", cart.TotalItems))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//
//	@Summary		Set the quantity of a cart item
//	@Description	A quantity of zero or less removes the item.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Cart-Session	header		string							false	"Guest cart session"
//	@Param			id				path		string							true	"Menu item id"
//	@Param			quantity		body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200				{object}	models.Cart
//	@Failure		404				{object}	response.ErrorResponse	"Item not in cart"
//	@Router			/api/v1/carts/items/{id} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionKey, logger, ok := sessionLogger(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("id")
		if itemID == "" {
			response.Error(w, errors.BadRequestError("Item ID is required"))
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity input", slog.String("itemId", itemID))
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), sessionKey, itemID, *req.Quantity)
		if err != nil {
			logger.Warn("Failed to update quantity", slog.String("itemId", itemID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//
//	@Summary		Remove an item from the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Cart-Session	header		string	false	"Guest cart session"
//	@Param			id				path		string	true	"Menu item id"
//	@Success		200				{object}	models.Cart
//	@Router			/api/v1/carts/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionKey, logger, ok := sessionLogger(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("id")
		if itemID == "" {
			response.Error(w, errors.BadRequestError("Item ID is required"))
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), sessionKey, itemID)
		if err != nil {
			logger.Error("Failed to remove item", slog.String("itemId", itemID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Cart-Session	header		string	false	"Guest cart session"
//	@Success		200				{object}	models.Cart
//	@Router			/api/v1/carts [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionKey, logger, ok := sessionLogger(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), sessionKey)
		if err != nil {
			logger.Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, cart)
	}
}
