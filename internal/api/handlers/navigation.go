package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/middleware"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/navigation"
	service "github.com/aaravmahajanofficial/cloud-kitchen/internal/services"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/utils/response"
)

type NavigationHandler struct {
	cartService service.CartService
}

func NewNavigationHandler(cartService service.CartService) *NavigationHandler {
	return &NavigationHandler{cartService: cartService}
}

type requestAuth struct {
	ctx context.Context
}

func (a requestAuth) Session() (*models.Claims, bool) {
	return middleware.SessionFromContext(a.ctx)
}

// Links godoc
//
//	@Summary		Header links for the caller
//	@Description	Role specific dashboard and profile targets, cart badge and sign in links.
//	@Tags			Navigation
//	@Produce		json
//	@Param			X-Cart-Session	header		string	false	"Guest cart session"
//	@Success		200				{object}	navigation.Links
//	@Router			/api/v1/navigation [get]
func (h *NavigationHandler) Links() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		shell := navigation.NewShell(requestAuth{ctx: r.Context()})

		var cartItems int

		if _, authenticated := middleware.SessionFromContext(r.Context()); authenticated {
			if sessionKey, err := middleware.CartSessionKey(r); err == nil {
				cart, err := h.cartService.GetCart(r.Context(), sessionKey)
				if err != nil {
					logger.Warn("Cart badge unavailable", slog.String("error", err.Error()))
				} else {
					cartItems = cart.TotalItems
				}
			}
		}

		response.Success(w, http.StatusOK, shell.Links(cartItems))
	}
}
