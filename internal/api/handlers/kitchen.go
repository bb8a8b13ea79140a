package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/middleware"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	service "github.com/aaravmahajanofficial/cloud-kitchen/internal/services"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/utils/response"
)

type KitchenHandler struct {
	kitchenService service.KitchenService
	menuService    service.MenuService
}

func NewKitchenHandler(kitchenService service.KitchenService, menuService service.MenuService) *KitchenHandler {
	return &KitchenHandler{kitchenService: kitchenService, menuService: menuService}
}

// ListMenu godoc
//
//	@Summary		List the menu of a kitchen
//	@Description	Returns the raw array of menu items the kitchen has published. An unpublished menu is an empty array.
//	@Tags			Kitchens
//	@Produce		json
//	@Param			id	path		string	true	"Kitchen id"
//	@Success		200	{array}		models.MenuItem
//	@Failure		400	{object}	models.CheckoutErrorResponse	"Missing kitchen id"
//	@Failure		500	{object}	models.CheckoutErrorResponse	"Storage failure"
//	@Router			/api/kitchen/{id} [get]
func (h *KitchenHandler) ListMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		kitchenID := r.PathValue("id")

		items, err := h.kitchenService.ListMenu(r.Context(), kitchenID)
		if err != nil {
			logger.Error("Failed to list menu", slog.String("kitchenId", kitchenID), slog.String("error", err.Error()))

			status, message := http.StatusInternalServerError, internalServerError
			if appErr, ok := errors.IsAppError(err); ok && appErr.StatusCode < http.StatusInternalServerError {
				status, message = appErr.StatusCode, appErr.Message
			}

			response.WriteJson(w, status, models.CheckoutErrorResponse{Error: message})
			return
		}

		response.WriteJson(w, http.StatusOK, items)
	}
}

// BrowseMenu godoc
//
//	@Summary		Load a kitchen menu into the browsing session
//	@Description	Fetches the menu and reports it as ready, not_ready (nothing published) or failed (retryable).
//	@Tags			Menu
//	@Produce		json
//	@Param			id				path		string	true	"Kitchen id"
//	@Param			X-Cart-Session	header		string	false	"Guest browsing session"
//	@Success		200				{object}	models.MenuState
//	@Failure		400				{object}	response.ErrorResponse	"Missing kitchen id or session"
//	@Router			/api/v1/kitchens/{id}/menu [get]
func (h *KitchenHandler) BrowseMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionKey, logger, ok := sessionLogger(w, r)
		if !ok {
			return
		}

		kitchenID := r.PathValue("id")

		state, err := h.menuService.Browse(r.Context(), sessionKey, kitchenID)
		if err != nil {
			logger.Warn("Failed to browse menu", slog.String("kitchenId", kitchenID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

// CurrentMenu godoc
//
//	@Summary		Get the menu the browsing session is showing
//	@Tags			Menu
//	@Produce		json
//	@Param			X-Cart-Session	header		string	false	"Guest browsing session"
//	@Success		200				{object}	models.MenuState
//	@Router			/api/v1/menu/current [get]
func (h *KitchenHandler) CurrentMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionKey, _, ok := sessionLogger(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.menuService.Current(sessionKey))
	}
}
