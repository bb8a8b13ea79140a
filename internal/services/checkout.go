package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/middleware"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/config"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/metrics"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	repository "github.com/aaravmahajanofficial/cloud-kitchen/internal/repositories"
	"github.com/aaravmahajanofficial/cloud-kitchen/pkg/stripe"
)

const (
	metadataPlanName    = "planName"
	metadataPrice       = "price"
	metadataCartKey     = "cartKey"
	metadataUserID      = "userId"
	metadataKitchenID   = "kitchenId"

	userSessionPrefix = "user:"
)

type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutSessionResponse, error)
	CheckoutCart(ctx context.Context, sessionKey string, customerEmail string) (*models.CheckoutSessionResponse, error)
}

type checkoutService struct {
	stripeClient stripe.Client
	carts        CartService
	cfg          *config.Stripe
}

func NewCheckoutService(stripeClient stripe.Client, carts CartService, cfg *config.Stripe) CheckoutService {
	return &checkoutService{stripeClient: stripeClient, carts: carts, cfg: cfg}
}

// CreateCheckoutSession implements CheckoutService.
func (s *checkoutService) CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutSessionResponse, error) {
	return s.createSession(ctx, req.PlanName, req.Price, "", nil)
}

// CheckoutCart implements CheckoutService. The whole cart is charged as one line item.
func (s *checkoutService) CheckoutCart(ctx context.Context, sessionKey string, customerEmail string) (*models.CheckoutSessionResponse, error) {

	cart, err := s.carts.GetCart(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if cart.TotalItems == 0 {
		return nil, errors.ValidationError("Cart is empty")
	}

	planName := fmt.Sprintf("Cloud Kitchen order (%d items)", cart.TotalItems)
	// the raw session key is a guest's cart credential and never leaves the server
	metadata := map[string]string{
		metadataCartKey:   repository.CartStorageKey(sessionKey),
		metadataKitchenID: cart.KitchenID,
	}
	if userID, ok := strings.CutPrefix(sessionKey, userSessionPrefix); ok {
		metadata[metadataUserID] = userID
	}

	return s.createSession(ctx, planName, cart.TotalPrice, customerEmail, metadata)
}

func (s *checkoutService) createSession(ctx context.Context, planName string, price float64, customerEmail string, extra map[string]string) (*models.CheckoutSessionResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	if strings.TrimSpace(planName) == "" || !(price > 0) || math.IsInf(price, 0) {
		metrics.RecordCheckout(metrics.CheckoutRejected)
		return nil, errors.ValidationError("Missing plan name or price")
	}

	amount := int64(math.Round(price * 100))
	if amount < 1 {
		metrics.RecordCheckout(metrics.CheckoutRejected)
		return nil, errors.ValidationError("Missing plan name or price")
	}

	formattedPrice := strconv.FormatFloat(price, 'f', -1, 64)

	metadata := map[string]string{
		metadataPlanName: planName,
		metadataPrice:    formattedPrice,
	}
	for key, value := range extra {
		metadata[key] = value
	}

	clientURL := strings.TrimRight(s.cfg.ClientURL, "/")

	session, err := s.stripeClient.CreateCheckoutSession(ctx, &stripe.CheckoutSessionRequest{
		Name:               planName,
		Description:        s.cfg.ProductDescription,
		Image:              s.cfg.ProductImage,
		Amount:             amount,
		Currency:           s.cfg.Currency,
		PaymentMethodTypes: s.cfg.PaymentMethodTypes,
		SuccessURL:         clientURL + "/success",
		CancelURL:          clientURL + "/cancel",
		CustomerEmail:      customerEmail,
		Metadata:           metadata,
	})
	if err != nil {
		logger.Error("Error creating checkout session",
			slog.String("planName", planName),
			slog.String("price", formattedPrice),
			slog.String("error", err.Error()))

		metrics.RecordCheckout(metrics.CheckoutFailed)
		return nil, errors.GatewayError("Internal Server Error").WithError(err)
	}

	metrics.RecordCheckout(metrics.CheckoutCreated)
	logger.Info("Checkout session created",
		slog.String("sessionId", session.ID),
		slog.Int64("amount", amount))

	return &models.CheckoutSessionResponse{ID: session.ID}, nil
}
