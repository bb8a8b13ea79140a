package service

import (
	"context"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/cart"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
)

type CartService interface {
	GetCart(ctx context.Context, sessionKey string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionKey string, req *models.AddItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionKey string, itemID string) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, sessionKey string, itemID string, quantity int) (*models.Cart, error)
	ClearCart(ctx context.Context, sessionKey string) (*models.Cart, error)
}

type cartService struct {
	storage cart.Storage
}

func NewCartService(storage cart.Storage) CartService {
	return &cartService{storage: storage}
}

func (s *cartService) open(ctx context.Context, sessionKey string) (*cart.Store, error) {
	store, err := cart.Open(ctx, s.storage, sessionKey)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	return store, nil
}

// GetCart implements CartService.
func (s *cartService) GetCart(ctx context.Context, sessionKey string) (*models.Cart, error) {
	store, err := s.open(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	return store.Snapshot(), nil
}

// AddItem implements CartService.
func (s *cartService) AddItem(ctx context.Context, sessionKey string, req *models.AddItemRequest) (*models.Cart, error) {
	store, err := s.open(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if _, err := store.AddItem(ctx, req.CartItem()); err != nil {
		return nil, mutationError(err)
	}

	return store.Snapshot(), nil
}

// RemoveItem implements CartService.
func (s *cartService) RemoveItem(ctx context.Context, sessionKey string, itemID string) (*models.Cart, error) {
	store, err := s.open(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if _, err := store.RemoveItem(ctx, itemID); err != nil {
		return nil, mutationError(err)
	}

	return store.Snapshot(), nil
}

// UpdateQuantity implements CartService.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionKey string, itemID string, quantity int) (*models.Cart, error) {
	store, err := s.open(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if _, err := store.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return nil, mutationError(err)
	}

	return store.Snapshot(), nil
}

// ClearCart implements CartService.
func (s *cartService) ClearCart(ctx context.Context, sessionKey string) (*models.Cart, error) {
	store, err := s.open(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if err := store.Clear(ctx); err != nil {
		return nil, mutationError(err)
	}

	return store.Snapshot(), nil
}

func mutationError(err error) error {
	if appErr, ok := errors.IsAppError(err); ok {
		return appErr
	}

	return errors.DatabaseError("Failed to update cart").WithError(err)
}
