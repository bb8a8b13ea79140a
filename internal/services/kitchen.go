package service

import (
	"context"
	"strings"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	repository "github.com/aaravmahajanofficial/cloud-kitchen/internal/repositories"
)

// KitchenService serves the menus stored for each kitchen.
type KitchenService interface {
	ListMenu(ctx context.Context, kitchenID string) ([]models.MenuItem, error)
}

type kitchenService struct {
	repo repository.KitchenRepository
}

func NewKitchenService(repo repository.KitchenRepository) KitchenService {
	return &kitchenService{repo: repo}
}

// ListMenu implements KitchenService.
func (s *kitchenService) ListMenu(ctx context.Context, kitchenID string) ([]models.MenuItem, error) {

	kitchenID = strings.TrimSpace(kitchenID)
	if kitchenID == "" {
		return nil, errors.BadRequestError("Kitchen id is required")
	}

	items, err := s.repo.ListMenuItems(ctx, kitchenID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch menu").WithError(err)
	}

	if items == nil {
		items = []models.MenuItem{}
	}

	return items, nil
}
