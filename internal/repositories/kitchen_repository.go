package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const menuCollection = "menus"

type KitchenRepository interface {
	ListMenuItems(ctx context.Context, kitchenID string) ([]models.MenuItem, error)
}

type kitchenRepository struct {
	collection *mongo.Collection
}

func NewKitchenRepository(db *mongo.Database) KitchenRepository {
	return &kitchenRepository{collection: db.Collection(menuCollection)}
}

// ListMenuItems returns the kitchen's dishes by name. A kitchen without dishes
// yields an empty slice.
func (r *kitchenRepository) ListMenuItems(ctx context.Context, kitchenID string) ([]models.MenuItem, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(dbCtx, bson.M{"kitchenId": kitchenID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer cursor.Close(dbCtx)

	items := []models.MenuItem{}
	if err := cursor.All(dbCtx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}
