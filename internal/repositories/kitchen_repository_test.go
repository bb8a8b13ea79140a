package repository_test

import (
	"testing"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	repository "github.com/aaravmahajanofficial/cloud-kitchen/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestListMenuItems(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Success", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewKitchenRepository(mt.DB)
		ns := mt.DB.Name() + ".menus"

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "m1"},
			{Key: "kitchenId", Value: "k1"},
			{Key: "name", Value: "Biryani"},
			{Key: "price", Value: 650.0},
			{Key: "category", Value: "Rice"},
			{Key: "rating", Value: 4.8},
			{Key: "ingredients", Value: "rice, chicken"},
		})
		second := mtest.CreateCursorResponse(1, ns, mtest.NextBatch, bson.D{
			{Key: "_id", Value: "m2"},
			{Key: "kitchenId", Value: "k1"},
			{Key: "name", Value: "Raita"},
			{Key: "price", Value: 120.0},
		})
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, second, end)

		// Act
		items, err := repo.ListMenuItems(t.Context(), "k1")

		// Assert
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, models.MenuItem{
			ID: "m1", KitchenID: "k1", Name: "Biryani", Price: 650, Category: "Rice", Rating: 4.8, Ingredients: "rice, chicken",
		}, items[0])
		assert.Equal(t, "m2", items[1].ID)
	})

	mt.Run("Success - Empty menu", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewKitchenRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".menus", mtest.FirstBatch))

		// Act
		items, err := repo.ListMenuItems(t.Context(), "k-empty")

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	mt.Run("Failure - Command error", func(mt *mtest.T) {
		// Arrange
		repo := repository.NewKitchenRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized",
			Name:    "Unauthorized",
		}))

		// Act
		items, err := repo.ListMenuItems(t.Context(), "k1")

		// Assert
		require.Error(t, err)
		assert.Nil(t, items)
		assert.Contains(t, err.Error(), "failed to query menu items")

		var cmdErr mongo.CommandError
		assert.ErrorAs(t, err, &cmdErr)
	})
}
