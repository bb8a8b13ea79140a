package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	repoMocks "github.com/aaravmahajanofficial/cloud-kitchen/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/cloud-kitchen/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMenu(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := repoMocks.NewMockKitchenRepository(t)
		kitchenService := service.NewKitchenService(mockRepo)
		expected := []models.MenuItem{{ID: "m1", KitchenID: "k1", Name: "Pulao", Price: 500}}
		mockRepo.On("ListMenuItems", ctx, "k1").Return(expected, nil).Once()

		// Act
		items, err := kitchenService.ListMenu(ctx, "k1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, items)
	})

	t.Run("Success - Nil result becomes empty", func(t *testing.T) {
		// Arrange
		mockRepo := repoMocks.NewMockKitchenRepository(t)
		kitchenService := service.NewKitchenService(mockRepo)
		mockRepo.On("ListMenuItems", ctx, "k1").Return(nil, nil).Once()

		// Act
		items, err := kitchenService.ListMenu(ctx, "k1")

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Failure - Blank id", func(t *testing.T) {
		// Arrange
		mockRepo := repoMocks.NewMockKitchenRepository(t)
		kitchenService := service.NewKitchenService(mockRepo)

		// Act
		items, err := kitchenService.ListMenu(ctx, " ")

		// Assert
		require.Error(t, err)
		assert.Nil(t, items)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		mockRepo := repoMocks.NewMockKitchenRepository(t)
		kitchenService := service.NewKitchenService(mockRepo)
		dbErr := errors.New("server selection timeout")
		mockRepo.On("ListMenuItems", ctx, "k1").Return(nil, dbErr).Once()

		// Act
		items, err := kitchenService.ListMenu(ctx, "k1")

		// Assert
		require.Error(t, err)
		assert.Nil(t, items)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbErr)
	})
}
