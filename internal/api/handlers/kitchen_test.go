package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/services/mocks"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupKitchenTest(t *testing.T) (*mocks.MockKitchenService, *mocks.MockMenuService, *handlers.KitchenHandler) {
	mockKitchenService := mocks.NewMockKitchenService(t)
	mockMenuService := mocks.NewMockMenuService(t)

	return mockKitchenService, mockMenuService, handlers.NewKitchenHandler(mockKitchenService, mockMenuService)
}

func TestListMenu(t *testing.T) {
	t.Run("Success - Raw Array", func(t *testing.T) {
		// Arrange
		mockKitchenService, _, kitchenHandler := setupKitchenTest(t)

		items := []models.MenuItem{
			{ID: "m1", Name: "Paneer Tikka", Price: 250, Category: "Starters", Ingredients: "paneer, spices"},
		}
		mockKitchenService.On("ListMenu", mock.Anything, "k1").Return(items, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/kitchen/k1", nil, map[string]string{"id": "k1"})
		rr := httptest.NewRecorder()

		// Act
		kitchenHandler.ListMenu().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"_id":"m1","name":"Paneer Tikka","price":250,"image":"","category":"Starters","rating":0,"description":"","ingredients":"paneer, spices"}]`, rr.Body.String())
	})

	t.Run("Success - Unpublished Menu Is Empty Array", func(t *testing.T) {
		// Arrange
		mockKitchenService, _, kitchenHandler := setupKitchenTest(t)

		mockKitchenService.On("ListMenu", mock.Anything, "k2").Return([]models.MenuItem{}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/kitchen/k2", nil, map[string]string{"id": "k2"})
		rr := httptest.NewRecorder()

		// Act
		kitchenHandler.ListMenu().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Failure - Storage Error", func(t *testing.T) {
		// Arrange
		mockKitchenService, _, kitchenHandler := setupKitchenTest(t)

		mockKitchenService.On("ListMenu", mock.Anything, "k1").Return(nil, appErrors.DatabaseError("Failed to fetch menu").WithError(errors.New("conn refused"))).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/kitchen/k1", nil, map[string]string{"id": "k1"})
		rr := httptest.NewRecorder()

		// Act
		kitchenHandler.ListMenu().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
	})

	t.Run("Failure - Missing Kitchen Id", func(t *testing.T) {
		// Arrange
		mockKitchenService, _, kitchenHandler := setupKitchenTest(t)

		mockKitchenService.On("ListMenu", mock.Anything, "").Return(nil, appErrors.BadRequestError("Kitchen id is required")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/kitchen/", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		kitchenHandler.ListMenu().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Kitchen id is required"}`, rr.Body.String())
	})
}

func TestBrowseMenu(t *testing.T) {
	t.Run("Success - Ready", func(t *testing.T) {
		// Arrange
		_, mockMenuService, kitchenHandler := setupKitchenTest(t)

		state := models.MenuState{
			KitchenID:  "k1",
			Status:     models.MenuStatusReady,
			Items:      []models.MenuItem{{ID: "m1", Name: "Dal"}},
			Generation: 1,
		}
		mockMenuService.On("Browse", mock.Anything, "guest:"+guestSession, "k1").Return(state, nil).Once()

		req := testutils.CreateGuestRequest(http.MethodGet, "/api/v1/kitchens/k1/menu", nil, guestSession, map[string]string{"id": "k1"})
		rr := httptest.NewRecorder()

		// Act
		kitchenHandler.BrowseMenu().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.MenuState
		decodeData(t, rr, &got)
		assert.Equal(t, models.MenuStatusReady, got.Status)
		assert.Len(t, got.Items, 1)
	})

	t.Run("Success - Failed Fetch Is Reported As State", func(t *testing.T) {
		// Arrange
		_, mockMenuService, kitchenHandler := setupKitchenTest(t)

		state := models.MenuState{KitchenID: "k1", Status: models.MenuStatusFailed, Items: []models.MenuItem{}, Message: "Menu unavailable", Retryable: true}
		mockMenuService.On("Browse", mock.Anything, "guest:"+guestSession, "k1").Return(state, nil).Once()

		req := testutils.CreateGuestRequest(http.MethodGet, "/api/v1/kitchens/k1/menu", nil, guestSession, map[string]string{"id": "k1"})
		rr := httptest.NewRecorder()

		// Act
		kitchenHandler.BrowseMenu().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.MenuState
		decodeData(t, rr, &got)
		assert.Equal(t, models.MenuStatusFailed, got.Status)
		assert.True(t, got.Retryable)
	})

	t.Run("Failure - Blank Kitchen Id", func(t *testing.T) {
		// Arrange
		_, mockMenuService, kitchenHandler := setupKitchenTest(t)

		mockMenuService.On("Browse", mock.Anything, "guest:"+guestSession, "").
			Return(models.MenuState{}, appErrors.BadRequestError("Kitchen id is required")).Once()

		req := testutils.CreateGuestRequest(http.MethodGet, "/api/v1/kitchens//menu", nil, guestSession, nil)
		rr := httptest.NewRecorder()

		// Act
		kitchenHandler.BrowseMenu().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Kitchen id is required", decodeError(t, rr).Message)
	})
}

func TestCurrentMenu(t *testing.T) {
	t.Run("Success - Idle Session", func(t *testing.T) {
		// Arrange
		_, mockMenuService, kitchenHandler := setupKitchenTest(t)

		mockMenuService.On("Current", "guest:"+guestSession).Return(models.MenuState{Status: models.MenuStatusIdle, Items: []models.MenuItem{}}).Once()

		req := testutils.CreateGuestRequest(http.MethodGet, "/api/v1/menu/current", nil, guestSession, nil)
		rr := httptest.NewRecorder()

		// Act
		kitchenHandler.CurrentMenu().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.MenuState
		decodeData(t, rr, &got)
		assert.Equal(t, models.MenuStatusIdle, got.Status)
	})

	t.Run("Failure - Missing Session", func(t *testing.T) {
		// Arrange
		_, mockMenuService, kitchenHandler := setupKitchenTest(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/menu/current", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		kitchenHandler.CurrentMenu().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockMenuService.AssertNotCalled(t, "Current", mock.Anything)
	})
}
