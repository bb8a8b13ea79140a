package service

import (
	"context"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedFetcher []models.MenuItem

func (f fixedFetcher) FetchMenu(_ context.Context, _ string) ([]models.MenuItem, error) {
	return f, nil
}

func TestMenuServiceEvictsIdleViews(t *testing.T) {
	// Arrange
	svc := NewMenuService(fixedFetcher{{ID: "m1"}}, time.Minute).(*menuService)

	_, err := svc.Browse(t.Context(), "guest:old", "k1")
	require.NoError(t, err)
	require.Len(t, svc.views, 1)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	// Act
	_, err = svc.Browse(t.Context(), "guest:new", "k2")

	// Assert
	require.NoError(t, err)
	assert.Len(t, svc.views, 1)
	assert.Contains(t, svc.views, "guest:new")
	assert.Equal(t, models.MenuStatusIdle, svc.Current("guest:old").Status)
}
