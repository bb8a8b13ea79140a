package menu

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchResult struct {
	items []models.MenuItem
	err   error
}

// gatedFetcher blocks each kitchen's fetch until the test releases it.
type gatedFetcher struct {
	started chan string
	release map[string]chan fetchResult
}

func newGatedFetcher(kitchenIDs ...string) *gatedFetcher {
	f := &gatedFetcher{started: make(chan string, len(kitchenIDs)), release: make(map[string]chan fetchResult)}
	for _, id := range kitchenIDs {
		f.release[id] = make(chan fetchResult, 1)
	}

	return f
}

func (f *gatedFetcher) FetchMenu(ctx context.Context, kitchenID string) ([]models.MenuItem, error) {
	f.started <- kitchenID

	select {
	case res := <-f.release[kitchenID]:
		return res.items, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type staticFetcher struct {
	items []models.MenuItem
	err   error
	calls int
}

func (f *staticFetcher) FetchMenu(context.Context, string) ([]models.MenuItem, error) {
	f.calls++
	return f.items, f.err
}

func TestViewLoad(t *testing.T) {
	t.Run("Success - Ready menu", func(t *testing.T) {
		// Arrange
		fetcher := &staticFetcher{items: []models.MenuItem{{ID: "m1", Name: "Nihari"}}}
		view := NewView(fetcher)

		// Act
		state := view.Load(t.Context(), "k1")

		// Assert
		assert.Equal(t, models.MenuStatusReady, state.Status)
		assert.Equal(t, "k1", state.KitchenID)
		require.Len(t, state.Items, 1)
		assert.Equal(t, state, view.State())
	})

	t.Run("Success - Empty menu is not ready, not failed", func(t *testing.T) {
		// Arrange
		view := NewView(&staticFetcher{items: []models.MenuItem{}})

		// Act
		state := view.Load(t.Context(), "k1")

		// Assert
		assert.Equal(t, models.MenuStatusNotReady, state.Status)
		assert.Equal(t, "Our chef is preparing the menu...", state.Message)
		assert.NotNil(t, state.Items)
		assert.Empty(t, state.Items)
		assert.False(t, state.Retryable)
	})

	t.Run("Failure - Fetch error is retryable", func(t *testing.T) {
		// Arrange
		view := NewView(&staticFetcher{err: appErrors.FetchError("Failed to fetch kitchen details.")})

		// Act
		state := view.Load(t.Context(), "k1")

		// Assert
		assert.Equal(t, models.MenuStatusFailed, state.Status)
		assert.Equal(t, "Failed to fetch kitchen details.", state.Message)
		assert.True(t, state.Retryable)
		assert.Empty(t, state.Items)
	})

	t.Run("Failure - Unclassified error", func(t *testing.T) {
		// Arrange
		view := NewView(&staticFetcher{err: errors.New("dial tcp: refused")})

		// Act
		state := view.Load(t.Context(), "k1")

		// Assert
		assert.Equal(t, models.MenuStatusFailed, state.Status)
		assert.Equal(t, "Failed to fetch kitchen details.", state.Message)
	})

	t.Run("Success - Generation increases per load", func(t *testing.T) {
		// Arrange
		view := NewView(&staticFetcher{items: []models.MenuItem{{ID: "m1"}}})

		// Act
		first := view.Load(t.Context(), "k1")
		second := view.Load(t.Context(), "k2")

		// Assert
		assert.Less(t, first.Generation, second.Generation)
		assert.Equal(t, "k2", view.State().KitchenID)
	})
}

func TestViewStaleResponse(t *testing.T) {
	// Arrange
	fetcher := newGatedFetcher("old", "new")
	view := NewView(fetcher)

	staleDone := make(chan models.MenuState, 1)
	go func() {
		staleDone <- view.Load(context.Background(), "old")
	}()

	require.Equal(t, "old", <-fetcher.started)

	// Act
	fetcher.release["new"] <- fetchResult{items: []models.MenuItem{{ID: "fresh", Name: "Haleem"}}}
	fresh := view.Load(t.Context(), "new")
	require.Equal(t, "new", <-fetcher.started)

	fetcher.release["old"] <- fetchResult{items: []models.MenuItem{{ID: "stale", Name: "Old dish"}}}

	var stale models.MenuState
	select {
	case stale = <-staleDone:
	case <-time.After(2 * time.Second):
		t.Fatal("stale load did not return")
	}

	// Assert
	assert.Equal(t, models.MenuStatusReady, fresh.Status)
	assert.Equal(t, "new", view.State().KitchenID)
	require.Len(t, view.State().Items, 1)
	assert.Equal(t, "fresh", view.State().Items[0].ID)
	assert.Equal(t, "new", stale.KitchenID, "superseded load reports the current state")
}

func TestViewIdleSince(t *testing.T) {
	// Arrange
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	view := newView(&staticFetcher{}, clock)

	// Act
	now = now.Add(time.Minute)
	view.Load(t.Context(), "k1")

	// Assert
	assert.Equal(t, now, view.IdleSince())
}
