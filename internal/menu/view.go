// Package menu tracks the menu a browsing session is currently looking at.
package menu

import (
	"context"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
)

type Fetcher interface {
	FetchMenu(ctx context.Context, kitchenID string) ([]models.MenuItem, error)
}

// View holds the displayed menu state. Every Load takes a new generation; a fetch
// result is only applied while its generation is still the latest one, so a slow
// response for a previous kitchen never replaces a newer one.
type View struct {
	fetcher Fetcher
	now     func() time.Time

	mu         sync.Mutex
	generation uint64
	state      models.MenuState
	lastUsed   time.Time
}

func NewView(fetcher Fetcher) *View {
	return newView(fetcher, time.Now)
}

func newView(fetcher Fetcher, now func() time.Time) *View {
	return &View{
		fetcher:  fetcher,
		now:      now,
		state:    models.MenuState{Status: models.MenuStatusIdle, Items: []models.MenuItem{}},
		lastUsed: now(),
	}
}

// Load fetches the menu for kitchenID and returns the state the view displays
// once the fetch settles.
func (v *View) Load(ctx context.Context, kitchenID string) models.MenuState {

	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.state = models.MenuState{
		KitchenID:  kitchenID,
		Status:     models.MenuStatusLoading,
		Items:      []models.MenuItem{},
		Generation: gen,
	}
	v.lastUsed = v.now()
	v.mu.Unlock()

	items, err := v.fetcher.FetchMenu(ctx, kitchenID)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		return v.state
	}

	v.state = settle(kitchenID, gen, items, err)

	return v.state
}

func (v *View) State() models.MenuState {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.lastUsed = v.now()

	return v.state
}

// IdleSince reports when the view was last loaded or read.
func (v *View) IdleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.lastUsed
}

func settle(kitchenID string, gen uint64, items []models.MenuItem, err error) models.MenuState {

	state := models.MenuState{KitchenID: kitchenID, Items: []models.MenuItem{}, Generation: gen}

	switch {
	case err != nil:
		state.Status = models.MenuStatusFailed
		state.Message = "Failed to fetch kitchen details."
		state.Retryable = true

		if appErr, ok := errors.IsAppError(err); ok {
			state.Message = appErr.Message
			state.Retryable = appErr.Retryable()
		}

	case len(items) == 0:
		state.Status = models.MenuStatusNotReady
		state.Message = "Our chef is preparing the menu..."

	default:
		state.Status = models.MenuStatusReady
		state.Items = items
	}

	return state
}
