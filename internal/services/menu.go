package service

import (
	"context"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/middleware"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/cache"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/menu"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/metrics"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

type MenuService interface {
	Browse(ctx context.Context, sessionKey string, kitchenID string) (models.MenuState, error)
	Current(sessionKey string) models.MenuState
}

type menuService struct {
	fetcher menu.Fetcher
	idleTTL time.Duration
	now     func() time.Time

	mu    sync.Mutex
	views map[string]*menu.View
}

// NewMenuService keeps one menu view per browsing session. Views unused for
// longer than idleTTL are dropped on the next Browse.
func NewMenuService(fetcher menu.Fetcher, idleTTL time.Duration) MenuService {
	return &menuService{
		fetcher: fetcher,
		idleTTL: idleTTL,
		now:     time.Now,
		views:   make(map[string]*menu.View),
	}
}

// Browse implements MenuService. A failed or empty menu is reported through the
// returned state, not as an error.
func (s *menuService) Browse(ctx context.Context, sessionKey string, kitchenID string) (models.MenuState, error) {

	kitchenID = strings.TrimSpace(kitchenID)
	if kitchenID == "" {
		return models.MenuState{}, errors.BadRequestError("Kitchen id is required")
	}

	state := s.view(sessionKey).Load(ctx, kitchenID)
	metrics.RecordMenuLoad(string(state.Status))

	if state.Status == models.MenuStatusFailed {
		middleware.LoggerFromContext(ctx).Warn("Menu fetch failed",
			slog.String("kitchenId", kitchenID),
			slog.String("message", state.Message))
	}

	return state, nil
}

// Current implements MenuService.
func (s *menuService) Current(sessionKey string) models.MenuState {
	s.mu.Lock()
	view, ok := s.views[sessionKey]
	s.mu.Unlock()

	if !ok {
		return models.MenuState{Status: models.MenuStatusIdle, Items: []models.MenuItem{}}
	}

	return view.State()
}

func (s *menuService) view(sessionKey string) *menu.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictIdle()

	view, ok := s.views[sessionKey]
	if !ok {
		view = menu.NewView(s.fetcher)
		s.views[sessionKey] = view
	}

	return view
}

// evictIdle must be called with mu held.
func (s *menuService) evictIdle() {
	if s.idleTTL <= 0 {
		return
	}

	cutoff := s.now().Add(-s.idleTTL)
	for key, view := range s.views {
		if view.IdleSince().Before(cutoff) {
			delete(s.views, key)
		}
	}
}

type cachedMenuFetcher struct {
	remote menu.Fetcher
	cache  cache.Cache
	ttl    time.Duration
	policy *bluemonday.Policy
}

// NewCachedMenuFetcher serves menus from the cache and falls back to remote.
// Fetched menus are stripped of markup before they are cached. Fetch errors are
// never cached.
func NewCachedMenuFetcher(remote menu.Fetcher, c cache.Cache, ttl time.Duration) menu.Fetcher {
	return &cachedMenuFetcher{
		remote: remote,
		cache:  c,
		ttl:    ttl,
		policy: bluemonday.StrictPolicy(),
	}
}

func (f *cachedMenuFetcher) FetchMenu(ctx context.Context, kitchenID string) ([]models.MenuItem, error) {

	logger := middleware.LoggerFromContext(ctx)
	key := cache.MenuKey(kitchenID)

	var cached []models.MenuItem

	found, err := f.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Menu cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if found && cached != nil {
		return cached, nil
	}

	items, err := f.remote.FetchMenu(ctx, kitchenID)
	if err != nil {
		return nil, err
	}

	items = f.sanitize(items)

	if err := f.cache.Set(ctx, key, items, f.ttl); err != nil {
		logger.Warn("Menu cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return items, nil
}

func (f *cachedMenuFetcher) sanitize(items []models.MenuItem) []models.MenuItem {
	clean := make([]models.MenuItem, len(items))

	for i, item := range items {
		item.Name = f.text(item.Name)
		item.Category = f.text(item.Category)
		item.Description = f.text(item.Description)
		item.Ingredients = f.text(item.Ingredients)
		clean[i] = item
	}

	return clean
}

// text strips markup, including markup hidden behind one layer of entity
// encoding. Sanitize escapes what it keeps, so the result is decoded back to
// plain text; the JSON encoder escapes it on the way out.
func (f *cachedMenuFetcher) text(s string) string {
	return html.UnescapeString(f.policy.Sanitize(html.UnescapeString(s)))
}
