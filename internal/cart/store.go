// Package cart holds the session-scoped shopping cart. A Store is opened for one
// session key, loads the persisted items once and writes them back after every
// mutation.
package cart

import (
	"context"
	"fmt"
	"maps"
	"math"
	"sort"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
)

// Storage persists a cart as a mapping from item id to item.
type Storage interface {
	Load(ctx context.Context, key string) (map[string]models.CartItem, error)
	Save(ctx context.Context, key string, items map[string]models.CartItem) error
}

type Store struct {
	key     string
	storage Storage
	items   map[string]models.CartItem
	totals  models.CartTotals
}

// Open loads the persisted cart for key. A missing cart is an empty one.
func Open(ctx context.Context, storage Storage, key string) (*Store, error) {

	items, err := storage.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if items == nil {
		items = make(map[string]models.CartItem)
	}

	s := &Store{key: key, storage: storage, items: items}
	s.totals = computeTotals(s.ordered(items))

	return s, nil
}

// AddItem increments the quantity of an existing item or inserts it with quantity 1.
// Items from a kitchen other than the one already in the cart are rejected.
func (s *Store) AddItem(ctx context.Context, item models.CartItem) (models.CartTotals, error) {

	if item.ID == "" {
		return s.totals, errors.AddValidationError("id", "must not be empty")
	}

	if item.UnitPrice < 0 || math.IsNaN(item.UnitPrice) || math.IsInf(item.UnitPrice, 0) {
		return s.totals, errors.AddValidationError("price", "must be a non-negative number")
	}

	if kitchenID := s.KitchenID(); kitchenID != "" && item.KitchenID != kitchenID {
		return s.totals, errors.ConflictError("Cart contains items from another kitchen").
			WithDetail(fmt.Sprintf("cart kitchen %s, item kitchen %s", kitchenID, item.KitchenID))
	}

	return s.mutate(ctx, func(items map[string]models.CartItem) {

		if existing, ok := items[item.ID]; ok {
			existing.Quantity++
			items[item.ID] = existing
			return
		}

		item.Quantity = 1
		item.Position = nextPosition(items)
		items[item.ID] = item
	})
}

// RemoveItem deletes the item. Removing an absent item is a no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) (models.CartTotals, error) {

	if _, ok := s.items[id]; !ok {
		return s.totals, nil
	}

	return s.mutate(ctx, func(items map[string]models.CartItem) {
		delete(items, id)
	})
}

// UpdateQuantity sets the quantity of an item; qty <= 0 removes it.
func (s *Store) UpdateQuantity(ctx context.Context, id string, qty int) (models.CartTotals, error) {

	if qty <= 0 {
		return s.RemoveItem(ctx, id)
	}

	if _, ok := s.items[id]; !ok {
		return s.totals, errors.NotFoundError("Item not found in the cart")
	}

	return s.mutate(ctx, func(items map[string]models.CartItem) {
		item := items[id]
		item.Quantity = qty
		items[id] = item
	})
}

func (s *Store) Clear(ctx context.Context) error {

	_, err := s.mutate(ctx, func(items map[string]models.CartItem) {
		clear(items)
	})

	return err
}

func (s *Store) Totals() models.CartTotals {
	return s.totals
}

// KitchenID is the kitchen every item in the cart belongs to, empty for an empty cart.
func (s *Store) KitchenID() string {

	for _, item := range s.items {
		return item.KitchenID
	}

	return ""
}

// Items returns a copy of the items in insertion order.
func (s *Store) Items() []models.CartItem {
	return s.ordered(s.items)
}

func (s *Store) Snapshot() *models.Cart {
	return &models.Cart{
		KitchenID:  s.KitchenID(),
		Items:      s.Items(),
		CartTotals: s.totals,
	}
}

// mutate applies fn to a copy of the items, persists the copy and only then
// makes it the current state.
func (s *Store) mutate(ctx context.Context, fn func(items map[string]models.CartItem)) (models.CartTotals, error) {

	next := maps.Clone(s.items)
	if next == nil {
		next = make(map[string]models.CartItem)
	}

	fn(next)

	if err := s.storage.Save(ctx, s.key, next); err != nil {
		return s.totals, fmt.Errorf("failed to save cart: %w", err)
	}

	s.items = next
	s.totals = computeTotals(s.ordered(next))

	return s.totals, nil
}

func (s *Store) ordered(items map[string]models.CartItem) []models.CartItem {

	list := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		list = append(list, item)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Position != list[j].Position {
			return list[i].Position < list[j].Position
		}
		return list[i].ID < list[j].ID
	})

	return list
}

func nextPosition(items map[string]models.CartItem) int {

	next := 0
	for _, item := range items {
		if item.Position >= next {
			next = item.Position + 1
		}
	}

	return next
}

func computeTotals(items []models.CartItem) models.CartTotals {

	var totals models.CartTotals

	for _, item := range items {
		totals.TotalItems += item.Quantity
		totals.TotalPrice += float64(item.Quantity) * item.UnitPrice
	}

	return totals
}
