package models

import "strings"

// MenuItem is a dish as published by a kitchen. The JSON shape is the one served
// by GET /api/kitchen/{id}.
type MenuItem struct {
	ID          string  `json:"_id" bson:"_id"`
	KitchenID   string  `json:"kitchenId,omitempty" bson:"kitchenId"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"image" bson:"image"`
	Category    string  `json:"category" bson:"category"`
	Rating      float64 `json:"rating" bson:"rating"`
	Description string  `json:"description" bson:"description"`
	Ingredients string  `json:"ingredients" bson:"ingredients"`
}

// IngredientList splits the comma separated ingredients, dropping blanks.
func (m MenuItem) IngredientList() []string {
	return SplitIngredients(m.Ingredients)
}

func SplitIngredients(raw string) []string {
	ingredients := []string{}

	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}

	return ingredients
}

type MenuStatus string

const (
	MenuStatusIdle     MenuStatus = "idle"
	MenuStatusLoading  MenuStatus = "loading"
	MenuStatusReady    MenuStatus = "ready"
	MenuStatusNotReady MenuStatus = "not_ready"
	MenuStatusFailed   MenuStatus = "failed"
)

// MenuState is what a browsing session currently displays.
type MenuState struct {
	KitchenID  string     `json:"kitchenId"`
	Status     MenuStatus `json:"status"`
	Items      []MenuItem `json:"items"`
	Message    string     `json:"message,omitempty"`
	Retryable  bool       `json:"retryable,omitempty"`
	Generation uint64     `json:"generation"`
}
