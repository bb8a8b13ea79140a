package models

type CartItem struct {
	ID          string   `json:"id"`
	KitchenID   string   `json:"kitchenId"`
	Name        string   `json:"name"`
	UnitPrice   float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Position    int      `json:"position"`
}

type CartTotals struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

type Cart struct {
	KitchenID string     `json:"kitchenId,omitempty"`
	Items     []CartItem `json:"items"`
	CartTotals
}

// AddItemRequest mirrors the menu item record the client adds to its cart.
type AddItemRequest struct {
	ID          string  `json:"_id"         validate:"required,max=128"`
	KitchenID   string  `json:"kitchenId"   validate:"required,max=128"`
	Name        string  `json:"name"        validate:"required,max=200"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Ingredients string  `json:"ingredients"`
}

func (r *AddItemRequest) CartItem() CartItem {
	return CartItem{
		ID:          r.ID,
		KitchenID:   r.KitchenID,
		Name:        r.Name,
		UnitPrice:   r.Price,
		Image:       r.Image,
		Category:    r.Category,
		Rating:      r.Rating,
		Description: r.Description,
		Ingredients: SplitIngredients(r.Ingredients),
	}
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
