package cart

import (
	"github.com/sweetdelights/cakekart-backend/pkg/types"
)

// Item is one cart line. Lines are keyed by cake id plus the exact
// customization values, so the same cake with a different inscription is a
// separate line.
type Item struct {
	CakeID         string               `json:"cake_id"`
	Name           string               `json:"name"`
	Price          int                  `json:"price"`
	ImageURL       string               `json:"image_url,omitempty"`
	Quantity       int                  `json:"quantity"`
	Customizations types.Customizations `json:"customizations"`
}

// LineKey identifies a cart line structurally.
type LineKey struct {
	CakeID         string
	Customizations types.Customizations
}

// Key returns the identity of this line.
func (i Item) Key() LineKey {
	return LineKey{CakeID: i.CakeID, Customizations: i.Customizations}
}

// Cart is the persisted blob for one user.
type Cart struct {
	Items []Item `json:"items"`
}

// TotalItems sums line quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal sums line totals in whole rupees.
func (c Cart) Subtotal() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

// IsEmpty reports whether the cart holds no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
