package orders

import (
	"time"

	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	"github.com/sweetdelights/cakekart-backend/pkg/types"
)

// Item is one line of a placed order. Prices are whole rupees, frozen at the
// moment of checkout.
type Item struct {
	CakeID         string               `json:"cake_id"`
	Name           string               `json:"name"`
	Price          int                  `json:"price"`
	ImageURL       string               `json:"image_url,omitempty"`
	Quantity       int                  `json:"quantity"`
	Customizations types.Customizations `json:"customizations"`
}

// Order is the persisted record of one checkout.
type Order struct {
	ID                  string            `json:"id"`
	CustomerID          string            `json:"customer_id"`
	CustomerName        string            `json:"customer_name"`
	CustomerEmail       string            `json:"customer_email"`
	CustomerPhone       string            `json:"customer_phone,omitempty"`
	Items               []Item            `json:"items"`
	Subtotal            int               `json:"subtotal"`
	DeliveryFee         int               `json:"delivery_fee"`
	Total               int               `json:"total"`
	DeliveryDate        string            `json:"delivery_date"`
	DeliveryTime        string            `json:"delivery_time"`
	DeliveryAddress     string            `json:"delivery_address"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
	Status              enums.OrderStatus `json:"status"`
	Notes               string            `json:"notes,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// ledger is the single blob persisted for all orders.
type ledger struct {
	Orders []Order `json:"orders"`
}
