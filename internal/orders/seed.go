package orders

import (
	"context"
	"errors"
	"time"

	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/kvstore"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/types"
)

// SeedDemoOrders writes two sample orders so a fresh environment has
// something to show. It is a no-op when any ledger already exists.
func SeedDemoOrders(ctx context.Context, store kvstore.Store, logg *logger.Logger) error {
	var existing ledger
	err := store.Load(ctx, kvstore.OrdersKey(), &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, kvstore.ErrNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking order ledger")
	}

	book := ledger{Orders: demoOrders()}
	if err := store.Save(ctx, kvstore.OrdersKey(), &book); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seeding demo orders")
	}
	logg.Info(ctx, "seeded demo orders")
	return nil
}

func demoOrders() []Order {
	return []Order{
		{
			ID:            "order_1",
			CustomerID:    "2",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			CustomerPhone: "+91 9876543210",
			Items: []Item{
				{
					CakeID:   "1",
					Name:     "Chocolate Truffle Delight",
					Price:    899,
					ImageURL: "/api/placeholder/300/300",
					Quantity: 1,
					Customizations: types.Customizations{
						Size:    "1kg",
						Flavor:  "Original Chocolate",
						Message: "Happy Birthday!",
					},
				},
			},
			Subtotal:            899,
			DeliveryFee:         0,
			Total:               899,
			DeliveryDate:        "2024-12-15",
			DeliveryTime:        "3:00 PM - 6:00 PM",
			DeliveryAddress:     "123 Main Street, Apartment 4B, Mumbai - 400001",
			SpecialInstructions: "Please call before delivery",
			Status:              enums.OrderStatusPending,
			CreatedAt:           time.Date(2024, 12, 10, 10, 30, 0, 0, time.UTC),
			UpdatedAt:           time.Date(2024, 12, 10, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:            "order_2",
			CustomerID:    "2",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			Items: []Item{
				{
					CakeID:   "2",
					Name:     "Strawberry Dream",
					Price:    799,
					ImageURL: "/api/placeholder/300/300",
					Quantity: 2,
					Customizations: types.Customizations{
						Size:   "500g",
						Flavor: "Original",
					},
				},
			},
			Subtotal:        1598,
			DeliveryFee:     0,
			Total:           1598,
			DeliveryDate:    "2024-12-08",
			DeliveryTime:    "12:00 PM - 3:00 PM",
			DeliveryAddress: "123 Main Street, Apartment 4B, Mumbai - 400001",
			Status:          enums.OrderStatusDelivered,
			CreatedAt:       time.Date(2024, 12, 5, 14, 20, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2024, 12, 8, 15, 30, 0, 0, time.UTC),
		},
	}
}
