package checkout

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/sweetdelights/cakekart-backend/internal/cart"
	"github.com/sweetdelights/cakekart-backend/internal/orders"
	"github.com/sweetdelights/cakekart-backend/pkg/config"
	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/kvstore"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/types"
)

func testBakery() config.BakeryConfig {
	return config.BakeryConfig{
		WhatsAppPhone:         "918624891891",
		Name:                  "Sweet Delights",
		DeliveryFee:           50,
		FreeDeliveryThreshold: 999,
	}
}

func newCheckout(t *testing.T) (Service, cart.Service, orders.Service) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	logg := logger.New(logger.Options{Level: logger.ParseLevel("error")})

	carts, err := cart.NewService(store, logg)
	if err != nil {
		t.Fatalf("cart.NewService: %v", err)
	}
	orderSvc, err := orders.NewService(store, logg, nil)
	if err != nil {
		t.Fatalf("orders.NewService: %v", err)
	}
	svc, err := NewService(carts, orderSvc, testBakery(), logg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, carts, orderSvc
}

func validPlaceInput() PlaceOrderInput {
	return PlaceOrderInput{
		UserID:          "user-1",
		CustomerName:    "Priya",
		CustomerEmail:   "priya@example.com",
		DeliveryDate:    "2025-04-10",
		DeliveryTime:    "17:00",
		DeliveryAddress: "12 MG Road",
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	ctx := context.Background()
	svc, carts, orderSvc := newCheckout(t)

	if _, err := carts.AddItem(ctx, "user-1", cart.AddItemInput{CakeID: "cake-1", Name: "Black Forest", Price: 599, Quantity: 2, Customizations: types.Customizations{Size: "1kg"}}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	result, err := svc.PlaceOrder(ctx, validPlaceInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if result.Order.Status != enums.OrderStatusPending {
		t.Errorf("expected pending order, got %s", result.Order.Status)
	}
	if result.Order.Subtotal != 1198 || result.Order.DeliveryFee != 0 || result.Order.Total != 1198 {
		t.Errorf("free delivery expected over threshold: %+v", result.Order)
	}

	u, err := url.Parse(result.WhatsAppURL)
	if err != nil {
		t.Fatalf("parse whatsapp url: %v", err)
	}
	if u.Host != "wa.me" || u.Path != "/918624891891" {
		t.Errorf("unexpected whatsapp target: %s", result.WhatsAppURL)
	}
	text := u.Query().Get("text")
	for _, sub := range []string{"New Order from Sweet Delights", result.Order.ID, "Black Forest (2x)", "Size: 1kg"} {
		if !strings.Contains(text, sub) {
			t.Errorf("whatsapp message missing %q", sub)
		}
	}

	// cart cleared
	after, err := carts.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if !after.IsEmpty() {
		t.Error("cart should be cleared after checkout")
	}

	// order persisted
	mine, err := orderSvc.ForCustomer(ctx, "user-1")
	if err != nil {
		t.Fatalf("for customer: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("expected one persisted order, got %d", len(mine))
	}
}

func TestPlaceOrderChargesDeliveryBelowThreshold(t *testing.T) {
	ctx := context.Background()
	svc, carts, _ := newCheckout(t)

	if _, err := carts.AddItem(ctx, "user-1", cart.AddItemInput{CakeID: "cake-1", Name: "Brownie", Price: 99, Quantity: 1}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	result, err := svc.PlaceOrder(ctx, validPlaceInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if result.Order.DeliveryFee != 50 || result.Order.Total != 149 {
		t.Errorf("expected fee 50 and total 149, got %+v", result.Order)
	}
}

func TestPlaceOrderFreeDeliveryAtExactThreshold(t *testing.T) {
	ctx := context.Background()
	svc, carts, _ := newCheckout(t)

	if _, err := carts.AddItem(ctx, "user-1", cart.AddItemInput{CakeID: "cake-1", Name: "Tres Leches", Price: 999, Quantity: 1}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	result, err := svc.PlaceOrder(ctx, validPlaceInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if result.Order.DeliveryFee != 0 {
		t.Errorf("999 should qualify for free delivery, fee=%d", result.Order.DeliveryFee)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCheckout(t)

	_, err := svc.PlaceOrder(ctx, validPlaceInput())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR for empty cart, got %v", err)
	}
}

func TestPlaceOrderRequiresDeliveryDetails(t *testing.T) {
	ctx := context.Background()
	svc, carts, _ := newCheckout(t)

	if _, err := carts.AddItem(ctx, "user-1", cart.AddItemInput{CakeID: "cake-1", Name: "Brownie", Price: 99}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	input := validPlaceInput()
	input.DeliveryAddress = ""
	if _, err := svc.PlaceOrder(ctx, input); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for missing address")
	}

	input = validPlaceInput()
	input.UserID = ""
	_, err := svc.PlaceOrder(ctx, input)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	svc, carts, _ := newCheckout(t)

	quote, err := svc.Quote(ctx, "user-1")
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.Subtotal != 0 || quote.DeliveryFee != 50 || quote.FreeDelivery {
		t.Errorf("empty cart quote wrong: %+v", quote)
	}

	if _, err := carts.AddItem(ctx, "user-1", cart.AddItemInput{CakeID: "cake-1", Name: "Tres Leches", Price: 999}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	quote, err = svc.Quote(ctx, "user-1")
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.Total != 999 || !quote.FreeDelivery {
		t.Errorf("threshold quote wrong: %+v", quote)
	}
}
