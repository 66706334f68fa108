package cart

import (
	"context"
	"testing"

	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/kvstore"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/types"
)

func newTestService(t *testing.T) (Service, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	logg := logger.New(logger.Options{Level: logger.ParseLevel("error")})
	svc, err := NewService(store, logg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, store
}

func TestAddItemMergesIdenticalLines(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	custom := types.Customizations{Size: "1kg", Flavor: "Chocolate"}
	if _, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Black Forest", Price: 599, Quantity: 1, Customizations: custom}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	got, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Black Forest", Price: 599, Quantity: 2, Customizations: custom})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(got.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(got.Items))
	}
	if got.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", got.Items[0].Quantity)
	}
	if got.TotalItems() != 3 || got.Subtotal() != 1797 {
		t.Errorf("totals wrong: items=%d subtotal=%d", got.TotalItems(), got.Subtotal())
	}
}

func TestAddItemDistinctCustomizationsStaySeparate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Black Forest", Price: 599, Customizations: types.Customizations{Message: "Happy Birthday"}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Black Forest", Price: 599, Customizations: types.Customizations{Message: "Congrats"}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(got.Items) != 2 {
		t.Fatalf("expected two lines, got %d", len(got.Items))
	}
}

func TestAddItemNormalizesCustomizations(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Red Velvet", Price: 749, Customizations: types.Customizations{Size: " 1kg "}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Red Velvet", Price: 749, Customizations: types.Customizations{Size: "1kg"}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(got.Items) != 1 {
		t.Fatalf("whitespace variants should merge, got %d lines", len(got.Items))
	}
}

func TestAddItemDefaultsQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	got, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Brownie", Price: 99})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.Items[0].Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", got.Items[0].Quantity)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	if _, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Brownie", Price: 99}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.SetQuantity(ctx, "user-1", LineKey{CakeID: "cake-1"}, 0)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatal("expected empty cart")
	}
	if store.Has(kvstore.CartKey("user-1")) {
		t.Error("empty cart should delete the stored key")
	}
}

func TestSetQuantityMissingLineIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Brownie", Price: 99, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := svc.SetQuantity(ctx, "user-1", LineKey{CakeID: "ghost"}, 5)
	if err != nil {
		t.Fatalf("set quantity on absent line: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].CakeID != "cake-1" || got.Items[0].Quantity != 2 {
		t.Fatalf("cart should be unchanged, got %+v", got.Items)
	}
}

func TestRemoveItemMissingLineIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if _, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Brownie", Price: 99}); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := svc.RemoveItem(ctx, "user-1", LineKey{CakeID: "ghost"})
	if err != nil {
		t.Fatalf("remove absent line: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].CakeID != "cake-1" {
		t.Fatalf("cart should be unchanged, got %+v", got.Items)
	}
}

func TestRemoveItemTargetsExactLine(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	withMsg := types.Customizations{Message: "Happy Birthday"}
	if _, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Black Forest", Price: 599, Customizations: withMsg}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Black Forest", Price: 599}); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := svc.RemoveItem(ctx, "user-1", LineKey{CakeID: "cake-1", Customizations: withMsg})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected one remaining line, got %d", len(got.Items))
	}
	if got.Items[0].Customizations.Message != "" {
		t.Error("removed the wrong line")
	}
}

func TestGetMissingCartReadsEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	got, err := svc.Get(ctx, "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsEmpty() || got.TotalItems() != 0 {
		t.Errorf("expected empty cart, got %+v", got)
	}
}

func TestCorruptCartReadsEmpty(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	store.SetRaw(kvstore.CartKey("user-1"), []byte("{not json"))

	got, err := svc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsEmpty() {
		t.Error("corrupt blob should read as empty cart")
	}
}

func TestAnonymousUserRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddItem(ctx, "", AddItemInput{CakeID: "cake-1", Name: "Brownie", Price: 99})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}

	if _, err := svc.Get(ctx, ""); pkgerrors.As(err) == nil {
		t.Fatal("expected error for anonymous get")
	}
}

func TestClearRemovesKey(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	if _, err := svc.AddItem(ctx, "user-1", AddItemInput{CakeID: "cake-1", Name: "Brownie", Price: 99}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(ctx, "user-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if store.Has(kvstore.CartKey("user-1")) {
		t.Error("cart key should be removed")
	}
}
