package kvstore

import (
	"context"
	"testing"
)

type payload struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	in := []payload{{Name: "Chocolate Truffle", Qty: 2}}
	if err := store.Save(ctx, "cart_u1", in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var out []payload
	if err := store.Load(ctx, "cart_u1", &out); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %v", out)
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()
	var out []payload
	if err := store.Load(context.Background(), "nope", &out); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreCorruptPayloadTreatedAsAbsent(t *testing.T) {
	store := NewMemoryStore()
	store.SetRaw("cart_u1", []byte("{not json"))

	var out []payload
	if err := store.Load(context.Background(), "cart_u1", &out); err != ErrNotFound {
		t.Fatalf("expected corrupt payload to read as absent, got %v", err)
	}
}

func TestMemoryStoreRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Save(ctx, "k", payload{Name: "x"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := store.Remove(ctx, "k"); err != nil {
		t.Fatalf("second remove should be a no-op, got %v", err)
	}
	if store.Has("k") {
		t.Fatal("key should be gone")
	}
}

func TestKeyBuilders(t *testing.T) {
	if got := CartKey("abc"); got != "ck:cart:abc" {
		t.Fatalf("unexpected cart key %s", got)
	}
	if got := CartKey(""); got != "ck:cart" {
		t.Fatalf("unexpected empty-user cart key %s", got)
	}
	if got := OrdersKey(); got != "ck:orders" {
		t.Fatalf("unexpected orders key %s", got)
	}
}
