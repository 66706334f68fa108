package cart

import (
	"context"
	"errors"
	"fmt"

	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/kvstore"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/types"
)

// Service exposes the per-user cart operations.
type Service interface {
	Get(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, userID string, input AddItemInput) (*Cart, error)
	SetQuantity(ctx context.Context, userID string, key LineKey, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, userID string, key LineKey) (*Cart, error)
	Clear(ctx context.Context, userID string) error
}

// AddItemInput captures the payload for adding a cake to the cart.
type AddItemInput struct {
	CakeID         string
	Name           string
	Price          int
	ImageURL       string
	Quantity       int
	Customizations types.Customizations
}

type service struct {
	store kvstore.Store
	logg  *logger.Logger
}

// NewService builds a cart service backed by the provided store.
func NewService(store kvstore.Store, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, logg: logg}, nil
}

// Get loads the user's cart. A missing key reads as an empty cart.
func (s *service) Get(ctx context.Context, userID string) (*Cart, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to view your cart")
	}
	return s.load(ctx, userID)
}

// AddItem merges the cake into the cart, summing quantities when the same
// cake arrives with identical customizations.
func (s *service) AddItem(ctx context.Context, userID string, input AddItemInput) (*Cart, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to add items to your cart")
	}
	if input.CakeID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cake id is required")
	}
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cake name is required")
	}
	if input.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	current, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	line := Item{
		CakeID:         input.CakeID,
		Name:           input.Name,
		Price:          input.Price,
		ImageURL:       input.ImageURL,
		Quantity:       input.Quantity,
		Customizations: input.Customizations.Normalized(),
	}

	merged := false
	for i, existing := range current.Items {
		if existing.Key() == line.Key() {
			current.Items[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		current.Items = append(current.Items, line)
	}

	if err := s.persist(ctx, userID, current); err != nil {
		return nil, err
	}
	return current, nil
}

// SetQuantity replaces the quantity of the identified line. Zero or less
// removes the line. A line that is not in the cart is left as a no-op, the
// cart comes back unchanged.
func (s *service) SetQuantity(ctx context.Context, userID string, key LineKey, quantity int) (*Cart, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to update your cart")
	}
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, key)
	}

	current, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	key.Customizations = key.Customizations.Normalized()
	found := false
	for i, existing := range current.Items {
		if existing.Key() == key {
			current.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return current, nil
	}

	if err := s.persist(ctx, userID, current); err != nil {
		return nil, err
	}
	return current, nil
}

// RemoveItem drops the identified line, a no-op when the line is absent.
// Removing the last line deletes the stored cart entirely.
func (s *service) RemoveItem(ctx context.Context, userID string, key LineKey) (*Cart, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to update your cart")
	}

	current, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	key.Customizations = key.Customizations.Normalized()
	kept := current.Items[:0]
	removed := false
	for _, existing := range current.Items {
		if existing.Key() == key {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return current, nil
	}
	current.Items = kept

	if err := s.persist(ctx, userID, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Clear deletes the user's cart.
func (s *service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to update your cart")
	}
	if err := s.store.Remove(ctx, kvstore.CartKey(userID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return nil
}

func (s *service) load(ctx context.Context, userID string) (*Cart, error) {
	var cart Cart
	err := s.store.Load(ctx, kvstore.CartKey(userID), &cart)
	switch {
	case err == nil:
		return &cart, nil
	case errors.Is(err, kvstore.ErrNotFound):
		return &Cart{}, nil
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}
}

func (s *service) persist(ctx context.Context, userID string, cart *Cart) error {
	key := kvstore.CartKey(userID)
	if cart.IsEmpty() {
		if err := s.store.Remove(ctx, key); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing empty cart")
		}
		return nil
	}
	if err := s.store.Save(ctx, key, cart); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return nil
}
