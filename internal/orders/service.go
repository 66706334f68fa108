package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/kvstore"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
)

// Notifier receives best-effort order lifecycle events. Failures are logged,
// never surfaced to the caller.
type Notifier interface {
	OrderPlaced(ctx context.Context, order *Order)
	OrderStatusChanged(ctx context.Context, order *Order)
}

// Service exposes the order ledger operations.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus, notes string) (*Order, error)
	ByID(ctx context.Context, orderID string) (*Order, error)
	ForCustomer(ctx context.Context, customerID string) ([]Order, error)
	All(ctx context.Context) ([]Order, error)
}

// CreateOrderInput carries a fully priced checkout draft. The service
// recomputes the money fields and rejects drafts that do not add up.
type CreateOrderInput struct {
	CustomerID          string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	Items               []Item
	Subtotal            int
	DeliveryFee         int
	Total               int
	DeliveryDate        string
	DeliveryTime        string
	DeliveryAddress     string
	SpecialInstructions string
}

type service struct {
	store    kvstore.Store
	logg     *logger.Logger
	notifier Notifier

	mu  sync.Mutex
	now func() time.Time
}

// NewService builds the ledger service. notifier may be nil.
func NewService(store kvstore.Store, logg *logger.Logger, notifier Notifier) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("order store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		store:    store,
		logg:     logg,
		notifier: notifier,
		now:      time.Now,
	}, nil
}

// Create validates the draft, assigns identity and timestamps, and appends it
// to the ledger as pending.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	if input.CustomerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to place an order")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	subtotal := 0
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
		if item.Price < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item price must be non-negative")
		}
		subtotal += item.Price * item.Quantity
	}
	if input.DeliveryFee < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery fee must be non-negative")
	}
	if input.Subtotal != subtotal || input.Total != subtotal+input.DeliveryFee {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order totals do not match item prices").
			WithDetails(map[string]int{"computed_subtotal": subtotal, "computed_total": subtotal + input.DeliveryFee})
	}

	now := s.now().UTC()
	order := Order{
		ID:                  uuid.NewString(),
		CustomerID:          input.CustomerID,
		CustomerName:        input.CustomerName,
		CustomerEmail:       input.CustomerEmail,
		CustomerPhone:       input.CustomerPhone,
		Items:               input.Items,
		Subtotal:            subtotal,
		DeliveryFee:         input.DeliveryFee,
		Total:               subtotal + input.DeliveryFee,
		DeliveryDate:        input.DeliveryDate,
		DeliveryTime:        input.DeliveryTime,
		DeliveryAddress:     input.DeliveryAddress,
		SpecialInstructions: input.SpecialInstructions,
		Status:              enums.OrderStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	book.Orders = append(book.Orders, order)
	if err := s.persist(ctx, book); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.OrderPlaced(ctx, &order)
	}
	return &order, nil
}

// UpdateStatus moves an order along the fulfilment flow. Transitions outside
// the allowed graph are rejected, terminal orders stay put.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus, notes string) (*Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown order status %q", status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range book.Orders {
		if book.Orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	current := book.Orders[idx].Status
	if !current.CanTransitionTo(status) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", current, status))
	}

	book.Orders[idx].Status = status
	book.Orders[idx].UpdatedAt = s.now().UTC()
	if notes != "" {
		book.Orders[idx].Notes = notes
	}
	if err := s.persist(ctx, book); err != nil {
		return nil, err
	}

	updated := book.Orders[idx]
	if s.notifier != nil {
		s.notifier.OrderStatusChanged(ctx, &updated)
	}
	return &updated, nil
}

// ByID fetches a single order.
func (s *service) ByID(ctx context.Context, orderID string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range book.Orders {
		if book.Orders[i].ID == orderID {
			order := book.Orders[i]
			return &order, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

// ForCustomer returns the customer's orders, newest first.
func (s *service) ForCustomer(ctx context.Context, customerID string) ([]Order, error) {
	if customerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to view your orders")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]Order, 0)
	for _, order := range book.Orders {
		if order.CustomerID == customerID {
			matched = append(matched, order)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

// All returns every order, newest first.
func (s *service) All(ctx context.Context) ([]Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	all := make([]Order, len(book.Orders))
	copy(all, book.Orders)
	sortNewestFirst(all)
	return all, nil
}

func sortNewestFirst(list []Order) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func (s *service) load(ctx context.Context) (*ledger, error) {
	var book ledger
	err := s.store.Load(ctx, kvstore.OrdersKey(), &book)
	switch {
	case err == nil:
		return &book, nil
	case errors.Is(err, kvstore.ErrNotFound):
		return &ledger{}, nil
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading orders")
	}
}

func (s *service) persist(ctx context.Context, book *ledger) error {
	if err := s.store.Save(ctx, kvstore.OrdersKey(), book); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving orders")
	}
	return nil
}
