package checkout

import (
	"context"
	"fmt"

	"github.com/sweetdelights/cakekart-backend/internal/cart"
	"github.com/sweetdelights/cakekart-backend/internal/orders"
	"github.com/sweetdelights/cakekart-backend/pkg/config"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/whatsapp"
)

// Service turns a cart into a placed order plus the WhatsApp handoff link.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Result, error)
	Quote(ctx context.Context, userID string) (*QuoteResult, error)
}

// PlaceOrderInput carries the customer identity and delivery details gathered
// at checkout.
type PlaceOrderInput struct {
	UserID              string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	DeliveryDate        string
	DeliveryTime        string
	DeliveryAddress     string
	SpecialInstructions string
}

// Result is the placed order and the link that opens the bakery chat.
type Result struct {
	Order       *orders.Order `json:"order"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// QuoteResult prices the current cart without placing an order.
type QuoteResult struct {
	Subtotal     int  `json:"subtotal"`
	DeliveryFee  int  `json:"delivery_fee"`
	Total        int  `json:"total"`
	FreeDelivery bool `json:"free_delivery"`
}

type service struct {
	carts  cart.Service
	orders orders.Service
	bakery config.BakeryConfig
	logg   *logger.Logger
}

// NewService wires the checkout flow.
func NewService(carts cart.Service, orderSvc orders.Service, bakery config.BakeryConfig, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if orderSvc == nil {
		return nil, fmt.Errorf("order service required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{carts: carts, orders: orderSvc, bakery: bakery, logg: logg}, nil
}

// Quote prices the user's cart under the current delivery fee rule.
func (s *service) Quote(ctx context.Context, userID string) (*QuoteResult, error) {
	current, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	subtotal := current.Subtotal()
	fee := s.deliveryFee(subtotal)
	return &QuoteResult{
		Subtotal:     subtotal,
		DeliveryFee:  fee,
		Total:        subtotal + fee,
		FreeDelivery: fee == 0 && subtotal > 0,
	}, nil
}

// PlaceOrder validates the checkout, appends the order to the ledger, clears
// the cart and returns the WhatsApp link for the customer to send.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Result, error) {
	if input.UserID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to place an order")
	}
	if input.DeliveryDate == "" || input.DeliveryTime == "" || input.DeliveryAddress == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery date, time and address are required")
	}

	current, err := s.carts.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	subtotal := current.Subtotal()
	fee := s.deliveryFee(subtotal)

	items := make([]orders.Item, 0, len(current.Items))
	for _, line := range current.Items {
		items = append(items, orders.Item{
			CakeID:         line.CakeID,
			Name:           line.Name,
			Price:          line.Price,
			ImageURL:       line.ImageURL,
			Quantity:       line.Quantity,
			Customizations: line.Customizations,
		})
	}

	order, err := s.orders.Create(ctx, orders.CreateOrderInput{
		CustomerID:          input.UserID,
		CustomerName:        input.CustomerName,
		CustomerEmail:       input.CustomerEmail,
		CustomerPhone:       input.CustomerPhone,
		Items:               items,
		Subtotal:            subtotal,
		DeliveryFee:         fee,
		Total:               subtotal + fee,
		DeliveryDate:        input.DeliveryDate,
		DeliveryTime:        input.DeliveryTime,
		DeliveryAddress:     input.DeliveryAddress,
		SpecialInstructions: input.SpecialInstructions,
	})
	if err != nil {
		return nil, err
	}

	// cart cleanup is best effort once the order exists
	if err := s.carts.Clear(ctx, input.UserID); err != nil {
		s.logg.Error(ctx, "checkout.clear_cart", err)
	}

	return &Result{
		Order:       order,
		WhatsAppURL: whatsapp.Link(s.bakery.WhatsAppPhone, s.orderMessage(order)),
	}, nil
}

func (s *service) deliveryFee(subtotal int) int {
	if subtotal >= s.bakery.FreeDeliveryThreshold {
		return 0
	}
	return s.bakery.DeliveryFee
}

func (s *service) orderMessage(order *orders.Order) string {
	lines := make([]whatsapp.OrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, whatsapp.OrderLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Total:    item.Price * item.Quantity,
			Size:     item.Customizations.Size,
			Flavor:   item.Customizations.Flavor,
			Message:  item.Customizations.Message,
		})
	}
	return whatsapp.OrderMessage(whatsapp.OrderMessageParams{
		BakeryName:          s.bakery.Name,
		OrderID:             order.ID,
		CustomerName:        order.CustomerName,
		CustomerEmail:       order.CustomerEmail,
		CustomerPhone:       order.CustomerPhone,
		Items:               lines,
		Subtotal:            order.Subtotal,
		DeliveryFee:         order.DeliveryFee,
		Total:               order.Total,
		DeliveryDate:        order.DeliveryDate,
		DeliveryTime:        order.DeliveryTime,
		DeliveryAddress:     order.DeliveryAddress,
		SpecialInstructions: order.SpecialInstructions,
	})
}
