package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sweetdelights/cakekart-backend/api/middleware"
	"github.com/sweetdelights/cakekart-backend/api/responses"
	"github.com/sweetdelights/cakekart-backend/internal/orders"
	"github.com/sweetdelights/cakekart-backend/pkg/config"
	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/whatsapp"
)

// MyOrders lists the signed-in customer's orders, newest first.
func MyOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ForCustomer(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// OrderByID returns one order. Customers only see their own; admins see all.
func OrderByID(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := loadOwnedOrder(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// ReorderLink builds a WhatsApp message that repeats a past order.
func ReorderLink(svc orders.Service, bakery config.BakeryConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := loadOwnedOrder(r, svc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines := make([]whatsapp.OrderLine, len(order.Items))
		for i, item := range order.Items {
			lines[i] = whatsapp.OrderLine{
				Name:     item.Name,
				Quantity: item.Quantity,
				Total:    item.Price * item.Quantity,
				Size:     item.Customizations.Size,
				Flavor:   item.Customizations.Flavor,
				Message:  item.Customizations.Message,
			}
		}

		url := whatsapp.Link(bakery.InquiryPhone, whatsapp.ReorderMessage(order.ID, lines))
		responses.WriteSuccess(w, map[string]string{"whatsapp_url": url})
	}
}

func loadOwnedOrder(r *http.Request, svc orders.Service) (*orders.Order, error) {
	order, err := svc.ByID(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		return nil, err
	}

	userID := middleware.UserIDFromContext(r.Context())
	role := middleware.RoleFromContext(r.Context())
	if order.CustomerID != userID && role != string(enums.UserRoleAdmin) {
		// Hide the order's existence from other customers.
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}
