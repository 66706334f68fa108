package controllers

import (
	"net/http"

	"github.com/sweetdelights/cakekart-backend/api/middleware"
	"github.com/sweetdelights/cakekart-backend/api/responses"
	"github.com/sweetdelights/cakekart-backend/api/validators"
	cartsvc "github.com/sweetdelights/cakekart-backend/internal/cart"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/types"
)

// GetCart returns the signed-in customer's cart.
func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := svc.Get(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

type addCartItemRequest struct {
	CakeID         string               `json:"cake_id" validate:"required"`
	Name           string               `json:"name" validate:"required"`
	Price          int                  `json:"price" validate:"gte=0"`
	ImageURL       string               `json:"image_url"`
	Quantity       int                  `json:"quantity" validate:"gte=0"`
	Customizations types.Customizations `json:"customizations"`
}

// AddCartItem merges a cake line into the cart.
func AddCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.AddItem(r.Context(), middleware.UserIDFromContext(r.Context()), cartsvc.AddItemInput{
			CakeID:         payload.CakeID,
			Name:           payload.Name,
			Price:          payload.Price,
			ImageURL:       payload.ImageURL,
			Quantity:       payload.Quantity,
			Customizations: payload.Customizations,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

type cartLineRequest struct {
	CakeID         string               `json:"cake_id" validate:"required"`
	Customizations types.Customizations `json:"customizations"`
	Quantity       int                  `json:"quantity"`
}

func (p cartLineRequest) key() cartsvc.LineKey {
	return cartsvc.LineKey{CakeID: p.CakeID, Customizations: p.Customizations.Normalized()}
}

// SetCartQuantity sets the quantity of one line. Zero removes the line.
func SetCartQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartLineRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.SetQuantity(r.Context(), middleware.UserIDFromContext(r.Context()), payload.key(), payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

// RemoveCartItem drops one line from the cart.
func RemoveCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartLineRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.RemoveItem(r.Context(), middleware.UserIDFromContext(r.Context()), payload.key())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

// ClearCart empties the cart.
func ClearCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context(), middleware.UserIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
