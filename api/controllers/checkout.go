package controllers

import (
	"net/http"

	"github.com/sweetdelights/cakekart-backend/api/middleware"
	"github.com/sweetdelights/cakekart-backend/api/responses"
	"github.com/sweetdelights/cakekart-backend/api/validators"
	"github.com/sweetdelights/cakekart-backend/internal/checkout"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/metrics"
)

// CheckoutQuote prices the cart without placing an order.
func CheckoutQuote(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quote, err := svc.Quote(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

type placeOrderRequest struct {
	CustomerName        string `json:"customer_name" validate:"required"`
	CustomerEmail       string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone       string `json:"customer_phone"`
	DeliveryDate        string `json:"delivery_date" validate:"required"`
	DeliveryTime        string `json:"delivery_time" validate:"required"`
	DeliveryAddress     string `json:"delivery_address" validate:"required"`
	SpecialInstructions string `json:"special_instructions"`
}

// PlaceOrder converts the cart into an order and returns the WhatsApp link
// that hands the conversation to the bakery.
func PlaceOrder(svc checkout.Service, httpMetrics *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.PlaceOrder(r.Context(), checkout.PlaceOrderInput{
			UserID:              middleware.UserIDFromContext(r.Context()),
			CustomerName:        validators.SanitizeString(payload.CustomerName, 200),
			CustomerEmail:       validators.SanitizeString(payload.CustomerEmail, 200),
			CustomerPhone:       validators.SanitizeString(payload.CustomerPhone, 30),
			DeliveryDate:        payload.DeliveryDate,
			DeliveryTime:        payload.DeliveryTime,
			DeliveryAddress:     validators.SanitizeString(payload.DeliveryAddress, 500),
			SpecialInstructions: validators.SanitizeString(payload.SpecialInstructions, 500),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		httpMetrics.IncOrdersPlaced()
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
