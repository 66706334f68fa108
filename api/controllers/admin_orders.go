package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sweetdelights/cakekart-backend/api/responses"
	"github.com/sweetdelights/cakekart-backend/api/validators"
	"github.com/sweetdelights/cakekart-backend/internal/orders"
	"github.com/sweetdelights/cakekart-backend/internal/profiles"
	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
)

// AdminListOrders returns every order, newest first.
func AdminListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.All(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing ready delivered cancelled"`
	Notes  string `json:"notes"`
}

// AdminUpdateOrderStatus advances an order along its lifecycle.
func AdminUpdateOrderStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.UpdateStatus(
			r.Context(),
			chi.URLParam(r, "orderID"),
			enums.OrderStatus(payload.Status),
			validators.SanitizeString(payload.Notes, 1000),
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// AdminListProfiles returns every registered profile.
func AdminListProfiles(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer admin"`
}

// AdminSetRole promotes or demotes a user.
func AdminSetRole(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setRoleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := enums.ParseUserRole(payload.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
			return
		}

		profile, err := svc.SetRole(r.Context(), chi.URLParam(r, "userID"), role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}
