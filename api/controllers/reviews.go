package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sweetdelights/cakekart-backend/api/middleware"
	"github.com/sweetdelights/cakekart-backend/api/responses"
	"github.com/sweetdelights/cakekart-backend/api/validators"
	"github.com/sweetdelights/cakekart-backend/internal/reviews"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/pagination"
)

type addReviewRequest struct {
	OrderID string   `json:"order_id"`
	Rating  int      `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string   `json:"comment"`
	Images  []string `json:"images" validate:"max=5,dive,url"`
}

// AddReview stores a review for a cake and refreshes its aggregates.
func AddReview(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addReviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := svc.Add(r.Context(), reviews.AddReviewInput{
			UserID:  middleware.UserIDFromContext(r.Context()),
			CakeID:  chi.URLParam(r, "cakeID"),
			OrderID: payload.OrderID,
			Rating:  payload.Rating,
			Comment: validators.SanitizeString(payload.Comment, 2000),
			Images:  payload.Images,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}

// ListCakeReviews returns one cursor page of a cake's reviews.
func ListCakeReviews(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListByCake(r.Context(), chi.URLParam(r, "cakeID"), pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// MarkReviewHelpful bumps the helpful counter.
func MarkReviewHelpful(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.MarkHelpful(r.Context(), chi.URLParam(r, "reviewID")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}
