package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sweetdelights/cakekart-backend/api/responses"
	"github.com/sweetdelights/cakekart-backend/api/validators"
	"github.com/sweetdelights/cakekart-backend/internal/admin"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
)

type adminCakeRequest struct {
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description"`
	Price              int      `json:"price" validate:"gte=0"`
	ImageURL           string   `json:"image_url" validate:"omitempty,url"`
	CategoryID         string   `json:"category_id" validate:"omitempty,uuid"`
	Available          bool     `json:"available"`
	PreparationTime    *int     `json:"preparation_time" validate:"omitempty,gte=0"`
	Ingredients        []string `json:"ingredients"`
	Allergens          []string `json:"allergens"`
	DiscountPercentage *float64 `json:"discount_percentage" validate:"omitempty,gte=0,lte=100"`
	DiscountStartDate  *string  `json:"discount_start_date"`
	DiscountEndDate    *string  `json:"discount_end_date"`
}

func (p adminCakeRequest) toInput() (admin.CakeInput, error) {
	input := admin.CakeInput{
		Name:               validators.SanitizeString(p.Name, 200),
		Description:        validators.SanitizeString(p.Description, 2000),
		Price:              p.Price,
		ImageURL:           p.ImageURL,
		CategoryID:         p.CategoryID,
		Available:          p.Available,
		PreparationTime:    p.PreparationTime,
		Ingredients:        p.Ingredients,
		Allergens:          p.Allergens,
		DiscountPercentage: p.DiscountPercentage,
	}

	var err error
	if input.DiscountStartDate, err = parseDatePtr(p.DiscountStartDate); err != nil {
		return admin.CakeInput{}, err
	}
	if input.DiscountEndDate, err = parseDatePtr(p.DiscountEndDate); err != nil {
		return admin.CakeInput{}, err
	}
	return input, nil
}

// AdminListCakes returns every cake, available or not.
func AdminListCakes(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cakes, err := svc.ListCakes(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cakes)
	}
}

// AdminCreateCake adds a listing to the catalog.
func AdminCreateCake(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminCakeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cake, err := svc.CreateCake(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, cake)
	}
}

// AdminUpdateCake replaces a listing's fields.
func AdminUpdateCake(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminCakeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cake, err := svc.UpdateCake(r.Context(), chi.URLParam(r, "cakeID"), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cake)
	}
}

// AdminDeleteCake removes a listing.
func AdminDeleteCake(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteCake(r.Context(), chi.URLParam(r, "cakeID")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type adminCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

func (p adminCategoryRequest) toInput() admin.CategoryInput {
	return admin.CategoryInput{
		Name:        validators.SanitizeString(p.Name, 200),
		Description: validators.SanitizeString(p.Description, 1000),
		ImageURL:    p.ImageURL,
	}
}

// AdminCreateCategory adds a category.
func AdminCreateCategory(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.CreateCategory(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

// AdminUpdateCategory replaces a category's fields.
func AdminUpdateCategory(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.UpdateCategory(r.Context(), chi.URLParam(r, "categoryID"), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, category)
	}
}

// AdminDeleteCategory removes a category. Its cakes stay, uncategorized.
func AdminDeleteCategory(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminDashboard aggregates order and catalog counts.
func AdminDashboard(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}

func parseDatePtr(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, *raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid date").WithDetails(map[string]string{"value": *raw})
}
