package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sweetdelights/cakekart-backend/api/responses"
	"github.com/sweetdelights/cakekart-backend/api/validators"
	"github.com/sweetdelights/cakekart-backend/internal/catalog"
	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
)

// cakeResponse decorates a cake with the price a customer actually pays.
type cakeResponse struct {
	models.Cake
	EffectivePrice int  `json:"effective_price"`
	DiscountActive bool `json:"discount_active"`
}

func newCakeResponse(cake models.Cake, now time.Time) cakeResponse {
	return cakeResponse{
		Cake:           cake,
		EffectivePrice: catalog.EffectivePrice(&cake, now),
		DiscountActive: catalog.DiscountActive(&cake, now),
	}
}

func newCakeResponses(cakes []models.Cake) []cakeResponse {
	now := time.Now()
	out := make([]cakeResponse, len(cakes))
	for i, cake := range cakes {
		out[i] = newCakeResponse(cake, now)
	}
	return out
}

// ListCakes returns the available cakes from the catalog snapshot.
func ListCakes(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if status := svc.Status(); status.Err != nil && len(svc.Cakes()) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, status.Err, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, newCakeResponses(svc.Cakes()))
	}
}

// ListCategories returns all categories sorted by name.
func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if status := svc.Status(); status.Err != nil && len(svc.Categories()) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, status.Err, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Categories())
	}
}

// CakeByID returns one cake from the snapshot.
func CakeByID(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cakeID := chi.URLParam(r, "cakeID")
		cake, ok := svc.CakeByID(cakeID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cake not found"))
			return
		}
		responses.WriteSuccess(w, newCakeResponse(*cake, time.Now()))
	}
}

// CakesByCategory filters the snapshot by category.
func CakesByCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryID")
		responses.WriteSuccess(w, newCakeResponses(svc.CakesByCategory(categoryID)))
	}
}

// SearchCakes matches the query against names, descriptions and ingredients.
func SearchCakes(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := validators.SanitizeString(r.URL.Query().Get("q"), 200)
		responses.WriteSuccess(w, newCakeResponses(svc.Search(query)))
	}
}

// RefreshCatalog forces a snapshot reload from the database.
func RefreshCatalog(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Refresh(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog refresh failed"))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"cakes":      len(svc.Cakes()),
			"categories": len(svc.Categories()),
		})
	}
}

// CatalogStatus reports whether the snapshot is loading or failed its last
// refresh. The storefront uses it to render loading and error states.
func CatalogStatus(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := svc.Status()
		payload := map[string]any{"loading": status.Loading}
		if status.Err != nil {
			payload["degraded"] = true
		}
		responses.WriteSuccess(w, payload)
	}
}
