package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/sweetdelights/cakekart-backend/internal/catalog"
	"github.com/sweetdelights/cakekart-backend/internal/orders"
	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
)

// Refresher is the slice of the catalog service the back-office needs: after
// a write, the public snapshot must be rebuilt.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Service exposes the back-office operations.
type Service interface {
	ListCakes(ctx context.Context) ([]models.Cake, error)
	CreateCake(ctx context.Context, input CakeInput) (*models.Cake, error)
	UpdateCake(ctx context.Context, id string, input CakeInput) (*models.Cake, error)
	DeleteCake(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, input CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	Dashboard(ctx context.Context) (*DashboardStats, error)
}

// CakeInput carries the writable cake fields.
type CakeInput struct {
	Name               string
	Description        string
	Price              int
	ImageURL           string
	CategoryID         string
	Available          bool
	PreparationTime    *int
	Ingredients        []string
	Allergens          []string
	DiscountPercentage *float64
	DiscountStartDate  *time.Time
	DiscountEndDate    *time.Time
}

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

// DashboardStats summarizes the shop for the admin landing page.
type DashboardStats struct {
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	DeliveredOrders int `json:"delivered_orders"`
	Revenue         int `json:"revenue"`
	TotalCakes      int `json:"total_cakes"`
}

type service struct {
	repo      *catalog.Repository
	refresher Refresher
	orders    orders.Service
	logg      *logger.Logger
}

// NewService wires the back-office.
func NewService(repo *catalog.Repository, refresher Refresher, orderSvc orders.Service, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if refresher == nil {
		return nil, fmt.Errorf("catalog refresher required")
	}
	if orderSvc == nil {
		return nil, fmt.Errorf("order service required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, refresher: refresher, orders: orderSvc, logg: logg}, nil
}

// ListCakes returns every cake, including the currently unavailable ones.
func (s *service) ListCakes(ctx context.Context) ([]models.Cake, error) {
	cakes, err := s.repo.ListAllCakes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing cakes")
	}
	return cakes, nil
}

// CreateCake stores a new listing and refreshes the public snapshot.
func (s *service) CreateCake(ctx context.Context, input CakeInput) (*models.Cake, error) {
	cake, err := s.cakeFromInput(&models.Cake{}, input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateCake(ctx, cake)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating cake")
	}
	s.refreshSnapshot(ctx)
	return created, nil
}

// UpdateCake replaces a listing's fields and refreshes the public snapshot.
func (s *service) UpdateCake(ctx context.Context, id string, input CakeInput) (*models.Cake, error) {
	cakeID, err := uuid.Parse(id)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cake id")
	}

	existing, err := s.repo.FindCakeByID(ctx, cakeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cake not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cake")
	}

	existing.Category = nil
	cake, err := s.cakeFromInput(existing, input)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateCake(ctx, cake)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cake")
	}
	s.refreshSnapshot(ctx)
	return updated, nil
}

// DeleteCake removes a listing and refreshes the public snapshot.
func (s *service) DeleteCake(ctx context.Context, id string) error {
	cakeID, err := uuid.Parse(id)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid cake id")
	}
	if err := s.repo.DeleteCake(ctx, cakeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cake not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting cake")
	}
	s.refreshSnapshot(ctx)
	return nil
}

// CreateCategory stores a new category and refreshes the public snapshot.
func (s *service) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}

	category := &models.Category{Name: input.Name}
	if input.Description != "" {
		category.Description = &input.Description
	}
	if input.ImageURL != "" {
		category.ImageURL = &input.ImageURL
	}

	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating category")
	}
	s.refreshSnapshot(ctx)
	return created, nil
}

// UpdateCategory replaces a category's fields and refreshes the snapshot.
func (s *service) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*models.Category, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid category id")
	}
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}

	existing, err := s.repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading category")
	}

	existing.Name = input.Name
	existing.Description = nil
	if input.Description != "" {
		existing.Description = &input.Description
	}
	existing.ImageURL = nil
	if input.ImageURL != "" {
		existing.ImageURL = &input.ImageURL
	}

	updated, err := s.repo.UpdateCategory(ctx, existing)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving category")
	}
	s.refreshSnapshot(ctx)
	return updated, nil
}

// DeleteCategory removes a category. Its cakes stay, uncategorized.
func (s *service) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid category id")
	}
	if err := s.repo.DeleteCategory(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting category")
	}
	s.refreshSnapshot(ctx)
	return nil
}

// Dashboard aggregates the numbers shown on the admin landing page.
// Cancelled orders count toward volume but not revenue.
func (s *service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	all, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	cakes, err := s.repo.ListAllCakes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing cakes")
	}

	stats := &DashboardStats{TotalOrders: len(all), TotalCakes: len(cakes)}
	for _, order := range all {
		switch order.Status {
		case enums.OrderStatusPending:
			stats.PendingOrders++
		case enums.OrderStatusDelivered:
			stats.DeliveredOrders++
		}
		if order.Status != enums.OrderStatusCancelled {
			stats.Revenue += order.Total
		}
	}
	return stats, nil
}

func (s *service) cakeFromInput(cake *models.Cake, input CakeInput) (*models.Cake, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cake name is required")
	}
	if input.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if input.DiscountPercentage != nil && (*input.DiscountPercentage < 0 || *input.DiscountPercentage > 100) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount must be between 0 and 100")
	}
	if input.DiscountStartDate != nil && input.DiscountEndDate != nil && input.DiscountEndDate.Before(*input.DiscountStartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount window ends before it starts")
	}

	cake.Name = input.Name
	cake.Description = input.Description
	cake.Price = input.Price
	cake.Available = input.Available
	cake.PreparationTime = input.PreparationTime
	cake.Ingredients = pq.StringArray(input.Ingredients)
	cake.Allergens = pq.StringArray(input.Allergens)
	cake.DiscountPercentage = input.DiscountPercentage
	cake.DiscountStartDate = input.DiscountStartDate
	cake.DiscountEndDate = input.DiscountEndDate

	cake.ImageURL = nil
	if input.ImageURL != "" {
		cake.ImageURL = &input.ImageURL
	}

	cake.CategoryID = nil
	if input.CategoryID != "" {
		categoryID, err := uuid.Parse(input.CategoryID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid category id")
		}
		cake.CategoryID = &categoryID
	}
	return cake, nil
}

func (s *service) refreshSnapshot(ctx context.Context) {
	if err := s.refresher.Refresh(ctx); err != nil {
		s.logg.Error(ctx, "catalog.refresh_after_write", err)
	}
}
