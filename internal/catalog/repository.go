package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
)

// Loader is the read surface the snapshot service refreshes from.
type Loader interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListAvailableCakes(ctx context.Context) ([]models.Cake, error)
}

// Repository wires together cake and category persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListCategories returns every category ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListAvailableCakes returns purchasable cakes with their category, newest
// first.
func (r *Repository) ListAvailableCakes(ctx context.Context) ([]models.Cake, error) {
	var cakes []models.Cake
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("available = ?", true).
		Order("created_at DESC").
		Find(&cakes).Error; err != nil {
		return nil, err
	}
	return cakes, nil
}

// ListAllCakes returns every cake regardless of availability, for the admin
// back-office.
func (r *Repository) ListAllCakes(ctx context.Context) ([]models.Cake, error) {
	var cakes []models.Cake
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Find(&cakes).Error; err != nil {
		return nil, err
	}
	return cakes, nil
}

// FindCakeByID loads one cake with its category.
func (r *Repository) FindCakeByID(ctx context.Context, id uuid.UUID) (*models.Cake, error) {
	var cake models.Cake
	if err := r.db.WithContext(ctx).Preload("Category").First(&cake, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cake, nil
}

// CreateCake inserts a new cake row.
func (r *Repository) CreateCake(ctx context.Context, cake *models.Cake) (*models.Cake, error) {
	if err := r.db.WithContext(ctx).Create(cake).Error; err != nil {
		return nil, err
	}
	return cake, nil
}

// UpdateCake saves the full cake row.
func (r *Repository) UpdateCake(ctx context.Context, cake *models.Cake) (*models.Cake, error) {
	if err := r.db.WithContext(ctx).Save(cake).Error; err != nil {
		return nil, err
	}
	return cake, nil
}

// DeleteCake removes a cake row.
func (r *Repository) DeleteCake(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Cake{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindCategoryByID loads one category.
func (r *Repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a new category row.
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory saves the full category row.
func (r *Repository) UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category row. Cakes keep their rows and fall back
// to a null category.
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
