package reviews

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
	"github.com/sweetdelights/cakekart-backend/pkg/pagination"
)

// Repository persists reviews and keeps the denormalized cake stats current.
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

// Create inserts a review row.
func (r *Repository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// FindByID loads one review.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ExistsForUserCakeOrder reports whether the user already reviewed this cake
// for the same order.
func (r *Repository) ExistsForUserCakeOrder(ctx context.Context, userID, cakeID uuid.UUID, orderID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ? AND cake_id = ?", userID, cakeID)
	if orderID != nil {
		query = query.Where("order_id = ?", *orderID)
	} else {
		query = query.Where("order_id IS NULL")
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByCake returns one cursor page of a cake's reviews, newest first. It
// fetches one extra row to detect whether another page exists.
func (r *Repository) ListByCake(ctx context.Context, cakeID uuid.UUID, params pagination.Params) ([]models.Review, string, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}

	limit := pagination.NormalizeLimit(params.Limit)
	query := r.db.WithContext(ctx).
		Where("cake_id = ?", cakeID).
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit))
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []models.Review
	if err := query.Find(&rows).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID.String()})
	}
	return rows, next, nil
}

// IncrementHelpful bumps the helpful counter.
func (r *Repository) IncrementHelpful(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RefreshCakeStats recomputes the cake's average rating and review count from
// its reviews.
func (r *Repository) RefreshCakeStats(ctx context.Context, cakeID uuid.UUID) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("cake_id = ?", cakeID).
		Scan(&stats).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&models.Cake{}).
		Where("id = ?", cakeID).
		Updates(map[string]any{"rating": stats.Avg, "review_count": stats.Count}).Error
}
