package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/sweetdelights/cakekart-backend/pkg/db"
	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/pagination"
)

// Service exposes review reads and writes.
type Service interface {
	Add(ctx context.Context, input AddReviewInput) (*models.Review, error)
	ListByCake(ctx context.Context, cakeID string, params pagination.Params) (*Page, error)
	MarkHelpful(ctx context.Context, reviewID string) error
}

// AddReviewInput captures a new review.
type AddReviewInput struct {
	UserID  string
	CakeID  string
	OrderID string
	Rating  int
	Comment string
	Images  []string
}

// Page is one cursor page of reviews.
type Page struct {
	Reviews    []models.Review `json:"reviews"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

type service struct {
	repo   *Repository
	client *db.Client
	logg   *logger.Logger
}

// NewService wires the review flow.
func NewService(repo *Repository, client *db.Client, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("review repository required")
	}
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, client: client, logg: logg}, nil
}

// Add validates and stores the review, refreshing the cake's rating and
// review count in the same transaction.
func (s *service) Add(ctx context.Context, input AddReviewInput) (*models.Review, error) {
	if input.UserID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to leave a review")
	}
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user id")
	}
	cakeID, err := uuid.Parse(input.CakeID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cake id")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	var orderID *uuid.UUID
	if input.OrderID != "" {
		parsed, err := uuid.Parse(input.OrderID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order id")
		}
		orderID = &parsed
	}

	review := &models.Review{
		CakeID:  cakeID,
		UserID:  userID,
		OrderID: orderID,
		Rating:  input.Rating,
		Images:  pq.StringArray(input.Images),
	}
	if input.Comment != "" {
		review.Comment = &input.Comment
	}

	err = s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		exists, err := repo.ExistsForUserCakeOrder(ctx, userID, cakeID, orderID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking existing review")
		}
		if exists {
			return pkgerrors.New(pkgerrors.CodeConflict, "you have already reviewed this cake")
		}

		if _, err := repo.Create(ctx, review); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving review")
		}
		if err := repo.RefreshCakeStats(ctx, cakeID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating cake rating")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListByCake returns one page of a cake's reviews.
func (s *service) ListByCake(ctx context.Context, cakeID string, params pagination.Params) (*Page, error) {
	id, err := uuid.Parse(cakeID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cake id")
	}
	if _, err := pagination.ParseCursor(params.Cursor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	rows, next, err := s.repo.ListByCake(ctx, id, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing reviews")
	}
	return &Page{Reviews: rows, NextCursor: next}, nil
}

// MarkHelpful bumps the review's helpful counter.
func (s *service) MarkHelpful(ctx context.Context, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid review id")
	}
	if err := s.repo.IncrementHelpful(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marking review helpful")
	}
	return nil
}
