package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sweetdelights/cakekart-backend/internal/orders"
	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/pagination"
)

// Service exposes per-user notifications and receives order lifecycle events.
type Service interface {
	orders.Notifier
	Create(ctx context.Context, input CreateInput) (*models.Notification, error)
	ListForUser(ctx context.Context, userID string, params pagination.Params) (*Page, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

// CreateInput carries a notification to store.
type CreateInput struct {
	UserID    string
	Type      enums.NotificationType
	Title     string
	Message   string
	RelatedID string
}

// Page is one cursor page of notifications.
type Page struct {
	Notifications []models.Notification `json:"notifications"`
	NextCursor    string                `json:"next_cursor,omitempty"`
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

// NewService wires the notification flow.
func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// Create validates and stores a notification.
func (s *service) Create(ctx context.Context, input CreateInput) (*models.Notification, error) {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user id")
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown notification type %q", input.Type))
	}
	if input.Title == "" || input.Message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title and message are required")
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
	}
	if input.RelatedID != "" {
		notification.RelatedID = &input.RelatedID
	}

	if _, err := s.repo.Create(ctx, notification); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving notification")
	}
	return notification, nil
}

// OrderPlaced records a confirmation message for the customer. Failures are
// logged and swallowed; an order never fails because its notification did.
func (s *service) OrderPlaced(ctx context.Context, order *orders.Order) {
	s.record(ctx, CreateInput{
		UserID:    order.CustomerID,
		Type:      enums.NotificationTypeOrderPlaced,
		Title:     "Order placed",
		Message:   fmt.Sprintf("We received your order for ₹%d. We'll confirm it shortly.", order.Total),
		RelatedID: order.ID,
	})
}

// OrderStatusChanged records a progress update for the customer.
func (s *service) OrderStatusChanged(ctx context.Context, order *orders.Order) {
	s.record(ctx, CreateInput{
		UserID:    order.CustomerID,
		Type:      enums.NotificationTypeOrderStatus,
		Title:     "Order update",
		Message:   fmt.Sprintf("Your order is now %s.", order.Status),
		RelatedID: order.ID,
	})
}

func (s *service) record(ctx context.Context, input CreateInput) {
	if _, err := uuid.Parse(input.UserID); err != nil {
		// demo ledger entries carry non-uuid customer ids
		s.logg.Debug(ctx, "skipping notification for non-uuid user")
		return
	}
	if _, err := s.Create(ctx, input); err != nil {
		s.logg.Error(ctx, "notifications.record", err)
	}
}

// ListForUser returns one page of the user's notifications.
func (s *service) ListForUser(ctx context.Context, userID string, params pagination.Params) (*Page, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to view notifications")
	}
	if _, err := pagination.ParseCursor(params.Cursor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	rows, next, err := s.repo.ListForUser(ctx, id, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing notifications")
	}
	return &Page{Notifications: rows, NextCursor: next}, nil
}

// UnreadCount returns the user's unread notification count.
func (s *service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to view notifications")
	}
	count, err := s.repo.CountUnread(ctx, id)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting notifications")
	}
	return count, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *service) MarkRead(ctx context.Context, userID, notificationID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to view notifications")
	}
	nid, err := uuid.Parse(notificationID)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid notification id")
	}

	if err := s.repo.MarkRead(ctx, uid, nid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marking notification read")
	}
	return nil
}

// MarkAllRead flags every unread notification for the user.
func (s *service) MarkAllRead(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to view notifications")
	}
	if err := s.repo.MarkAllRead(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marking notifications read")
	}
	return nil
}
