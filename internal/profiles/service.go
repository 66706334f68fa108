package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
)

// Service exposes profile reads and writes. Accounts are created by the
// hosted auth provider; the first authenticated request materializes the
// local profile row.
type Service interface {
	Ensure(ctx context.Context, input EnsureInput) (*models.Profile, error)
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, input UpdateInput) (*models.Profile, error)
	SetRole(ctx context.Context, userID string, role enums.UserRole) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
}

// EnsureInput carries the identity claims of an authenticated request.
type EnsureInput struct {
	UserID string
	Email  string
	Name   string
	Phone  string
}

// UpdateInput carries the editable profile fields. Nil leaves a field
// untouched.
type UpdateInput struct {
	FullName  *string
	Phone     *string
	Address   *string
	AvatarURL *string
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

// NewService wires the profile flow.
func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("profile repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// Ensure loads the profile, creating it from the auth claims when this is the
// account's first visit.
func (s *service) Ensure(ctx context.Context, input EnsureInput) (*models.Profile, error) {
	id, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid user id")
	}
	if input.Email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading profile")
	}

	profile := &models.Profile{
		ID:    id,
		Email: input.Email,
		Role:  enums.UserRoleCustomer,
	}
	if input.Name != "" {
		profile.FullName = &input.Name
	}
	if input.Phone != "" {
		profile.Phone = &input.Phone
	}

	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating profile")
	}
	s.logg.Info(s.logg.WithField(ctx, "user_id", created.ID.String()), "profile created on first visit")
	return created, nil
}

// Get loads one profile.
func (s *service) Get(ctx context.Context, userID string) (*models.Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user id")
	}
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading profile")
	}
	return profile, nil
}

// Update edits the caller's own profile fields.
func (s *service) Update(ctx context.Context, userID string, input UpdateInput) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		profile.FullName = input.FullName
	}
	if input.Phone != nil {
		profile.Phone = input.Phone
	}
	if input.Address != nil {
		profile.Address = input.Address
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = input.AvatarURL
	}

	updated, err := s.repo.Update(ctx, profile)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving profile")
	}
	return updated, nil
}

// SetRole changes an account's role. Only the back-office calls this.
func (s *service) SetRole(ctx context.Context, userID string, role enums.UserRole) (*models.Profile, error) {
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown role %q", role))
	}
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Role = role
	updated, err := s.repo.Update(ctx, profile)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving profile role")
	}
	return updated, nil
}

// List returns every profile for the back-office.
func (s *service) List(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing profiles")
	}
	return profiles, nil
}
