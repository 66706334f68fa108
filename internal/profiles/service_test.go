package profiles

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
	"github.com/sweetdelights/cakekart-backend/pkg/enums"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
)

func newProfileService(t *testing.T) Service {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:profiles_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Profile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc, err := NewService(NewRepository(conn), logger.New(logger.Options{Level: logger.ParseLevel("error")}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestEnsureCreatesOnFirstVisit(t *testing.T) {
	ctx := context.Background()
	svc := newProfileService(t)
	userID := uuid.NewString()

	created, err := svc.Ensure(ctx, EnsureInput{UserID: userID, Email: "priya@example.com", Name: "Priya", Phone: "+91 9000000000"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if created.Role != enums.UserRoleCustomer {
		t.Errorf("new profiles default to customer, got %s", created.Role)
	}
	if created.FullName == nil || *created.FullName != "Priya" {
		t.Error("name not copied from claims")
	}

	// second visit returns the same row untouched
	again, err := svc.Ensure(ctx, EnsureInput{UserID: userID, Email: "changed@example.com"})
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if again.Email != "priya@example.com" {
		t.Error("ensure must not overwrite an existing profile")
	}
}

func TestEnsureValidation(t *testing.T) {
	ctx := context.Background()
	svc := newProfileService(t)

	_, err := svc.Ensure(ctx, EnsureInput{UserID: "nope", Email: "a@b.com"})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}

	_, err = svc.Ensure(ctx, EnsureInput{UserID: uuid.NewString()})
	if pkgerrors.As(err) == nil {
		t.Fatal("expected error for missing email")
	}
}

func TestUpdateEditsOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc := newProfileService(t)
	userID := uuid.NewString()

	if _, err := svc.Ensure(ctx, EnsureInput{UserID: userID, Email: "priya@example.com", Name: "Priya"}); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	address := "12 MG Road"
	updated, err := svc.Update(ctx, userID, UpdateInput{Address: &address})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Address == nil || *updated.Address != address {
		t.Error("address not updated")
	}
	if updated.FullName == nil || *updated.FullName != "Priya" {
		t.Error("untouched fields must survive the update")
	}
}

func TestUpdateMissingProfile(t *testing.T) {
	ctx := context.Background()
	svc := newProfileService(t)

	_, err := svc.Update(ctx, uuid.NewString(), UpdateInput{})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestSetRole(t *testing.T) {
	ctx := context.Background()
	svc := newProfileService(t)
	userID := uuid.NewString()

	if _, err := svc.Ensure(ctx, EnsureInput{UserID: userID, Email: "priya@example.com"}); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	updated, err := svc.SetRole(ctx, userID, enums.UserRoleAdmin)
	if err != nil {
		t.Fatalf("set role: %v", err)
	}
	if updated.Role != enums.UserRoleAdmin {
		t.Errorf("expected admin, got %s", updated.Role)
	}

	_, err = svc.SetRole(ctx, userID, "superuser")
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc := newProfileService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Ensure(ctx, EnsureInput{UserID: uuid.NewString(), Email: fmt.Sprintf("u%d@example.com", i)}); err != nil {
			t.Fatalf("ensure: %v", err)
		}
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 profiles, got %d", len(all))
	}
}
