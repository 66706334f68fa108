package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sweetdelights/cakekart-backend/pkg/migrate"
)

func TestValidateDirAcceptsRepoMigrations(t *testing.T) {
	if err := migrate.ValidateDir(filepath.Join("..", "..", "migrations")); err != nil {
		t.Fatalf("ValidateDir: %v", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "001_bad_version.sql")
	if err := os.WriteFile(path, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := migrate.ValidateDir(dir)
	if err == nil || !strings.Contains(err.Error(), "invalid migration filename") {
		t.Fatalf("expected filename error, got %v", err)
	}
}

func TestValidateDirRejectsMissingHeaders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "20250403090000_no_down.sql")
	if err := os.WriteFile(path, []byte("-- +goose Up\nSELECT 1;\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := migrate.ValidateDir(dir)
	if err == nil || !strings.Contains(err.Error(), "+goose Down") {
		t.Fatalf("expected missing Down error, got %v", err)
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := migrate.CreateSQLMigration(dir, "Add Cake Fields!")
	if err != nil {
		t.Fatalf("CreateSQLMigration: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasSuffix(base, "_add_cake_fields.sql") {
		t.Errorf("unexpected filename %q", base)
	}

	if err := migrate.ValidateDir(dir); err != nil {
		t.Errorf("generated migration fails validation: %v", err)
	}
}
