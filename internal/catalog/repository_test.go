package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Cake{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM cakes")
		db.Exec("DELETE FROM categories")
	})
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, models.Category) {
	t.Helper()
	birthday := models.Category{Name: "Birthday"}
	wedding := models.Category{Name: "Wedding"}
	if err := db.Create(&birthday).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if err := db.Create(&wedding).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	cakes := []models.Cake{
		{Name: "Black Forest", Description: "cherries and cream", Price: 599, Available: true, CategoryID: &birthday.ID, Ingredients: pq.StringArray{"chocolate", "cherry"}, CreatedAt: time.Now().Add(-2 * time.Hour)},
		{Name: "Red Velvet", Description: "cream cheese frosting", Price: 749, Available: true, CategoryID: &wedding.ID, CreatedAt: time.Now().Add(-1 * time.Hour)},
		{Name: "Retired Mango", Description: "seasonal", Price: 499, Available: false, CategoryID: &birthday.ID, CreatedAt: time.Now()},
	}
	for i := range cakes {
		if err := db.Create(&cakes[i]).Error; err != nil {
			t.Fatalf("seed cake: %v", err)
		}
	}
	return birthday, wedding
}

func TestListCategoriesOrderedByName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db)

	if err := db.Create(&models.Category{Name: "Wedding"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&models.Category{Name: "Birthday"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Birthday" || got[1].Name != "Wedding" {
		t.Errorf("categories not ordered by name: %+v", got)
	}
}

func TestListAvailableCakesFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db)
	seedCatalog(t, db)

	got, err := repo.ListAvailableCakes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 available cakes, got %d", len(got))
	}
	if got[0].Name != "Red Velvet" || got[1].Name != "Black Forest" {
		t.Errorf("cakes not ordered newest first: %s, %s", got[0].Name, got[1].Name)
	}
	if got[1].Category == nil || got[1].Category.Name != "Birthday" {
		t.Error("category not preloaded")
	}
	if len(got[1].Ingredients) != 2 {
		t.Errorf("ingredients did not round-trip: %v", got[1].Ingredients)
	}
}

func TestCakeCRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db)

	created, err := repo.CreateCake(ctx, &models.Cake{Name: "Pineapple", Price: 449, Available: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}

	created.Price = 499
	if _, err := repo.UpdateCake(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, err := repo.FindCakeByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if loaded.Price != 499 {
		t.Errorf("update not persisted, price=%d", loaded.Price)
	}

	if err := repo.DeleteCake(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteCake(ctx, created.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("expected record-not-found on second delete, got %v", err)
	}
}

func TestDeleteCategoryMissing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db)

	if err := repo.DeleteCategory(ctx, uuid.New()); err != gorm.ErrRecordNotFound {
		t.Errorf("expected record-not-found, got %v", err)
	}
}
