package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sweetdelights/cakekart-backend/pkg/db/models"
	pkgerrors "github.com/sweetdelights/cakekart-backend/pkg/errors"
	"github.com/sweetdelights/cakekart-backend/pkg/logger"
)

// Status describes the snapshot freshness exposed alongside reads.
type Status struct {
	Loading bool
	Err     error
}

// Service serves catalog reads from an in-memory snapshot that Refresh
// rebuilds from the database.
type Service interface {
	Refresh(ctx context.Context) error
	Cakes() []models.Cake
	Categories() []models.Category
	Status() Status
	CakeByID(id string) (*models.Cake, bool)
	CakesByCategory(categoryID string) []models.Cake
	Search(query string) []models.Cake
}

type service struct {
	loader Loader
	logg   *logger.Logger

	mu         sync.RWMutex
	cakes      []models.Cake
	categories []models.Category
	loading    bool
	err        error
	seq        uint64
}

// NewService builds the snapshot service. The snapshot starts empty; call
// Refresh before serving reads.
func NewService(loader Loader, logg *logger.Logger) (Service, error) {
	if loader == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{loader: loader, logg: logg}, nil
}

// Refresh rebuilds the snapshot. Concurrent refreshes are safe: a fetch that
// finishes after a newer one started is discarded so the snapshot never moves
// backwards.
func (s *service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	mySeq := s.seq
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	categories, catErr := s.loader.ListCategories(ctx)
	var cakes []models.Cake
	var cakeErr error
	if catErr == nil {
		cakes, cakeErr = s.loader.ListAvailableCakes(ctx)
	}

	fetchErr := catErr
	if fetchErr == nil {
		fetchErr = cakeErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if mySeq != s.seq {
		// a newer refresh superseded this one
		return nil
	}
	s.loading = false
	if fetchErr != nil {
		s.err = fetchErr
		s.logg.Error(ctx, "catalog.refresh", fetchErr)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, fetchErr, "refreshing catalog")
	}
	s.categories = categories
	s.cakes = cakes
	return nil
}

// Cakes returns the snapshot's purchasable cakes, newest first.
func (s *service) Cakes() []models.Cake {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Cake, len(s.cakes))
	copy(out, s.cakes)
	return out
}

// Categories returns the snapshot's categories ordered by name.
func (s *service) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Status reports whether a refresh is in flight and the last refresh error.
func (s *service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{Loading: s.loading, Err: s.err}
}

// CakeByID finds a cake in the snapshot.
func (s *service) CakeByID(id string) (*models.Cake, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.cakes {
		if s.cakes[i].ID.String() == id {
			cake := s.cakes[i]
			return &cake, true
		}
	}
	return nil, false
}

// CakesByCategory filters the snapshot by category id.
func (s *service) CakesByCategory(categoryID string) []models.Cake {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]models.Cake, 0)
	for _, cake := range s.cakes {
		if cake.CategoryID != nil && cake.CategoryID.String() == categoryID {
			matched = append(matched, cake)
		}
	}
	return matched
}

// Search matches case-insensitively against name, description and
// ingredients.
func (s *service) Search(query string) []models.Cake {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return s.Cakes()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]models.Cake, 0)
	for _, cake := range s.cakes {
		if cakeMatches(cake, needle) {
			matched = append(matched, cake)
		}
	}
	return matched
}

func cakeMatches(cake models.Cake, needle string) bool {
	if strings.Contains(strings.ToLower(cake.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(cake.Description), needle) {
		return true
	}
	for _, ingredient := range cake.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), needle) {
			return true
		}
	}
	return false
}
