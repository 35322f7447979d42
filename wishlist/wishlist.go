// Package wishlist keeps a visitor's saved-for-later products.
package wishlist

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/storage"
	"go.uber.org/zap"
)

type Repository interface {
	Load(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, items []models.Product) error
}

// Manager holds a set of products keyed by id, in the order they were added.
type Manager struct {
	mu     sync.Mutex
	items  []models.Product
	repo   Repository
	logger *zap.Logger
}

func NewManager(ctx context.Context, repo Repository, logger *zap.Logger) *Manager {
	m := &Manager{repo: repo, logger: logger}

	items, err := repo.Load(ctx)
	switch {
	case err == nil:
		seen := make(map[string]bool, len(items))
		for _, p := range items {
			if p.ID == "" || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			m.items = append(m.items, p)
		}
	case errors.Is(err, storage.ErrNotFound):
	default:
		logger.Warn("[wishlist.load] discarding saved wishlist", zap.Error(err))
	}
	return m
}

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.items, func(p models.Product) bool { return p.ID == id })
}

// Add saves product. It reports false when the product was already present.
func (m *Manager) Add(ctx context.Context, product models.Product) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(product.ID) >= 0 {
		return false
	}
	m.items = append(m.items, product)
	m.persist(ctx)
	return true
}

// Remove drops a product. Unknown ids are ignored.
func (m *Manager) Remove(ctx context.Context, productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(productID)
	if i < 0 {
		return
	}
	m.items = slices.Delete(m.items, i, i+1)
	m.persist(ctx)
}

// Toggle adds product if absent and removes it otherwise. It returns whether
// the product is in the wishlist afterwards.
func (m *Manager) Toggle(ctx context.Context, product models.Product) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(product.ID); i >= 0 {
		m.items = slices.Delete(m.items, i, i+1)
		m.persist(ctx)
		return false
	}
	m.items = append(m.items, product)
	m.persist(ctx)
	return true
}

func (m *Manager) Contains(productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexOf(productID) >= 0
}

func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.persist(ctx)
}

func (m *Manager) Items() []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(make([]models.Product, 0, len(m.items)), m.items...)
}

func (m *Manager) Summary() models.WishlistSummary {
	items := m.Items()
	return models.WishlistSummary{Items: items, Count: len(items)}
}

func (m *Manager) persist(ctx context.Context) {
	snapshot := append(make([]models.Product, 0, len(m.items)), m.items...)
	if err := m.repo.Save(ctx, snapshot); err != nil {
		m.logger.Error("[wishlist.persist] failed to save wishlist", zap.Error(err))
	}
}
