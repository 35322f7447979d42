// Package cart manages a visitor's shopping cart with write-through
// persistence.
package cart

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Repository is where the cart snapshot is mirrored after every change.
type Repository interface {
	Load(ctx context.Context) ([]models.CartItem, error)
	Save(ctx context.Context, items []models.CartItem) error
}

type Manager struct {
	mu     sync.Mutex
	items  []models.CartItem
	repo   Repository
	logger *zap.Logger
}

// NewManager restores the cart from repo. A missing or unreadable snapshot
// starts an empty cart.
func NewManager(ctx context.Context, repo Repository, logger *zap.Logger) *Manager {
	m := &Manager{repo: repo, logger: logger}

	items, err := repo.Load(ctx)
	switch {
	case err == nil:
		m.items = sanitize(items)
	case errors.Is(err, storage.ErrNotFound):
	default:
		logger.Warn("[cart.load] discarding saved cart", zap.Error(err))
	}
	return m
}

// sanitize drops lines that break the cart invariants, which can only come
// from a hand-edited or stale snapshot.
func sanitize(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Product.ID == "" || seen[it.Product.ID] || it.Quantity <= 0 || it.Quantity > it.Product.Stock {
			continue
		}
		seen[it.Product.ID] = true
		out = append(out, it)
	}
	return out
}

func (m *Manager) indexOf(productID string) int {
	return slices.IndexFunc(m.items, func(it models.CartItem) bool {
		return it.Product.ID == productID
	})
}

// Add puts quantity more of product in the cart. If the resulting line would
// exceed the product's stock the call fails with a *StockError and nothing
// changes.
func (m *Manager) Add(ctx context.Context, product models.Product, quantity int) (models.CartItem, error) {
	if quantity <= 0 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(product.ID)
	next := quantity
	if i >= 0 {
		next += m.items[i].Quantity
	}
	if next > product.Stock {
		m.logger.Info("[cart.add] rejected",
			zap.String("product_id", product.ID),
			zap.Int("requested", next),
			zap.Int("stock", product.Stock),
		)
		return models.CartItem{}, &StockError{ProductID: product.ID, Requested: next, Available: product.Stock}
	}

	var item models.CartItem
	if i >= 0 {
		m.items[i].Quantity = next
		item = m.items[i]
	} else {
		item = models.CartItem{Product: product, Quantity: next}
		m.items = append(m.items, item)
	}
	m.persist(ctx)

	m.logger.Debug("[cart.add] added",
		zap.String("product_id", product.ID),
		zap.Int("quantity", item.Quantity),
	)
	return item, nil
}

// UpdateQuantity sets a line to exactly quantity. Zero or less removes the
// line. An id that is not in the cart is ignored.
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(productID)
	if i < 0 {
		return nil
	}
	stock := m.items[i].Product.Stock
	if quantity > stock {
		return &StockError{ProductID: productID, Requested: quantity, Available: stock}
	}
	if quantity <= 0 {
		m.items = slices.Delete(m.items, i, i+1)
	} else {
		m.items[i].Quantity = quantity
	}
	m.persist(ctx)
	return nil
}

// Remove deletes a line. Removing an id that is not in the cart is a no-op.
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

func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	m.persist(ctx)
}

func (m *Manager) Items() []models.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(make([]models.CartItem, 0, len(m.items)), m.items...)
}

func (m *Manager) IsEmpty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items) == 0
}

func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return totalItems(m.items)
}

func (m *Manager) Subtotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return subtotal(m.items)
}

// Summary reads items and totals under one lock so they agree.
func (m *Manager) Summary() models.CartSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.CartSummary{
		Items:      append(make([]models.CartItem, 0, len(m.items)), m.items...),
		TotalItems: totalItems(m.items),
		Subtotal:   subtotal(m.items),
	}
}

func totalItems(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Subtotal sums in decimal so that line totals like 0.1 * 3 add up exactly.
func Subtotal(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Product.EffectivePrice()).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}

func subtotal(items []models.CartItem) float64 {
	return Subtotal(items).InexactFloat64()
}

// persist mirrors the current items to the repository. Memory stays the
// source of truth, so a failed write is logged and not returned.
func (m *Manager) persist(ctx context.Context) {
	snapshot := append(make([]models.CartItem, 0, len(m.items)), m.items...)
	if err := m.repo.Save(ctx, snapshot); err != nil {
		m.logger.Error("[cart.persist] failed to save cart", zap.Error(err))
	}
}
