// Package session keeps one cart, wishlist, user and checkout per visitor.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/auth"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/cart"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/checkout"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/clock"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/storage"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/wishlist"
	"go.uber.org/zap"
)

const (
	cartKey     = "cart"
	wishlistKey = "wishlist"
	userKey     = "user"
)

type Session struct {
	ID       string
	Cart     *cart.Manager
	Wishlist *wishlist.Manager
	Auth     *auth.Manager
	Checkout *checkout.Flow

	lastSeen time.Time
}

type Options struct {
	Clock      clock.Clock
	Random     clock.Random
	LoginDelay time.Duration
	Payer      checkout.Payer
}

// Registry holds live sessions in memory. Cart, wishlist and user are saved
// to the store so a session can be rebuilt after a restart; checkout state
// is not.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store  storage.Store
	opts   Options
	logger *zap.Logger
}

func NewRegistry(store storage.Store, opts Options, logger *zap.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		store:    store,
		opts:     opts,
		logger:   logger,
	}
}

// NewID returns a fresh session id.
func (r *Registry) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Get returns the live session for id, restoring it from the store the first
// time it is seen.
func (r *Registry) Get(ctx context.Context, id string) *Session {
	now := r.opts.Clock.Now()

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		r.touch(s, now)
		return s
	}

	// Restore outside the lock so store round trips don't hold up other
	// visitors. If two requests race, the first one inserted wins.
	built := r.build(ctx, id)

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.lastSeen = now
		return s
	}

	built.lastSeen = now
	r.sessions[id] = built
	r.logger.Debug("[session] opened", zap.String("session_id", id))
	return built
}

func (r *Registry) touch(s *Session, now time.Time) {
	r.mu.Lock()
	s.lastSeen = now
	r.mu.Unlock()
}

func (r *Registry) build(ctx context.Context, id string) *Session {
	cartRepo := storage.NewRepository[[]models.CartItem](r.store, storage.SessionKey(id, cartKey))
	wishlistRepo := storage.NewRepository[[]models.Product](r.store, storage.SessionKey(id, wishlistKey))
	userRepo := storage.NewRepository[models.User](r.store, storage.SessionKey(id, userKey))

	logger := r.logger.With(zap.String("session_id", id))
	c := cart.NewManager(ctx, cartRepo, logger)

	return &Session{
		ID:       id,
		Cart:     c,
		Wishlist: wishlist.NewManager(ctx, wishlistRepo, logger),
		Auth:     auth.NewManager(ctx, userRepo, r.opts.Clock, r.opts.LoginDelay, logger),
		Checkout: checkout.NewFlow(c, r.opts.Payer, r.opts.Clock, r.opts.Random, logger),
	}
}

// Forget drops the in-memory session. Stored data is left in place.
func (r *Registry) Forget(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Sweep forgets sessions idle for longer than maxIdle and returns how many
// were dropped.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.opts.Clock.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			dropped++
		}
	}
	return dropped
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
