// Package auth tracks the signed-in storefront user.
//
// Login is a stub: any non-empty password signs in the demo account. There is
// no credential store behind it and it must not be treated as a security
// boundary.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/clock"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/storage"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("name, email, phone and password are required")
)

type Repository interface {
	Load(ctx context.Context) (models.User, error)
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

// DemoUser is the account every successful login resolves to.
func DemoUser() models.User {
	return models.User{
		ID:    "user-1",
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "+254712345678",
		Address: &models.Address{
			Street:     "123 Main St",
			City:       "Nairobi",
			County:     "Nairobi",
			PostalCode: "00100",
		},
	}
}

type Manager struct {
	mu      sync.Mutex
	user    *models.User
	pending int

	repo   Repository
	clock  clock.Clock
	delay  time.Duration
	logger *zap.Logger
}

// NewManager restores the current user from repo. delay is how long login and
// registration pretend to wait on the network.
func NewManager(ctx context.Context, repo Repository, clk clock.Clock, delay time.Duration, logger *zap.Logger) *Manager {
	m := &Manager{repo: repo, clock: clk, delay: delay, logger: logger}

	user, err := repo.Load(ctx)
	switch {
	case err == nil && user.ID != "":
		m.user = &user
	case err == nil, errors.Is(err, storage.ErrNotFound):
	default:
		logger.Warn("[auth.load] discarding saved user", zap.Error(err))
	}
	return m
}

// Login waits the simulated delay and then signs in the demo user if password
// is non-empty. The email is ignored. If ctx ends during the wait nothing
// changes and ctx.Err() is returned.
func (m *Manager) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := m.wait(ctx); err != nil {
		return models.User{}, err
	}
	if password == "" {
		m.logger.Info("[auth.login] rejected empty password", zap.String("email", email))
		return models.User{}, ErrInvalidCredentials
	}

	user := DemoUser()
	m.setUser(ctx, user)
	m.logger.Info("[auth.login] signed in", zap.String("user_id", user.ID))
	return user, nil
}

// Register waits the simulated delay and signs in a new user built from the
// request. Every field must be non-empty.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := m.wait(ctx); err != nil {
		return models.User{}, err
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		return models.User{}, ErrMissingFields
	}

	user := models.User{
		ID:    uuid.Must(uuid.NewV7()).String(),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	m.setUser(ctx, user)
	m.logger.Info("[auth.register] registered", zap.String("user_id", user.ID))
	return user, nil
}

// Logout clears the user immediately and removes the stored copy.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	if err := m.repo.Clear(ctx); err != nil {
		m.logger.Error("[auth.logout] failed to clear saved user", zap.Error(err))
	}
}

func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

func (m *Manager) IsAuthenticated() bool {
	_, ok := m.CurrentUser()
	return ok
}

// Loading reports whether a login or registration is still waiting.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending > 0
}

func (m *Manager) State() models.AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	state := models.AuthState{Authenticated: m.user != nil, Loading: m.pending > 0}
	if m.user != nil {
		u := *m.user
		state.User = &u
	}
	return state
}

func (m *Manager) wait(ctx context.Context) error {
	m.mu.Lock()
	m.pending++
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.pending--
		m.mu.Unlock()
	}()
	return clock.Sleep(ctx, m.clock, m.delay)
}

func (m *Manager) setUser(ctx context.Context, user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = &user
	if err := m.repo.Save(ctx, user); err != nil {
		m.logger.Error("[auth.persist] failed to save user", zap.Error(err))
	}
}
