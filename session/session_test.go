package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/checkout"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/clock"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var eggs = models.Product{
	ID: "3", Name: "Fresh Farm Eggs (Tray of 30)", Category: models.CategoryEggs,
	Price: 450, Images: []string{"/eggs.jpg"}, Stock: 100,
}

type movableClock struct{ now time.Time }

func (c *movableClock) Now() time.Time { return c.now }
func (c *movableClock) After(time.Duration) <-chan time.Time {
	return clock.Instant{At: c.now}.After(0)
}

func newRegistry(store storage.Store, clk clock.Clock) *Registry {
	sim := checkout.NewMobileMoneySimulator(clk, clock.FixedRandom{}, 0, 1, zap.NewNop())
	return NewRegistry(store, Options{Clock: clk, Random: clock.FixedRandom{}, Payer: sim}, zap.NewNop())
}

func TestGetReturnsSameSession(t *testing.T) {
	r := newRegistry(storage.NewMemoryStore(), clock.Instant{})
	id := r.NewID()

	a := r.Get(context.Background(), id)
	b := r.Get(context.Background(), id)
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Len())
	assert.NotSame(t, a, r.Get(context.Background(), r.NewID()))
}

// gatedStore holds reads of keys containing slow until release is closed.
type gatedStore struct {
	storage.Store
	slow    string
	entered chan struct{}
	release chan struct{}
}

func (s *gatedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if strings.Contains(key, s.slow) {
		select {
		case s.entered <- struct{}{}:
		default:
		}
		<-s.release
	}
	return s.Store.Get(ctx, key)
}

func TestRestoreDoesNotBlockOtherVisitors(t *testing.T) {
	ctx := context.Background()
	store := &gatedStore{
		Store:   storage.NewMemoryStore(),
		slow:    "slow",
		entered: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
	r := newRegistry(store, clock.Instant{})
	live := r.Get(ctx, "live")

	restored := make(chan *Session, 2)
	for range 2 {
		go func() { restored <- r.Get(ctx, "slow") }()
	}
	<-store.entered

	served := make(chan *Session, 1)
	go func() { served <- r.Get(ctx, "live") }()
	select {
	case s := <-served:
		assert.Same(t, live, s)
	case <-time.After(2 * time.Second):
		t.Fatal("a live session waited on another visitor's restore")
	}
	assert.NotNil(t, r.Get(ctx, "fresh"))

	close(store.release)
	a, b := <-restored, <-restored
	assert.Same(t, a, b, "racing restores share one session")
	assert.Equal(t, 3, r.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(storage.NewMemoryStore(), clock.Instant{})

	a := r.Get(ctx, "a")
	b := r.Get(ctx, "b")
	_, err := a.Cart.Add(ctx, eggs, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Cart.TotalItems())
	assert.True(t, b.Cart.IsEmpty())
}

func TestSessionRestoredFromStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := newRegistry(store, clock.Instant{})
	s := first.Get(ctx, "visitor")
	_, err := s.Cart.Add(ctx, eggs, 3)
	require.NoError(t, err)
	s.Wishlist.Add(ctx, eggs)
	_, err = s.Auth.Login(ctx, "john@example.com", "pw")
	require.NoError(t, err)

	raw, err := store.Get(ctx, "session:visitor:cart")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"quantity":3`)

	restored := newRegistry(store, clock.Instant{}).Get(ctx, "visitor")
	assert.Equal(t, 3, restored.Cart.TotalItems())
	assert.True(t, restored.Wishlist.Contains("3"))
	assert.True(t, restored.Auth.IsAuthenticated())
	assert.Equal(t, models.StepDetails, restored.Checkout.State().Step)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	clk := &movableClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	r := newRegistry(storage.NewMemoryStore(), clk)

	r.Get(context.Background(), "old")
	clk.now = clk.now.Add(2 * time.Hour)
	r.Get(context.Background(), "fresh")

	assert.Equal(t, 1, r.Sweep(time.Hour))
	assert.Equal(t, 1, r.Len())

	r.Forget("fresh")
	assert.Zero(t, r.Len())
}
