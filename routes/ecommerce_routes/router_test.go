package ecommerce_routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/cache"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/catalog"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/checkout"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/clock"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/config"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/content"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/auth_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/cart_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/category_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/checkout_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/content_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/filter_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/form_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/product_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/wishlist_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/services"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/session"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/storage"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

type fakeRelay struct {
	mu       sync.Mutex
	contacts []models.ContactForm
	tours    []models.TourBooking
	err      error
}

func (r *fakeRelay) SubmitContact(_ context.Context, form models.ContactForm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.contacts = append(r.contacts, form)
	return nil
}

func (r *fakeRelay) SubmitTourBooking(_ context.Context, booking models.TourBooking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.tours = append(r.tours, booking)
	return nil
}

type serverOptions struct {
	draw    float64
	limiter gin.HandlerFunc
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	relay  *fakeRelay
	token  string
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()
	logger := zap.NewNop()
	clk := clock.Instant{At: fixedNow}
	rnd := clock.FixedRandom{Value: opts.draw, Int: 417}

	products, err := catalog.Load()
	require.NoError(t, err)
	posts, err := content.Load()
	require.NoError(t, err)
	tokens, err := services.NewSessionTokens("test-secret", time.Hour)
	require.NoError(t, err)

	sim := checkout.NewMobileMoneySimulator(clk, rnd, 0, 0.9, logger)
	registry := session.NewRegistry(storage.NewMemoryStore(), session.Options{
		Clock: clk, Random: rnd, Payer: sim,
	}, logger)

	site := config.Config{ContactEmail: "info@example.com", ContactPhone: "+254700000000"}.Site()
	summaries := category_cache.New(category_cache.TTL)
	relay := &fakeRelay{}

	router := NewRouter(RouterConfig{
		Controllers: Controllers{
			Products:   product_controller.New(products, logger),
			Categories: category_controller.New(products, summaries, logger),
			Filters:    filter_controller.New(products, summaries),
			Cart:       cart_controller.New(products, logger),
			Wishlist:   wishlist_controller.New(products, logger),
			Auth:       auth_controller.New(logger),
			Checkout:   checkout_controller.New(site, category_cache.NewReceipts(category_cache.TTL), logger),
			Content:    content_controller.New(posts, site),
			Forms:      form_controller.New(relay, clk, logger),
		},
		Tokens:         tokens,
		Sessions:       registry,
		SessionOptions: middleware.SessionOptions{TTL: time.Hour},
		AllowedOrigins: []string{"http://localhost:5173"},
		FormLimiter:    opts.limiter,
		Logger:         logger,
	})
	return &testServer{t: t, router: router, relay: relay}
}

type envelope struct {
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Error   bool               `json:"error"`
	Meta    *models.Pagination `json:"meta"`
}

// do sends a request on the server's visitor session, starting one on the
// first call.
func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if issued := w.Header().Get(middleware.SessionHeader); issued != "" {
		s.token = issued
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) (envelope, T) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	var data T
	if len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, &data))
	}
	return env, data
}

func productIDs(products []models.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func validDetails() models.ShippingDetails {
	return models.ShippingDetails{
		FullName: "John Doe",
		Email:    "john@example.com",
		Phone:    "0712345678",
		Address:  "123 Main St",
		City:     "Nairobi",
		County:   "Nairobi",
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", nil).Code)
}

func TestStoreProductsPaginate(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	w := s.do(http.MethodGet, "/api/v1/store/products?limit=5&page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env, products := decode[[]models.Product](t, w)
	assert.Len(t, products, 5)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 16, env.Meta.Total)
	assert.Equal(t, 4, env.Meta.TotalPages)
	assert.Equal(t, 2, env.Meta.Page)

	_, first := decode[[]models.Product](t, s.do(http.MethodGet, "/api/v1/store/products", nil))
	require.NotEmpty(t, first)
	assert.True(t, first[0].Featured, "featured products lead by default")
	assert.Len(t, first, 12)

	_, past := decode[[]models.Product](t, s.do(http.MethodGet, "/api/v1/store/products?page=9", nil))
	assert.Empty(t, past)

	// store routes do not open a session
	assert.Empty(t, s.token)
}

func TestStoreProductsFilterAndSort(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	w := s.do(http.MethodGet, "/api/v1/store/products?category=eggs&sortBy=price-desc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, products := decode[[]models.Product](t, w)
	assert.Equal(t, []string{"4", "3"}, productIDs(products))

	w = s.do(http.MethodGet, "/api/v1/store/products?minPrice=100&maxPrice=500&sortBy=price-asc", nil)
	_, products = decode[[]models.Product](t, w)
	require.NotEmpty(t, products)
	for i, p := range products {
		assert.GreaterOrEqual(t, p.EffectivePrice(), 100.0)
		assert.LessOrEqual(t, p.EffectivePrice(), 500.0)
		if i > 0 {
			assert.LessOrEqual(t, products[i-1].EffectivePrice(), p.EffectivePrice())
		}
	}

	w = s.do(http.MethodGet, "/api/v1/store/products?sortBy=cheapest&minPrice=-4", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env, fields := decode[map[string]string](t, w)
	assert.True(t, env.Error)
	assert.Contains(t, fields, "sortBy")
	assert.Contains(t, fields, "minPrice")
}

func TestStoreProductDetail(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	w := s.do(http.MethodGet, "/api/v1/store/products/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, detail := decode[models.ProductDetail](t, w)
	assert.Equal(t, "Fresh Farm Eggs (Tray of 30)", detail.Name)
	assert.Equal(t, []string{"4"}, productIDs(detail.Related))

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/store/products/999", nil).Code)
}

func TestStoreFeatured(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	_, products := decode[[]models.Product](t, s.do(http.MethodGet, "/api/v1/store/products/featured", nil))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.True(t, p.Featured)
	}
}

func TestStoreSearch(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	_, upper := decode[models.SearchResult](t, s.do(http.MethodGet, "/api/v1/store/search?q=EGG", nil))
	_, lower := decode[models.SearchResult](t, s.do(http.MethodGet, "/api/v1/store/search?q=egg", nil))
	assert.NotZero(t, upper.Count)
	assert.Equal(t, productIDs(lower.Products), productIDs(upper.Products))

	_, short := decode[models.SearchResult](t, s.do(http.MethodGet, "/api/v1/store/search?q=e", nil))
	assert.Zero(t, short.Count)
	assert.NotNil(t, short.Products)
}

func TestStoreCategories(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	_, summaries := decode[[]models.CategorySummary](t, s.do(http.MethodGet, "/api/v1/store/categories", nil))
	require.Len(t, summaries, 4)
	counts := map[models.CategoryID]int{}
	total := 0
	for _, c := range summaries {
		counts[c.ID] = c.ProductCount
		total += c.ProductCount
	}
	assert.Equal(t, 2, counts[models.CategoryEggs])
	assert.Equal(t, 16, total)

	w := s.do(http.MethodGet, "/api/v1/store/categories/eggs?sortBy=price-asc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, eggs := decode[models.CategoryWithProducts](t, w)
	assert.Equal(t, "Eggs", eggs.Category.Name)
	assert.Equal(t, []string{"3", "4"}, productIDs(eggs.Products))

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/store/categories/ducks", nil).Code)

	_, meta := decode[filter_controller.FilterMetadata](t, s.do(http.MethodGet, "/api/v1/store/filters/metadata", nil))
	assert.Len(t, meta.Categories, 4)
	assert.Equal(t, 0.0, meta.PriceRange.Min)
	assert.Equal(t, 10500.0, meta.PriceRange.Max)
}

func TestCartSubtotalAndStock(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "3", Quantity: 2}).Code)
	require.NotEmpty(t, s.token, "first session request issues a token")
	w := s.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "5"})
	require.Equal(t, http.StatusOK, w.Code)

	_, summary := decode[models.CartSummary](t, w)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 1490.0, summary.Subtotal)

	w = s.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "3", Quantity: 150})
	assert.Equal(t, http.StatusConflict, w.Code)
	env, _ := decode[any](t, w)
	assert.Equal(t, "Sorry, only 100 in stock", env.Message)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "404"}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "3", Quantity: -1}).Code)

	zero := 0
	w = s.do(http.MethodPatch, "/api/v1/cart/items/5", models.UpdateCartItemRequest{Quantity: &zero})
	require.Equal(t, http.StatusOK, w.Code)
	_, summary = decode[models.CartSummary](t, w)
	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 840.0, summary.Subtotal)

	w = s.do(http.MethodDelete, "/api/v1/cart", nil)
	_, summary = decode[models.CartSummary](t, w)
	assert.Empty(t, summary.Items)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	s.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "3"})

	other := &testServer{t: t, router: s.router}
	_, summary := decode[models.CartSummary](t, other.do(http.MethodGet, "/api/v1/cart", nil))
	assert.Empty(t, summary.Items)
	assert.NotEqual(t, s.token, other.token)
}

func TestWishlistIsASet(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	s.do(http.MethodPost, "/api/v1/wishlist/items", models.WishlistRequest{ProductID: "3"})
	w := s.do(http.MethodPost, "/api/v1/wishlist/items", models.WishlistRequest{ProductID: "3"})
	env, summary := decode[models.WishlistSummary](t, w)
	assert.Equal(t, "Already in wishlist", env.Message)
	assert.Equal(t, 1, summary.Count)

	_, membership := decode[models.WishlistMembership](t, s.do(http.MethodPost, "/api/v1/wishlist/items/3/toggle", nil))
	assert.False(t, membership.InWishlist)
	_, membership = decode[models.WishlistMembership](t, s.do(http.MethodGet, "/api/v1/wishlist/items/3", nil))
	assert.False(t, membership.InWishlist)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/v1/wishlist/items/404/toggle", nil).Code)
}

func TestAuthStub(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/auth/me", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		s.do(http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "john@example.com"}).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/auth/me", nil).Code)

	w := s.do(http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "anyone@example.com", Password: "x"})
	require.Equal(t, http.StatusOK, w.Code)
	_, user := decode[models.User](t, w)
	assert.Equal(t, "user-1", user.ID)

	_, me := decode[models.User](t, s.do(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, "john@example.com", me.Email)

	// the checkout form picks up the profile
	_, state := decode[models.CheckoutState](t, s.do(http.MethodGet, "/api/v1/checkout", nil))
	assert.Equal(t, "John Doe", state.Details.FullName)
	assert.Equal(t, "00100", state.Details.PostalCode)

	s.do(http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/auth/me", nil).Code)

	w = s.do(http.MethodPost, "/api/v1/auth/register", models.RegisterRequest{Name: "Jane"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(http.MethodPost, "/api/v1/auth/register", models.RegisterRequest{
		Name: "Jane Wanjiru", Email: "jane@example.com", Phone: "0722000000", Password: "pw",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCashCheckout(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	w := s.do(http.MethodPost, "/api/v1/checkout/details", validDetails())
	assert.Equal(t, http.StatusConflict, w.Code, "empty cart")

	s.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "3", Quantity: 2})

	w = s.do(http.MethodPost, "/api/v1/checkout/details", models.ShippingDetails{Email: "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	_, fields := decode[map[string]string](t, w)
	assert.Equal(t, "Please enter a valid email address", fields["email"])
	assert.Contains(t, fields, "fullName")

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/checkout/details", validDetails()).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/checkout/confirmation", nil).Code)

	w = s.do(http.MethodPost, "/api/v1/checkout/payment-method", models.SelectPaymentMethodRequest{Method: models.PaymentCash})
	require.Equal(t, http.StatusOK, w.Code)
	_, state := decode[models.CheckoutState](t, w)
	assert.Equal(t, models.StepConfirmation, state.Step)
	require.NotNil(t, state.Order)
	assert.Equal(t, "ORD000417", state.Order.OrderNumber)
	assert.Equal(t, 840.0, state.Order.Subtotal)

	_, summary := decode[models.CartSummary](t, s.do(http.MethodGet, "/api/v1/cart", nil))
	assert.Empty(t, summary.Items)

	w = s.do(http.MethodGet, "/api/v1/checkout/receipt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "receipt-ORD000417.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	again := s.do(http.MethodGet, "/api/v1/checkout/receipt", nil)
	assert.Equal(t, w.Body.Bytes(), again.Body.Bytes(), "a second download serves the cached receipt")

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/api/v1/checkout/back", nil).Code)
	_, state = decode[models.CheckoutState](t, s.do(http.MethodPost, "/api/v1/checkout/reset", nil))
	assert.Equal(t, models.StepDetails, state.Step)
}

func startMobileMoney(t *testing.T, s *testServer) {
	t.Helper()
	s.do(http.MethodPost, "/api/v1/cart/items", models.AddToCartRequest{ProductID: "5"})
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/checkout/details", validDetails()).Code)
	w := s.do(http.MethodPost, "/api/v1/checkout/payment-method", models.SelectPaymentMethodRequest{Method: models.PaymentMpesa})
	require.Equal(t, http.StatusOK, w.Code)
	_, state := decode[models.CheckoutState](t, w)
	require.Equal(t, models.MobileMoneyIdle, state.MobileMoney.Status)
	require.Equal(t, "0712345678", state.MobileMoney.Phone)
}

func TestMobileMoneySuccess(t *testing.T) {
	s := newTestServer(t, serverOptions{draw: 0.1})
	startMobileMoney(t, s)

	w := s.do(http.MethodPost, "/api/v1/checkout/mobile-money", models.MobileMoneyRequest{Phone: "12345"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	_, fields := decode[map[string]string](t, w)
	assert.Contains(t, fields, "phone")

	w = s.do(http.MethodPost, "/api/v1/checkout/mobile-money", models.MobileMoneyRequest{Phone: "254712345678"})
	require.Equal(t, http.StatusOK, w.Code)
	_, state := decode[models.CheckoutState](t, w)
	assert.Equal(t, models.StepConfirmation, state.Step)
	require.NotNil(t, state.Order)
	assert.Equal(t, "MPESA20240115103000417", state.Order.PaymentReference)
	assert.Equal(t, models.PaymentMpesa, state.Order.PaymentMethod)
}

func TestMobileMoneyDeclineAndRetry(t *testing.T) {
	s := newTestServer(t, serverOptions{draw: 0.95})
	startMobileMoney(t, s)

	w := s.do(http.MethodPost, "/api/v1/checkout/mobile-money", models.MobileMoneyRequest{Phone: "0712345678"})
	require.Equal(t, http.StatusPaymentRequired, w.Code)
	env, state := decode[models.CheckoutState](t, w)
	assert.Equal(t, checkout.DeclinedMessage, env.Message)
	assert.Equal(t, models.MobileMoneyFailed, state.MobileMoney.Status)

	// a failed form must be retried before paying again
	assert.Equal(t, http.StatusConflict,
		s.do(http.MethodPost, "/api/v1/checkout/mobile-money", models.MobileMoneyRequest{Phone: "0712345678"}).Code)

	_, state = decode[models.CheckoutState](t, s.do(http.MethodPost, "/api/v1/checkout/mobile-money/retry", nil))
	assert.Equal(t, models.MobileMoneyIdle, state.MobileMoney.Status)
	assert.Equal(t, "0712345678", state.MobileMoney.Phone)

	_, state = decode[models.CheckoutState](t, s.do(http.MethodPost, "/api/v1/checkout/mobile-money/cancel", nil))
	assert.Equal(t, models.MobileMoneyClosed, state.MobileMoney.Status)
	assert.Empty(t, state.PaymentMethod)

	_, state = decode[models.CheckoutState](t, s.do(http.MethodPost, "/api/v1/checkout/back", nil))
	assert.Equal(t, models.StepDetails, state.Step)
	assert.Equal(t, "John Doe", state.Details.FullName)
}

func TestContentRoutes(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	_, posts := decode[[]models.BlogPost](t, s.do(http.MethodGet, "/api/v1/content/blog", nil))
	require.Len(t, posts, 6)
	assert.False(t, posts[0].PublishedAt.Before(posts[len(posts)-1].PublishedAt))

	_, featured := decode[[]models.BlogPost](t, s.do(http.MethodGet, "/api/v1/content/blog?featured=true", nil))
	assert.Len(t, featured, 3)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/content/blog/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/content/blog/99", nil).Code)

	_, faq := decode[[]models.FAQ](t, s.do(http.MethodGet, "/api/v1/content/faq", nil))
	assert.Len(t, faq, 10)

	_, about := decode[models.AboutPage](t, s.do(http.MethodGet, "/api/v1/content/about", nil))
	assert.Len(t, about.Values, 4)

	_, site := decode[models.SiteConfig](t, s.do(http.MethodGet, "/api/v1/site", nil))
	assert.Equal(t, "KSh", site.Currency)
	assert.Equal(t, "info@example.com", site.Contact.Email)
	assert.Equal(t, 300000.0, site.MobileMoney.MaxAmount)
}

func TestContactForm(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	form := models.ContactForm{
		Name:    "Jane Wanjiru",
		Email:   "jane@example.com",
		Subject: "Bulk order",
		Message: "I would like 200 layer chicks <script>alert(1)</script>next month.",
	}

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/forms/contact", form).Code)
	require.Len(t, s.relay.contacts, 1)
	assert.NotContains(t, s.relay.contacts[0].Message, "<script>")

	w := s.do(http.MethodPost, "/api/v1/forms/contact", models.ContactForm{Name: "J", Message: "short"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	_, fields := decode[map[string]string](t, w)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "message")

	s.relay.err = errors.New("dial tcp: timeout")
	assert.Equal(t, http.StatusBadGateway, s.do(http.MethodPost, "/api/v1/forms/contact", form).Code)
}

func TestTourBookingForm(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	booking := models.TourBooking{
		Name:      "Jane Wanjiru",
		Email:     "jane@example.com",
		Phone:     "0712345678",
		Date:      "2024-02-01",
		Time:      "10:00",
		GroupSize: 4,
	}

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/forms/tour-booking", booking).Code)
	require.Len(t, s.relay.tours, 1)

	booking.Date = "2024-01-01"
	booking.Time = "12:00"
	booking.GroupSize = 11
	w := s.do(http.MethodPost, "/api/v1/forms/tour-booking", booking)
	require.Equal(t, http.StatusBadRequest, w.Code)
	_, fields := decode[map[string]string](t, w)
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "time")
	assert.Contains(t, fields, "groupSize")
}

func TestFormsRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := newTestServer(t, serverOptions{limiter: middleware.RateLimiter(client, 1, time.Minute, zap.NewNop())})
	form := models.ContactForm{
		Name: "Jane Wanjiru", Email: "jane@example.com", Subject: "Hi", Message: "Do you deliver to Nakuru?",
	}

	w := s.do(http.MethodPost, "/api/v1/forms/contact", form)
	require.Equal(t, http.StatusOK, w.Code)
	env, _ := decode[any](t, w)
	assert.NotContains(t, env.Message, "Too many")

	assert.Equal(t, http.StatusTooManyRequests, s.do(http.MethodPost, "/api/v1/forms/contact", form).Code)
	assert.Len(t, s.relay.contacts, 1)
}
