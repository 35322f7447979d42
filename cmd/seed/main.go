package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/catalog"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/clock"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/config"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/services"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/session"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/storage"
	"go.uber.org/zap"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

type seedLine struct {
	productID string
	quantity  int
}

var (
	demoCart     = []seedLine{{"3", 2}, {"5", 1}, {"1", 10}}
	demoWishlist = []string{"8", "12"}
)

// main seeds a demo visitor session with a cart, a wishlist and the signed-in
// demo user, then prints a token for it.
// Usage: go run ./cmd/seed [-login=false]
// The session store must be persistent (file, redis or postgres).
func main() {
	login := flag.Bool("login", true, "sign the demo user in")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("FARMFRESH POULTRY - Demo Session Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg := config.Load()
	if cfg.StorageBackend == "" || cfg.StorageBackend == storage.BackendMemory {
		fmt.Println("❌ STORAGE_BACKEND is memory; a seeded session would be lost on exit")
		fmt.Println("   Set STORAGE_BACKEND to file, redis or postgres")
		os.Exit(1)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	logger, err := config.NewLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	backends, err := config.OpenBackends(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer backends.Close()
	log.Printf("✓ Opened %s store", cfg.StorageBackend)

	products, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	tokens, err := services.NewSessionTokens(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}

	registry := session.NewRegistry(backends.Store, session.Options{
		Clock:  clock.Real(),
		Random: clock.SystemRandom(),
	}, zap.NewNop())

	id := registry.NewID()
	s := registry.Get(ctx, id)
	if err := seed(ctx, s, products, *login); err != nil {
		log.Fatalf("Failed to seed session: %v", err)
	}

	token, err := tokens.Issue(id)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	summary := s.Cart.Summary()
	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Session Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Session:  %s\n", id)
	fmt.Printf("Cart:     %d items, KSh %.2f\n", summary.TotalItems, summary.Subtotal)
	fmt.Printf("Wishlist: %d products\n", s.Wishlist.Summary().Count)
	if user, ok := s.Auth.CurrentUser(); ok {
		fmt.Printf("User:     %s <%s>\n", user.Name, user.Email)
	}
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Send the token as 'Authorization: Bearer <token>'")
	fmt.Println("3. GET /api/v1/cart to see the seeded cart")
	fmt.Println()
}

func seed(ctx context.Context, s *session.Session, products *catalog.Store, login bool) error {
	for _, line := range demoCart {
		p, ok := products.ByID(line.productID)
		if !ok {
			return fmt.Errorf("demo product %s missing from catalog", line.productID)
		}
		if _, err := s.Cart.Add(ctx, p, line.quantity); err != nil {
			return fmt.Errorf("add %s to cart: %w", p.Name, err)
		}
		log.Printf("✓ Added %d × %s", line.quantity, p.Name)
	}

	for _, id := range demoWishlist {
		p, ok := products.ByID(id)
		if !ok {
			return fmt.Errorf("demo product %s missing from catalog", id)
		}
		s.Wishlist.Add(ctx, p)
		log.Printf("✓ Saved %s to wishlist", p.Name)
	}

	if login {
		user, err := s.Auth.Login(ctx, "john@example.com", "demo")
		if err != nil {
			return fmt.Errorf("sign in: %w", err)
		}
		log.Printf("✓ Signed in as %s", user.Name)
	}
	return nil
}
