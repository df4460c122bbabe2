package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/glowmora/storefront-api/cart"
	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/orders"
	"github.com/glowmora/storefront-api/payment"
	"github.com/glowmora/storefront-api/routes"
	"github.com/glowmora/storefront-api/store"
	"github.com/glowmora/storefront-api/wishlist"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Verification{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Snapshot store for cart, wishlist, orders, catalog and settings
	kv := initStore()

	cartSvc := cart.NewService(kv)
	wishlistSvc := wishlist.NewService(kv)
	provider := payment.NewBreaker(&payment.Simulated{Latency: 2 * time.Second})
	orderSvc := orders.NewService(kv, cartSvc, provider)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Services{
		DB:       db,
		Store:    kv,
		Cart:     cartSvc,
		Wishlist: wishlistSvc,
		Orders:   orderSvc,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// initStore connects the redis snapshot store, falling back to the
// in-process store when REDIS_ADDR is unset (single-node deployments).
func initStore() store.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR not set, using in-memory snapshot store")
		return store.NewMemoryStore()
	}

	var opts []store.Option
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		opts = append(opts, store.WithPassword(password))
	}
	client := store.NewRedisClient(addr, opts...)
	log.Printf("✅ Snapshot store connected to redis at %s", addr)
	return store.NewRedisStore(client, os.Getenv("REDIS_PREFIX"))
}
