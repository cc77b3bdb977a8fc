package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/regarstore/v0-xl-kuota-website/catalog"
	"github.com/regarstore/v0-xl-kuota-website/checkout"
	"github.com/regarstore/v0-xl-kuota-website/events"
	"github.com/regarstore/v0-xl-kuota-website/models"
	"github.com/regarstore/v0-xl-kuota-website/orders"
	"github.com/regarstore/v0-xl-kuota-website/routes"
	"github.com/regarstore/v0-xl-kuota-website/store"
)

func main() {
	log.Println("✅ Starting XL Paket Data storefront...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.CartRecord{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	ctx := context.Background()

	// Cart storage and the cart-changed event bus. With REDIS_ADDR set, both
	// move to Redis so a second instance observes this one's mutations;
	// otherwise carts live in the database and events stay in-process.
	var bus events.Bus = events.NewLocalBus()
	var backend store.Backend = store.NewGormBackend(db)
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisBus, err := events.NewRedisBus(ctx, addr)
		if err != nil {
			log.Fatalf("❌ Redis connection failed: %v", err)
		}
		bus = redisBus
		backend = store.NewRedisBackend(goredis.NewClient(&goredis.Options{Addr: addr}))
		log.Printf("✅ Carts and events on Redis at %s", addr)
	}

	cartStore := store.New(backend, bus)
	cat := catalog.New()
	orderLog := orders.NewLog(db)
	finalizer := checkout.NewFinalizer(cartStore, orderLog)

	hub := events.NewHub(bus)
	go hub.Run(ctx)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:  cat,
		Cart:     cartStore,
		Checkout: finalizer,
		Orders:   orderLog,
		Hub:      hub,
	})

	// Drop carts untouched for 30 days, daily at 2 AM
	go startDailyCartCleanup(db, 30*24*time.Hour, 2, 0)

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

// initDatabase sets up the GORM DB connection: Postgres when DATABASE_URL is
// set, an on-disk SQLite file otherwise.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "xlstore.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to open %s: %v", path, err)
	}
	return db
}

// startDailyCartCleanup removes cart rows that have not been written within
// the retention window, daily at a fixed hour. Abandoned guest sessions
// never come back for their carts.
func startDailyCartCleanup(db *gorm.DB, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next cart cleanup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		cutoff := time.Now().Add(-retention)
		res := db.Where("updated_at < ?", cutoff).Delete(&models.CartRecord{})
		if res.Error != nil {
			log.Printf("❌ Cart cleanup failed: %v", res.Error)
		} else if res.RowsAffected > 0 {
			log.Printf("🗑️ Removed %d stale carts", res.RowsAffected)
		}
	}
}
