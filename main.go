package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kiko146/my-online-shop/catalog"
	"github.com/kiko146/my-online-shop/middleware"
	"github.com/kiko146/my-online-shop/models"
	"github.com/kiko146/my-online-shop/routes"
	"github.com/kiko146/my-online-shop/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate the user table
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Signed-cookie sessions
	r.Use(middleware.Sessions())
	r.Use(middleware.CurrentUser())

	// Setup routes
	routes.SetupRoutes(r, catalog.Default(), store.NewUsers(db))

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

// initDatabase sets up the GORM DB connection: Postgres when
// DATABASE_URL is set, otherwise a local SQLite file.
func initDatabase() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "site.db"
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to open %s: %v", path, err)
	}
	return db
}
