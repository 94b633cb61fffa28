package config

import (
	"log"
	"os"

	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs API tokens, read from env or fallback.
var JWTSecret []byte

func init() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_api_super_secret_2024"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "8080")
}

// InitDB opens the sqlite database, migrates the schema and seeds the
// role groups. The DSN comes from DATABASE_URI (defaults to a local file).
func InitDB() {
	db, err := OpenDB(getEnv("DATABASE_URI", "restaurant.db"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = db
	log.Println("Database connected and migrated")
}

// OpenDB opens and migrates a database at the given DSN. Tests use this
// with an in-memory DSN.
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Category{},
		&models.MenuItem{},
		&models.Cart{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, err
	}

	// The two real role groups always exist; customer is the implicit
	// default and has no group row.
	for _, name := range []string{models.RoleManager, models.RoleDeliveryCrew} {
		if err := db.FirstOrCreate(&models.Group{}, models.Group{Name: name}).Error; err != nil {
			return nil, err
		}
	}
	return db, nil
}
