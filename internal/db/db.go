package db

import (
	"embers/internal/models"

	jww "github.com/spf13/jwalterweatherman"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open connects to postgres without touching the schema.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate ensures the normalized schema exists. It never creates or alters the
// legacy bad_posts/bad_comments tables; those are read-only input.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(models.AllModels()...)
}

// Init opens the database, ensures the schema and stores the handle in the
// package default for command wiring.
func Init(dsn string) (*gorm.DB, error) {
	g, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	jww.INFO.Println("database connection established")

	if err := Migrate(g); err != nil {
		return nil, err
	}
	jww.INFO.Println("normalized schema ready")

	DB = g
	return g, nil
}
