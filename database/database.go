package database

import (
	"fmt"
	"log"
	"os"

	"blockcms/internal/domain/collections"
	"blockcms/internal/domain/media"
	"blockcms/internal/domain/pages"
	"blockcms/internal/domain/rbac"
	"blockcms/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for gen_random_uuid()
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// access control
		&rbac.Permission{},
		&rbac.Role{},
		&rbac.RolePermission{},
		&users.User{},
		&users.PasswordResetToken{},
		&rbac.UserRole{},

		// content
		&pages.Page{},
		&collections.Service{},
		&collections.Project{},
		&collections.News{},
		&media.Media{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
