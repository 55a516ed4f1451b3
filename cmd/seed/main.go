package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"serviceflow/internal/database"
	"serviceflow/internal/domain"

	"github.com/joho/godotenv"
)

const (
	defaultAdminEmail    = "admin@admin.com.br"
	defaultAdminPassword = "123"
)

// Seeds the initial admin account with its company profile. Safe to run
// repeatedly: an existing admin is left untouched.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "serviceflow.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	var existing domain.User
	err = db.First(&existing, "email = ?", email).Error
	if err == nil {
		log.WithField("email", email).Info("admin already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CompanyInfo: &domain.CompanyInfo{
			Name:    "Mecânica Rocha",
			CNPJ:    "41.008.040/0001-67",
			Address: "Rua Eliazar Braga o-416 - CENTRO",
			Phone:   "(14) 99650-2602",
			Email:   email,
		},
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("failed to create admin: ", err)
	}

	log.WithField("email", email).Info("admin created")
}
