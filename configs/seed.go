package configs

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/youssofmousssa/luxestorebackeend/entity"
)

// SeedAdmin creates the bootstrap admin from ADMIN_EMAIL / ADMIN_PASSWORD.
// Roles cannot be changed through the API, so this is the only way an admin
// account comes into existence.
func SeedAdmin(db *gorm.DB, cfg *Config, log *slog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("skip seeding admin: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var existing entity.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		log.Info("admin already exists", slog.String("email", cfg.AdminEmail))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.BcryptCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Name:     cfg.AdminName,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info("admin seeded", slog.String("email", admin.Email), slog.String("id", admin.ID))
	return nil
}
