package seeds

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/models"
	"github.com/amrulpxl/erpcore-docs/pkg/logger"
)

// SeedAdmin creates the default admin account if no admin exists yet.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info().Msg("Admin user already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Username:     "admin",
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info().Str("username", admin.Username).Msg("Admin user seeded")
	return nil
}
