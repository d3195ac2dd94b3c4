package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/models"
)

type AdminRepository interface {
	FindByUsername(username string) (*models.AdminUser, error)
	Count() (int64, error)
	Create(user *models.AdminUser) error
	TouchLastLogin(id uint) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) Create(user *models.AdminUser) error {
	return r.db.Create(user).Error
}

func (r *adminRepository) TouchLastLogin(id uint) error {
	now := time.Now()
	return r.db.Model(&models.AdminUser{}).Where("id = ?", id).Update("last_login", &now).Error
}
