package repository

import (
	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/models"
)

// RuleUpdate is the allow-list of fields a partial rule update may touch.
// Nil pointers mean "leave unchanged".
type RuleUpdate struct {
	Title    *string
	Content  *string
	Category *string
	Version  *string
	IsActive *bool
}

func (u RuleUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Category == nil &&
		u.Version == nil && u.IsActive == nil
}

func (u RuleUpdate) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Content != nil {
		changes["content"] = *u.Content
	}
	if u.Category != nil {
		changes["category"] = *u.Category
	}
	if u.Version != nil {
		changes["version"] = *u.Version
	}
	if u.IsActive != nil {
		changes["is_active"] = *u.IsActive
	}
	return changes
}

type RuleRepository interface {
	List(category string) ([]models.Rule, error)
	GetByID(id uint) (*models.Rule, error)
	Categories() ([]string, error)
	Create(rule *models.Rule) error
	Update(id uint, upd RuleUpdate) error
	Delete(id uint) error
}

type ruleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{db: db}
}

// List returns active rules, newest-updated first, optionally filtered by
// exact category match.
func (r *ruleRepository) List(category string) ([]models.Rule, error) {
	var rules []models.Rule
	query := r.db.Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("updated_at DESC").Find(&rules).Error
	return rules, err
}

func (r *ruleRepository) GetByID(id uint) (*models.Rule, error) {
	var rule models.Rule
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *ruleRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Rule{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *ruleRepository) Create(rule *models.Rule) error {
	return r.db.Create(rule).Error
}

// Update applies the provided fields and refreshes updated_at. Returns
// gorm.ErrRecordNotFound when no row matched the id, active or not.
func (r *ruleRepository) Update(id uint, upd RuleUpdate) error {
	res := r.db.Model(&models.Rule{}).Where("id = ?", id).Updates(upd.changes())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete is a soft delete: it flips is_active to false and keeps the row.
// Deleting an already-inactive rule succeeds as long as the row exists.
func (r *ruleRepository) Delete(id uint) error {
	res := r.db.Model(&models.Rule{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
