package repository

import (
	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/models"
)

// ChangelogUpdate is the allow-list of fields a partial changelog update may
// touch. Nil pointers mean "leave unchanged".
type ChangelogUpdate struct {
	Title       *string
	Content     *string
	Version     *string
	ReleaseDate *string
	IsPublished *bool
}

func (u ChangelogUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Version == nil &&
		u.ReleaseDate == nil && u.IsPublished == nil
}

func (u ChangelogUpdate) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Content != nil {
		changes["content"] = *u.Content
	}
	if u.Version != nil {
		changes["version"] = *u.Version
	}
	if u.ReleaseDate != nil {
		changes["release_date"] = *u.ReleaseDate
	}
	if u.IsPublished != nil {
		changes["is_published"] = *u.IsPublished
	}
	return changes
}

type ChangelogRepository interface {
	List(limit, offset int) ([]models.ChangelogEntry, error)
	GetByID(id uint) (*models.ChangelogEntry, error)
	Latest() (*models.ChangelogEntry, error)
	Versions() ([]string, error)
	VersionExists(version string) (bool, error)
	Create(entry *models.ChangelogEntry) error
	Update(id uint, upd ChangelogUpdate) error
	Delete(id uint) error
}

type changelogRepository struct {
	db *gorm.DB
}

func NewChangelogRepository(db *gorm.DB) ChangelogRepository {
	return &changelogRepository{db: db}
}

// List returns published entries ordered by release date, then creation
// time, newest first.
func (r *changelogRepository) List(limit, offset int) ([]models.ChangelogEntry, error) {
	var entries []models.ChangelogEntry
	err := r.db.Where("is_published = ?", true).
		Order("release_date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}

func (r *changelogRepository) GetByID(id uint) (*models.ChangelogEntry, error) {
	var entry models.ChangelogEntry
	err := r.db.Where("id = ? AND is_published = ?", id, true).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Latest returns the most recent published entry, or nil if none exist.
func (r *changelogRepository) Latest() (*models.ChangelogEntry, error) {
	var entry models.ChangelogEntry
	err := r.db.Where("is_published = ?", true).
		Order("release_date DESC, created_at DESC").
		First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Versions lists published version labels, newest release first. Versions
// are unique table-wide so no dedup is needed.
func (r *changelogRepository) Versions() ([]string, error) {
	var versions []string
	err := r.db.Model(&models.ChangelogEntry{}).
		Where("is_published = ?", true).
		Order("release_date DESC").
		Pluck("version", &versions).Error
	return versions, err
}

// VersionExists checks all entries, published or not.
func (r *changelogRepository) VersionExists(version string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ChangelogEntry{}).
		Where("version = ?", version).
		Count(&count).Error
	return count > 0, err
}

// Create inserts the entry. The unique index on version is the real guard
// against duplicates; a violation surfaces as gorm.ErrDuplicatedKey.
func (r *changelogRepository) Create(entry *models.ChangelogEntry) error {
	return r.db.Create(entry).Error
}

func (r *changelogRepository) Update(id uint, upd ChangelogUpdate) error {
	res := r.db.Model(&models.ChangelogEntry{}).Where("id = ?", id).Updates(upd.changes())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row permanently. Changelog entries are hard-deleted,
// unlike rules.
func (r *changelogRepository) Delete(id uint) error {
	res := r.db.Delete(&models.ChangelogEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
