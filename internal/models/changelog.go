package models

import "time"

// ChangelogEntry is a version release note. Version is globally unique,
// enforced by the database. Unlike rules, deletes are hard: the row is
// removed permanently.
type ChangelogEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Version     string    `gorm:"uniqueIndex;not null" json:"version"`
	ReleaseDate string    `gorm:"type:date;not null" json:"release_date"`
	IsPublished bool      `gorm:"default:true;index" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ChangelogEntry) TableName() string {
	return "changelog"
}
