package models

import "time"

// Rule is a single server-rule article. Rules are soft-deleted: is_active
// flips to false and the row stays, invisible to public reads.
type Rule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"index;not null" json:"category"`
	Version   string    `gorm:"default:'1.0.0'" json:"version"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
