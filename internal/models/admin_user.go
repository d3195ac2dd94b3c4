package models

import "time"

// AdminUser is the single operator account. Created once via the bootstrap
// create-admin flow and never deleted in normal operation.
type AdminUser struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
