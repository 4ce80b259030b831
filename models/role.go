package models

import "time"

// Role is a named category assignable to users. Roles are append-only:
// created by seed data or an admin, never deleted.
type Role struct {
	ID        uint      `gorm:"primaryKey" json:"roleid"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
