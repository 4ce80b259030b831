package models

import "time"

// User is an account known to the service. The credential is write-only:
// accepted on input, stored hashed, never serialized back.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"userid"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	Credential   string     `gorm:"not null" json:"-"`
	PrimaryEmail string     `json:"email"`
	Roles        []UserRole `gorm:"foreignKey:UserID" json:"roles"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(roleName string) bool {
	for _, ur := range u.Roles {
		if ur.RoleName == roleName {
			return true
		}
	}
	return false
}
