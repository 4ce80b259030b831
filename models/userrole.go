package models

// UserRole links one user to one role. It is a first-class entity keyed by the
// (UserID, RoleID) pair so it can carry association attributes later. The role
// name is denormalized onto the row so serializing a user needs no join back to
// the roles table.
type UserRole struct {
	UserID   uint   `gorm:"primaryKey;autoIncrement:false" json:"-"`
	RoleID   uint   `gorm:"primaryKey;autoIncrement:false" json:"roleid"`
	RoleName string `gorm:"not null" json:"name"`
}
