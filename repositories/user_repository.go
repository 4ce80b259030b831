package repositories

import (
	"strings"

	"github.com/justin-mavity/usermodel/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines User-related database operations. Lookup misses are
// reported as gorm.ErrRecordNotFound; the service layer owns translation into
// domain errors.
type UserRepository interface {
	FindAll() ([]models.User, error)
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByUsernameIgnoreCase(username string) (*models.User, error)
	FindByUsernameContaining(fragment string) ([]models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	DeleteByID(id uint) error
	ClearRoles(userID uint) error
	AddRoles(userRoles []models.UserRole) error

	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) UserRepository
}

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

// FindAll returns all Users with their role associations
func (r *userRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := r.db.Preload("Roles").Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// FindByID finds User by ID
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Roles").First(&user, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// FindByUsername finds User by exact Username
func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Roles").Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// FindByUsernameIgnoreCase finds User by Username, ignoring case. Used for the
// uniqueness check: usernames are unique case-insensitively.
func (r *userRepository) FindByUsernameIgnoreCase(username string) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Roles").
		Where("LOWER(username) = ?", strings.ToLower(username)).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// FindByUsernameContaining finds Users whose Username contains the fragment,
// ignoring case. An empty result is not an error.
func (r *userRepository) FindByUsernameContaining(fragment string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + strings.ToLower(fragment) + "%"
	result := r.db.Preload("Roles").
		Where("LOWER(username) LIKE ?", pattern).Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// Create inserts a new User together with its role associations
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Save persists scalar fields of an existing User. Role associations are
// managed explicitly through ClearRoles/AddRoles, never implicitly synced.
func (r *userRepository) Save(user *models.User) error {
	return r.db.Omit(clause.Associations).Save(user).Error
}

// DeleteByID deletes the User row
func (r *userRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// ClearRoles removes every role association owned by the user
func (r *userRepository) ClearRoles(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error
}

// AddRoles inserts the given role associations
func (r *userRepository) AddRoles(userRoles []models.UserRole) error {
	if len(userRoles) == 0 {
		return nil
	}
	return r.db.Create(&userRoles).Error
}
