package repositories

import (
	"strings"

	"github.com/justin-mavity/usermodel/models"

	"gorm.io/gorm"
)

// RoleRepository defines Role-related database operations. Roles are
// append-only; there is no delete.
type RoleRepository interface {
	FindAll() ([]models.Role, error)
	FindByID(id uint) (*models.Role, error)
	FindByName(name string) (*models.Role, error)
	Create(role *models.Role) error

	WithTx(tx *gorm.DB) RoleRepository
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository instance
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) WithTx(tx *gorm.DB) RoleRepository {
	return &roleRepository{db: tx}
}

// FindAll returns all Roles
func (r *roleRepository) FindAll() ([]models.Role, error) {
	var roles []models.Role
	result := r.db.Order("id").Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}
	return roles, nil
}

// FindByID finds Role by ID
func (r *roleRepository) FindByID(id uint) (*models.Role, error) {
	var role models.Role
	result := r.db.First(&role, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &role, nil
}

// FindByName finds Role by name, ignoring case
func (r *roleRepository) FindByName(name string) (*models.Role, error) {
	var role models.Role
	result := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&role)
	if result.Error != nil {
		return nil, result.Error
	}
	return &role, nil
}

// Create inserts a new Role
func (r *roleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}
