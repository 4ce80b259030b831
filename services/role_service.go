package services

import (
	"errors"

	"github.com/justin-mavity/usermodel/apperrors"
	"github.com/justin-mavity/usermodel/models"
	"github.com/justin-mavity/usermodel/repositories"

	"gorm.io/gorm"
)

// RoleService exposes the read-mostly role operations. Roles are append-only;
// there is no delete or rename.
type RoleService interface {
	FindAll() ([]models.Role, error)
	FindRoleByID(id uint) (*models.Role, error)
	FindByName(name string) (*models.Role, error)
	Save(name string) (*models.Role, error)
}

type roleService struct {
	roles repositories.RoleRepository
}

var _ RoleService = (*roleService)(nil)

// NewRoleService creates a new RoleService instance
func NewRoleService(roles repositories.RoleRepository) RoleService {
	return &roleService{roles: roles}
}

func (s *roleService) FindAll() ([]models.Role, error) {
	return s.roles.FindAll()
}

func (s *roleService) FindRoleByID(id uint) (*models.Role, error) {
	role, err := s.roles.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("role id %d not found", id)
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) FindByName(name string) (*models.Role, error) {
	role, err := s.roles.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("role name %s not found", name)
		}
		return nil, err
	}
	return role, nil
}

// Save creates a new role. Role names are unique, compared case-insensitively.
func (s *roleService) Save(name string) (*models.Role, error) {
	_, err := s.roles.FindByName(name)
	if err == nil {
		return nil, apperrors.Conflictf("role name %s already exists", name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := &models.Role{Name: name}
	if err := s.roles.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}
