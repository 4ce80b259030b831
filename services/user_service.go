package services

import (
	"errors"

	"github.com/justin-mavity/usermodel/apperrors"
	"github.com/justin-mavity/usermodel/models"
	"github.com/justin-mavity/usermodel/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The UserService interface defines the operations the user domain service
// exposes to its boundaries (HTTP and gRPC).
type UserService interface {
	FindAll() ([]models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindByName(username string) (*models.User, error)
	FindByNameContaining(fragment string) ([]models.User, error)
	Save(input *CreateUserInput) (*models.User, error)
	Update(id uint, input *UpdateUserInput) (*models.User, error)
	Delete(id uint) error
}

// --- Structs for Input ---

// UserRoleInput references a role by id when attaching it to a user.
type UserRoleInput struct {
	RoleID uint `json:"roleid"`
}

type CreateUserInput struct {
	Username   string          `json:"username"`
	Credential string          `json:"credential"`
	Email      string          `json:"email"`
	Roles      []UserRoleInput `json:"roles"`
}

// UpdateUserInput is a partial update: nil fields are left unchanged. Roles is
// a pointer slice so that absent (nil) leaves the role set untouched while
// present replaces the whole set, even when empty.
type UpdateUserInput struct {
	Username   *string          `json:"username"`
	Credential *string          `json:"credential"`
	Email      *string          `json:"email"`
	Roles      *[]UserRoleInput `json:"roles"`
}

// userService is the implementation of the UserService interface
type userService struct {
	db    *gorm.DB
	users repositories.UserRepository
	roles repositories.RoleRepository
}

var _ UserService = (*userService)(nil)

// NewUserService creates a new UserService instance. The db handle is used to
// scope save/update/delete into single transactions.
func NewUserService(db *gorm.DB, users repositories.UserRepository, roles repositories.RoleRepository) UserService {
	return &userService{db: db, users: users, roles: roles}
}

// FindAll returns every user, unfiltered.
func (s *userService) FindAll() ([]models.User, error) {
	return s.users.FindAll()
}

// FindUserByID returns the user with the given id. Any absent id, including
// zero or negative ones rejected upstream, is simply "not found".
func (s *userService) FindUserByID(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user id %d not found", id)
		}
		return nil, err
	}
	return user, nil
}

// FindByName returns the user with exactly the given username.
func (s *userService) FindByName(username string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user name %s not found", username)
		}
		return nil, err
	}
	return user, nil
}

// FindByNameContaining returns all users whose username contains the fragment,
// ignoring case. An empty result is a valid, non-error outcome.
func (s *userService) FindByNameContaining(fragment string) ([]models.User, error) {
	return s.users.FindByUsernameContaining(fragment)
}

// Delete removes the user and all of its role associations in one transaction:
// either both are gone afterwards or neither is.
func (s *userService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)

		if _, err := users.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundf("user id %d not found", id)
			}
			return err
		}
		if err := users.ClearRoles(id); err != nil {
			return err
		}
		return users.DeleteByID(id)
	})
}

// Save creates a new user. Every attached role id is resolved against the role
// store first; a missing id fails the whole operation and persists nothing.
// The storage layer cannot check referential integrity against a transient
// object graph, so the service does it here.
func (s *userService) Save(input *CreateUserInput) (*models.User, error) {
	if err := s.checkUsernameFree(s.users, input.Username, 0); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		Credential:   string(hashed),
		PrimaryEmail: input.Email,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		userRoles, err := s.resolveRoles(s.roles.WithTx(tx), input.Roles)
		if err != nil {
			return err
		}
		user.Roles = userRoles
		return s.users.WithTx(tx).Create(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update merges the partial input into the stored user and persists the result
// as one transaction. Nil fields stay untouched. When a role list is supplied
// the existing role set is replaced in full, not appended to.
func (s *userService) Update(id uint, input *UpdateUserInput) (*models.User, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		roles := s.roles.WithTx(tx)

		user, err := users.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundf("user id %d not found", id)
			}
			return err
		}

		if input.Username != nil {
			if err := s.checkUsernameFree(users, *input.Username, user.ID); err != nil {
				return err
			}
			user.Username = *input.Username
		}
		if input.Credential != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Credential), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.Credential = string(hashed)
		}
		if input.Email != nil {
			user.PrimaryEmail = *input.Email
		}

		if input.Roles != nil {
			fresh, err := s.resolveRoles(roles, *input.Roles)
			if err != nil {
				return err
			}
			if err := users.ClearRoles(user.ID); err != nil {
				return err
			}
			for i := range fresh {
				fresh[i].UserID = user.ID
			}
			if err := users.AddRoles(fresh); err != nil {
				return err
			}
		}

		return users.Save(user)
	})
	if err != nil {
		return nil, err
	}

	// Re-read so the returned user reflects the persisted role set.
	return s.FindUserByID(id)
}

// resolveRoles looks up every referenced role id and builds the association
// rows, carrying the denormalized role name. Duplicate role ids collapse into
// one association: a user cannot hold the same role twice.
func (s *userService) resolveRoles(roles repositories.RoleRepository, refs []UserRoleInput) ([]models.UserRole, error) {
	seen := make(map[uint]bool, len(refs))
	userRoles := make([]models.UserRole, 0, len(refs))
	for _, ref := range refs {
		if seen[ref.RoleID] {
			continue
		}
		seen[ref.RoleID] = true

		role, err := roles.FindByID(ref.RoleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFoundf("role id %d not found", ref.RoleID)
			}
			return nil, err
		}
		userRoles = append(userRoles, models.UserRole{RoleID: role.ID, RoleName: role.Name})
	}
	return userRoles, nil
}

// checkUsernameFree enforces case-insensitive username uniqueness at the
// service layer. selfID exempts the user being updated.
func (s *userService) checkUsernameFree(users repositories.UserRepository, username string, selfID uint) error {
	existing, err := users.FindByUsernameIgnoreCase(username)
	if err == nil {
		if existing.ID != selfID {
			return apperrors.Conflictf("username %s already exists", username)
		}
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
