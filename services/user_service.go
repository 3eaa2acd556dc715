package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acl-api/dto"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
	"github.com/acl-api/utils"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	userRepo *repositories.UserRepository
	hasher   PasswordHasher
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// GetAllPaginated lists users matching opts
func (s *UserService) GetAllPaginated(ctx context.Context, opts repositories.ListOptions) (pagination.Result[models.User], error) {
	result, err := s.userRepo.FindAllPaginated(ctx, opts)
	if err != nil {
		return result, fmt.Errorf("list users: %w", err)
	}
	return result, nil
}

// Find returns the user with id, or nil when there is none
func (s *UserService) Find(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

// FindOrFail returns the user with id or a not found error
func (s *UserService) FindOrFail(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewNotFound("users.not_found")
	}
	return user, nil
}

// FindByEmail returns the user owning email or a not found error
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NewNotFound("users.not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// Create registers a new user. The email must not belong to another
// active user; the password is stored hashed.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	if err := s.ensureEmailAvailable(ctx, req.Email); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Username: req.Username,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflict("users.email_taken", nil)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update applies the fields present in req to the user with id
func (s *UserService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.FindOrFail(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Avatar != nil {
		changes["avatar"] = *req.Avatar
	}
	if req.Username != nil {
		changes["username"] = *req.Username
	}
	if req.Email != nil && *req.Email != user.Email {
		if err := s.ensureEmailAvailable(ctx, *req.Email); err != nil {
			return nil, err
		}
		changes["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		changes["password"] = hashed
	}

	updated, err := s.userRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflict("users.email_taken", nil)
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return updated, nil
}

// Delete soft deletes the user with id
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.FindOrFail(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NewNotFound("users.not_found")
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (s *UserService) ensureEmailAvailable(ctx context.Context, email string) error {
	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return utils.NewConflict("users.email_taken", nil)
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("check email: %w", err)
	}
}
