package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UpdateUserInput struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, models.TranslateDBError(err, "user", 0)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.TranslateDBError(err, "user", id)
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" {
		return nil, models.NewValidationError("Email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, models.NewValidationError("Email is not valid")
	}
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}

	user := &models.User{Email: email, Name: name}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, models.TranslateDBError(err, "user", 0)
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.TranslateDBError(err, "user", id)
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" || !strings.Contains(email, "@") {
			return nil, models.NewValidationError("Email is not valid")
		}
		user.Email = email
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, models.NewValidationError("Name is required")
		}
		user.Name = name
	}

	user.Posts = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.TranslateDBError(err, "user", id)
	}
	return s.GetUser(ctx, id)
}

// DeleteUser removes the user. An author who still has posts or comments
// cannot be deleted; the foreign key violation comes back as an invalid
// reference error.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return models.TranslateDBError(err, "user", id)
	}
	return nil
}
