package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// generateUsername derives "first.last" from the name fields, appending a
// counter until the name is free.
func (s *UserServiceImpl) generateUsername(ctx context.Context, firstName, lastName string) (string, error) {
	base := strings.ToLower(strings.TrimSpace(firstName)) + "." + strings.ToLower(strings.TrimSpace(lastName))
	base = strings.ReplaceAll(base, " ", "")

	candidate := base
	for i := 2; ; i++ {
		_, err := s.UserRepository.GetByUsername(ctx, candidate)
		if err == user.ErrUserNotFound {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check username availability: %w", err)
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.PublicUser, error) {
	username := req.Username
	if username == "" {
		generated, err := s.generateUsername(ctx, req.FirstName, req.LastName)
		if err != nil {
			return user.PublicUser{}, err
		}
		username = generated
	}

	passwordHash, err := s.hashPassword(req.Password)
	if err != nil {
		return user.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		EmployeeID:   req.EmployeeID,
		Username:     username,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Designation:  req.Designation,
		Department:   req.Department,
		Role:         user.Role(req.Role),
	})
	if err != nil {
		return user.PublicUser{}, err
	}

	return created.Public(), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.PublicUser, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.PublicUser{}, err
	}
	return userData.Public(), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.PublicUser, error) {
	users, err := s.UserRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	publicUsers := make([]user.PublicUser, 0, len(users))
	for _, u := range users {
		publicUsers = append(publicUsers, u.Public())
	}
	return publicUsers, nil
}

// UpdateUser implements user.UserService. When a name changes and no
// explicit username comes with it, the username is regenerated to follow
// the new name. Demoting the last manager to another role is refused,
// otherwise the manager-only surfaces would become unreachable.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.PublicUser, error) {
	current, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.PublicUser{}, err
	}

	if req.Username == nil && (req.FirstName != nil || req.LastName != nil) {
		first, last := current.FirstName, current.LastName
		if req.FirstName != nil {
			first = *req.FirstName
		}
		if req.LastName != nil {
			last = *req.LastName
		}
		if first != current.FirstName || last != current.LastName {
			generated, err := s.generateUsername(ctx, first, last)
			if err != nil {
				return user.PublicUser{}, err
			}
			req.Username = &generated
		}
	}

	if req.Role != nil && current.Role == user.RoleManager && user.Role(*req.Role) != user.RoleManager {
		managerCount, err := s.UserRepository.CountByRole(ctx, user.RoleManager)
		if err != nil {
			return user.PublicUser{}, fmt.Errorf("failed to count managers: %w", err)
		}
		if managerCount <= 1 {
			return user.PublicUser{}, user.ErrLastManager
		}
	}

	updated, err := s.UserRepository.Update(ctx, req)
	if err != nil {
		return user.PublicUser{}, err
	}
	return updated.Public(), nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, actorID string, id string) error {
	if actorID == id {
		return user.ErrSelfDelete
	}

	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if target.Role == user.RoleManager {
		managerCount, err := s.UserRepository.CountByRole(ctx, user.RoleManager)
		if err != nil {
			return fmt.Errorf("failed to count managers: %w", err)
		}
		if managerCount <= 1 {
			return user.ErrLastManager
		}
	}

	return s.UserRepository.Delete(ctx, id)
}
