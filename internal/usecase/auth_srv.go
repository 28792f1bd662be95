package usecase

import (
	"context"
	"errors"
	"fmt"

	"fashion-shop/internal/data/entity"
	"fashion-shop/internal/data/repository"
	"fashion-shop/internal/dto/request"
	"fashion-shop/internal/dto/response"
	"fashion-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (string, error)
	FindUserByEmail(ctx context.Context, email string) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	UpdateUserPassword(ctx context.Context, email string, req *request.UpdatePasswordRequest) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *utils.TokenIssuer
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *utils.TokenIssuer, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

// Login returns a signed bearer token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	if err := NewValidationError(req); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.UserEmail)
	if err != nil {
		s.log.Error("Failed to look up user for login", zap.Error(err), zap.String("email", req.UserEmail))
		return "", fmt.Errorf("login: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.UserEmail))
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.UserPassword, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.String("user_id", user.ID.String()))
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.ID, user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return token, nil
}

func (s *authService) FindUserByEmail(ctx context.Context, email string) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if err := NewValidationError(req); err != nil {
		s.log.Warn("Create user validation failed", zap.Error(err))
		return nil, err
	}

	// Fast-path duplicate check. The unique constraint on users.email
	// is what actually guarantees uniqueness under concurrent
	// registration.
	existing, err := s.userRepo.FindByEmail(ctx, req.UserEmail)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.UserEmail))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.UserPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         req.UserName,
		Email:        req.UserEmail,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.UserEmail))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateUserPassword re-hashes and overwrites. There is no
// old-password confirmation on this path.
func (s *authService) UpdateUserPassword(ctx context.Context, email string, req *request.UpdatePasswordRequest) error {
	if err := NewValidationError(req); err != nil {
		s.log.Warn("Update password validation failed", zap.Error(err))
		return err
	}

	hash, err := utils.HashPassword(req.UserPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, email, hash); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password updated", zap.String("email", email))
	return nil
}
