package usecase_test

import (
	"context"
	"testing"

	"fashion-shop/internal/data/entity"
	"fashion-shop/internal/data/repository"
	"fashion-shop/internal/dto/request"
	"fashion-shop/internal/usecase"
	"fashion-shop/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

func newAuthService(repo repository.UserRepository) usecase.AuthService {
	tokens := utils.NewTokenIssuer("test-secret-key-for-auth-tests", 1)
	return usecase.NewAuthService(repo, tokens, zap.NewNop())
}

func storedUser(t *testing.T, email, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Jane",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	user := storedUser(t, "jane@example.com", "secret123")
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil).Once()

	token, err := service.Login(context.Background(), &request.LoginRequest{
		UserEmail:    "jane@example.com",
		UserPassword: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// the token embeds the user's id and email
	tokens := utils.NewTokenIssuer("test-secret-key-for-auth-tests", 1)
	claims := tokens.VerifyToken(token)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	// unknown email
	mockRepo.On("FindByEmail", mock.Anything, "unknown@x.com").Return(nil, nil).Once()
	_, errUnknown := service.Login(context.Background(), &request.LoginRequest{
		UserEmail:    "unknown@x.com",
		UserPassword: "anything",
	})

	// wrong password for an existing user
	user := storedUser(t, "real@x.com", "rightpass")
	mockRepo.On("FindByEmail", mock.Anything, "real@x.com").Return(user, nil).Once()
	_, errWrong := service.Login(context.Background(), &request.LoginRequest{
		UserEmail:    "real@x.com",
		UserPassword: "wrongpass",
	})

	// both failures are indistinguishable
	assert.ErrorIs(t, errUnknown, usecase.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, usecase.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrong)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_Validation(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	_, err := service.Login(context.Background(), &request.LoginRequest{
		UserEmail:    "not-an-email",
		UserPassword: "",
	})

	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "UserEmail")
	assert.Contains(t, vErr.Fields, "UserPassword")
	mockRepo.AssertNotCalled(t, "FindByEmail")
}

func TestAuthService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil).Once()

	var saved *entity.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.User)
		}).
		Return(nil).Once()

	resp, err := service.CreateUser(context.Background(), &request.CreateUserRequest{
		UserName:     "Jane",
		UserEmail:    "jane@example.com",
		UserPassword: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	mockRepo.AssertExpectations(t)

	// server-generated id, hashed password, default role
	require.NotNil(t, saved)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.NotEqual(t, "secret123", saved.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", saved.PasswordHash))
	assert.Equal(t, entity.RoleUser, saved.Role)

	// the response never carries the password
	assert.Equal(t, saved.ID.String(), resp.UserID)
	assert.Equal(t, "jane@example.com", resp.UserEmail)

	// register then login with the same credentials succeeds
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(saved, nil).Once()
	token, err := service.Login(context.Background(), &request.LoginRequest{
		UserEmail:    "jane@example.com",
		UserPassword: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_CreateUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	existing := storedUser(t, "jane@example.com", "secret123")
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(existing, nil).Once()

	_, err := service.CreateUser(context.Background(), &request.CreateUserRequest{
		UserName:     "Jane",
		UserEmail:    "jane@example.com",
		UserPassword: "secret123",
	})

	assert.ErrorIs(t, err, usecase.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_CreateUser_ConstraintRace(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	// the lookup sees nothing, but a concurrent insert wins the race
	// and the unique constraint rejects ours
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail).Once()

	_, err := service.CreateUser(context.Background(), &request.CreateUserRequest{
		UserName:     "Jane",
		UserEmail:    "jane@example.com",
		UserPassword: "secret123",
	})

	assert.ErrorIs(t, err, usecase.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_CreateUser_Validation(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	_, err := service.CreateUser(context.Background(), &request.CreateUserRequest{
		UserName:     "Jane",
		UserEmail:    "jane@example.com",
		UserPassword: "short",
	})

	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "UserPassword")
	mockRepo.AssertNotCalled(t, "FindByEmail")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_UpdateUserPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	var newHash string
	mockRepo.On("UpdatePassword", mock.Anything, "jane@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			newHash = args.Get(2).(string)
		}).
		Return(nil).Once()

	err := service.UpdateUserPassword(context.Background(), "jane@example.com", &request.UpdatePasswordRequest{
		UserPassword: "newsecret",
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// the new password verifies, the old one does not
	assert.True(t, utils.CheckPasswordHash("newsecret", newHash))
	assert.False(t, utils.CheckPasswordHash("secret123", newHash))
}

func TestAuthService_FindUserByEmail_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil).Once()

	user, err := service.FindUserByEmail(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, usecase.ErrNotFound)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}
