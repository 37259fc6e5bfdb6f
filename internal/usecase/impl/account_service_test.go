package impl

import (
	"context"
	"testing"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *fakeUserRepo
	hasher       *fakeHasher
	tokenService *fakeTokenService
}

func createTestAccountService() accountServiceFixtures {
	userRepo := newFakeUserRepo()
	hasher := newFakeHasher()
	tokenService := &fakeTokenService{}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{userRepo: userRepo}}

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService()
	ctx := context.Background()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test Athlete",
		Email:    "athlete@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
	assert.Equal(t, entity.RoleAthlete, out.User.Role, "empty role should default to athlete")
	assert.Equal(t, "hashed:Password123!", out.User.PasswordHash, "plaintext must never be stored")
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService()
	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test Athlete",
		Email:    "athlete@example.com",
		Password: "Password123!",
	}

	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	fx := createTestAccountService()
	fx.hasher.weak["short"] = true

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Test Athlete",
		Email:    "athlete@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAccountService_Register_UnknownRole(t *testing.T) {
	fx := createTestAccountService()

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Test Athlete",
		Email:    "athlete@example.com",
		Password: "Password123!",
		Role:     entity.Role("wizard"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService()
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test Athlete",
		Email:    "athlete@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "athlete@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "token-for-"+registered.User.ID.String(), out.AccessToken)
	require.Len(t, fx.tokenService.issued, 1)
	assert.Equal(t, registered.User.ID.String(), fx.tokenService.issued[0],
		"token subject must be the canonical user ID string")
}

func TestAccountService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAccountService()
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test Athlete",
		Email:    "athlete@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})
	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "athlete@example.com",
		Password: "WrongPassword1!",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, fx.tokenService.issued, "no token may be issued on failure")
}

func TestAccountService_GetProfile(t *testing.T) {
	fx := createTestAccountService()
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test Athlete",
		Email:    "athlete@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	profile, err := fx.service.GetProfile(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.User.Email, profile.Email)

	_, err = fx.service.GetProfile(ctx, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
