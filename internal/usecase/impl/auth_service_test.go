package impl

import (
	"context"
	"testing"
	"time"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/domain/service"
	mockRepo "shopfront/internal/mocks/repository"
	mockService "shopfront/internal/mocks/service"
	"shopfront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionTTL = 24 * time.Hour

type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockService.MockPasswordHasher
	tokens      *mockService.MockTokenGenerator
	google      *mockService.MockOAuthService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenGenerator(t)

	google := mockService.NewMockOAuthService(t)
	google.EXPECT().Provider().Return(entity.ProviderGoogle).Maybe()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{SessionTTL: testSessionTTL}

	svc := NewAuthService(AuthServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		SessionRepo:   sessionRepo,
		Hasher:        hasher,
		Tokens:        tokens,
		OAuthServices: []service.OAuthService{google},
		Config:        cfg,
		Logger:        testLogger(),
	})

	return authServiceFixtures{
		service:     svc,
		txManager:   txManager,
		factory:     factory,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		google:      google,
	}
}

func (f authServiceFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Email:    "ada@example.com",
		Password: "correct horse",
		Name:     "Ada",
		Nickname: "ada",
	}

	fx.hasher.EXPECT().Hash("correct horse").Return("$2a$hash", nil)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().SessionRepo().Return(fx.sessionRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "$2a$hash", user.PasswordHash)
			assert.Equal(t, entity.ProviderLocal, user.Provider)
			user.ID = 11
			return nil
		})

	fx.tokens.EXPECT().Generate().Return("tok-abc", nil)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		RunAndReturn(func(_ context.Context, session *entity.Session) error {
			assert.Equal(t, "tok-abc", session.ID)
			assert.Equal(t, int64(11), session.UserID)
			return nil
		})

	output, err := fx.service.SignUp(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", output.Token)
	assert.Equal(t, int64(11), output.User.ID)
	assert.WithinDuration(t, time.Now().Add(testSessionTTL), output.ExpiresAt, time.Minute)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Email:    "ada@example.com",
		Password: "correct horse",
		Name:     "Ada",
	}

	fx.hasher.EXPECT().Hash("correct horse").Return("$2a$hash", nil)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(&entity.User{ID: 3, Email: "ada@example.com"}, nil)

	output, err := fx.service.SignUp(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_SignUp_ValidationFails(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.SignUpInput{
		Email:    "not-an-email",
		Password: "short",
		Name:     "",
	}

	output, err := fx.service.SignUp(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := validationErr.Fields()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "name")
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 5, Email: "ada@example.com", PasswordHash: "$2a$hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("correct horse", "$2a$hash").Return(true)
	fx.tokens.EXPECT().Generate().Return("tok-login", nil)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "tok-login", output.Token)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever1"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 5, Email: "ada@example.com", PasswordHash: "$2a$hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong pass", "$2a$hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong pass"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	// An account created through a provider has no password hash, so a
	// local login must fail without ever calling the hasher.
	user := &entity.User{ID: 8, Email: "ada@example.com", PasswordHash: ""}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "whatever1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.sessionRepo.EXPECT().Delete(ctx, "tok-abc").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, "tok-abc"))
}

func TestAuthService_ValidateSession_UnknownToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.sessionRepo.EXPECT().
		FindByID(ctx, "tok-missing").
		Return(nil, repository.ErrSessionNotFound)

	output, err := fx.service.ValidateSession(ctx, "tok-missing")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_ValidateSession_Expired(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        "tok-old",
		UserID:    5,
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	fx.sessionRepo.EXPECT().FindByID(ctx, "tok-old").Return(session, nil)
	fx.sessionRepo.EXPECT().Delete(ctx, "tok-old").Return(nil)

	output, err := fx.service.ValidateSession(ctx, "tok-old")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_ValidateSession_FreshSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.Session{
		ID:        "tok-fresh",
		UserID:    5,
		ExpiresAt: time.Now().Add(testSessionTTL),
	}
	user := &entity.User{ID: 5}

	fx.sessionRepo.EXPECT().FindByID(ctx, "tok-fresh").Return(session, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)

	output, err := fx.service.ValidateSession(ctx, "tok-fresh")
	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.False(t, output.Session.Fresh)
}

func TestAuthService_ValidateSession_RotatesPastHalfLife(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	// A quarter of the TTL left: past the half-life, due for rotation.
	session := &entity.Session{
		ID:        "tok-stale",
		UserID:    5,
		ExpiresAt: time.Now().Add(testSessionTTL / 4),
	}
	user := &entity.User{ID: 5}

	fx.sessionRepo.EXPECT().FindByID(ctx, "tok-stale").Return(session, nil)
	fx.sessionRepo.EXPECT().
		UpdateExpiry(ctx, "tok-stale", mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, _ string, newExpiry time.Time) error {
			assert.WithinDuration(t, time.Now().Add(testSessionTTL), newExpiry, time.Minute)
			return nil
		})
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)

	output, err := fx.service.ValidateSession(ctx, "tok-stale")
	require.NoError(t, err)
	assert.True(t, output.Session.Fresh)
	assert.WithinDuration(t, time.Now().Add(testSessionTTL), output.Session.ExpiresAt, time.Minute)
}

func TestAuthService_OAuthAuthorizationURL(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.google.EXPECT().GenerateState().Return("state-1", nil)
	fx.google.EXPECT().BuildAuthorizationURL("state-1").Return("https://accounts.example.com/auth?state=state-1")

	url, err := fx.service.OAuthAuthorizationURL(ctx, entity.ProviderGoogle)
	require.NoError(t, err)
	assert.Equal(t, "https://accounts.example.com/auth?state=state-1", url)
}

func TestAuthService_OAuthAuthorizationURL_StateError(t *testing.T) {
	fx := createTestAuthService(t)

	// A failed state generation aborts before any URL is built.
	fx.google.EXPECT().GenerateState().Return("", errors.New("entropy exhausted"))

	_, err := fx.service.OAuthAuthorizationURL(context.Background(), entity.ProviderGoogle)
	require.Error(t, err)
}

func TestAuthService_OAuthAuthorizationURL_UnknownProvider(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.OAuthAuthorizationURL(context.Background(), entity.ProviderType("gitlab"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_OAuthCallback_BadState(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.google.EXPECT().ValidateState("forged").Return(false)

	input := &usecase.OAuthCallbackInput{Provider: entity.ProviderGoogle, Code: "code-1", State: "forged"}
	output, err := fx.service.OAuthCallback(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_OAuthCallback_ExistingProviderIdentity(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{ID: "g-123", Email: "ada@example.com", Name: "Ada", Provider: entity.ProviderGoogle}
	user := &entity.User{ID: 5, Email: "ada@example.com", GoogleID: "g-123"}

	fx.google.EXPECT().ValidateState("state-1").Return(true)
	fx.google.EXPECT().ExchangeCodeForToken(ctx, "code-1").Return("access-token", nil)
	fx.google.EXPECT().GetUserInfo(ctx, "access-token").Return(oauthUser, nil)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().SessionRepo().Return(fx.sessionRepo)

	fx.userRepo.EXPECT().
		FindByProviderID(ctx, entity.ProviderGoogle, "g-123").
		Return(user, nil)

	fx.tokens.EXPECT().Generate().Return("tok-oauth", nil)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	input := &usecase.OAuthCallbackInput{Provider: entity.ProviderGoogle, Code: "code-1", State: "state-1"}
	output, err := fx.service.OAuthCallback(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "tok-oauth", output.Token)
	assert.Equal(t, user, output.User)
}

func TestAuthService_OAuthCallback_LinksByEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{ID: "g-123", Email: "ada@example.com", Name: "Ada", Provider: entity.ProviderGoogle}
	existing := &entity.User{ID: 5, Email: "ada@example.com", Provider: entity.ProviderLocal}

	fx.google.EXPECT().ValidateState("state-1").Return(true)
	fx.google.EXPECT().ExchangeCodeForToken(ctx, "code-1").Return("access-token", nil)
	fx.google.EXPECT().GetUserInfo(ctx, "access-token").Return(oauthUser, nil)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().SessionRepo().Return(fx.sessionRepo)

	fx.userRepo.EXPECT().
		FindByProviderID(ctx, entity.ProviderGoogle, "g-123").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ada@example.com").
		Return(existing, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, int64(5), user.ID)
			assert.Equal(t, "g-123", user.GoogleID)
			return nil
		})

	fx.tokens.EXPECT().Generate().Return("tok-oauth", nil)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	input := &usecase.OAuthCallbackInput{Provider: entity.ProviderGoogle, Code: "code-1", State: "state-1"}
	output, err := fx.service.OAuthCallback(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(5), output.User.ID)
}

func TestAuthService_OAuthCallback_CreatesNewAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{ID: "g-999", Email: "new@example.com", Name: "New User", Provider: entity.ProviderGoogle}

	fx.google.EXPECT().ValidateState("state-1").Return(true)
	fx.google.EXPECT().ExchangeCodeForToken(ctx, "code-1").Return("access-token", nil)
	fx.google.EXPECT().GetUserInfo(ctx, "access-token").Return(oauthUser, nil)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().SessionRepo().Return(fx.sessionRepo)

	fx.userRepo.EXPECT().
		FindByProviderID(ctx, entity.ProviderGoogle, "g-999").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "new@example.com", user.Email)
			assert.Equal(t, entity.ProviderGoogle, user.Provider)
			assert.Equal(t, "g-999", user.GoogleID)
			assert.Empty(t, user.PasswordHash)
			user.ID = 20
			return nil
		})

	fx.tokens.EXPECT().Generate().Return("tok-oauth", nil)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	input := &usecase.OAuthCallbackInput{Provider: entity.ProviderGoogle, Code: "code-1", State: "state-1"}
	output, err := fx.service.OAuthCallback(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(20), output.User.ID)
}
