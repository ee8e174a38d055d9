package impl

import (
	"context"
	"log/slog"
	"time"

	"shopfront/config"
	deliverycontext "shopfront/internal/delivery/context"
	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/domain/service"
	"shopfront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokens      service.TokenGenerator
	providers   map[entity.ProviderType]service.OAuthService
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	SessionRepo   repository.SessionRepository
	Hasher        service.PasswordHasher
	Tokens        service.TokenGenerator
	OAuthServices []service.OAuthService `group:"oauth"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	sessionTTL := defaultSessionTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionTTL > 0 {
		sessionTTL = params.Config.Auth.SessionTTL
	}

	providers := make(map[entity.ProviderType]service.OAuthService, len(params.OAuthServices))
	for _, provider := range params.OAuthServices {
		providers[provider.Provider()] = provider
	}

	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		providers:   providers,
		sessionTTL:  sessionTTL,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a local account and logs it in.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	if err := validateSignUpFields(input.Email, input.Password, input.Name, input.Nickname); err != nil {
		srv.log(ctx).Warn("Signup validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// bcrypt is CPU-bound; hash before opening the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Nickname:     input.Nickname,
		Provider:     entity.ProviderLocal,
	}

	var session *entity.Session
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check for existing email")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		session, err = srv.issueSession(ctx, repoFactory.SessionRepo(), newUser.ID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.Int64("userID", newUser.ID))

	return &usecase.AuthOutput{Token: session.ID, ExpiresAt: session.ExpiresAt, User: newUser}, nil
}

// Login authenticates a local account and issues a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// OAuth-only accounts have no password to check against.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	session, err := srv.issueSession(ctx, srv.sessionRepo, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{Token: session.ID, ExpiresAt: session.ExpiresAt, User: user}, nil
}

// Logout invalidates one session token.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if err := srv.sessionRepo.Delete(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// ValidateSession checks a token, deletes it when expired, and rotates the
// expiry of sessions past half their lifetime.
func (srv *authService) ValidateSession(ctx context.Context, token string) (*usecase.SessionOutput, error) {
	session, err := srv.sessionRepo.FindByID(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("unknown session token")
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	now := time.Now()
	if session.Expired(now) {
		// Dead row; remove it so the table does not accumulate garbage.
		if delErr := srv.sessionRepo.Delete(ctx, session.ID); delErr != nil {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrUnauthorized.WrapMessage("session expired")
	}

	if session.NeedsRotation(now, srv.sessionTTL) {
		newExpiry := now.Add(srv.sessionTTL)
		if err := srv.sessionRepo.UpdateExpiry(ctx, session.ID, newExpiry); err != nil {
			return nil, errors.Wrap(err, "failed to rotate session expiry")
		}
		session.ExpiresAt = newExpiry
		session.Fresh = true
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session user")
	}

	return &usecase.SessionOutput{User: user, Session: session}, nil
}

// OAuthAuthorizationURL starts the OAuth flow for one provider.
func (srv *authService) OAuthAuthorizationURL(ctx context.Context, provider entity.ProviderType) (string, error) {
	oauthService, ok := srv.providers[provider]
	if !ok {
		return "", domainerrors.ErrOAuthFailed.WrapMessage("unknown oauth provider")
	}

	state, err := oauthService.GenerateState()
	if err != nil {
		srv.log(ctx).Error("Failed to generate oauth state", slog.String("provider", string(provider)), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to generate oauth state")
	}
	url := oauthService.BuildAuthorizationURL(state)

	srv.log(ctx).Debug("OAuth flow started", slog.String("provider", string(provider)))

	return url, nil
}

// OAuthCallback finishes the OAuth flow and issues a session. An account
// with the same email as the provider identity is linked rather than
// duplicated.
func (srv *authService) OAuthCallback(ctx context.Context, input *usecase.OAuthCallbackInput) (*usecase.AuthOutput, error) {
	oauthService, ok := srv.providers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("unknown oauth provider")
	}

	if !oauthService.ValidateState(input.State) {
		srv.log(ctx).Warn("OAuth state validation failed", slog.String("provider", string(input.Provider)))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("invalid state parameter")
	}

	accessToken, err := oauthService.ExchangeCodeForToken(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Error("OAuth code exchange failed", slog.String("provider", string(input.Provider)), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("code exchange failed")
	}

	oauthUser, err := oauthService.GetUserInfo(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Error("OAuth user info failed", slog.String("provider", string(input.Provider)), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("user info request failed")
	}

	var loggedInUser *entity.User
	var session *entity.Session
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findOrCreateOAuthUser(ctx, userRepo, oauthUser)
		if err != nil {
			return err
		}
		loggedInUser = user

		session, err = srv.issueSession(ctx, repoFactory.SessionRepo(), user.ID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute oauth callback transaction", slog.String("provider", string(input.Provider)), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("OAuth login", slog.Int64("userID", loggedInUser.ID), slog.String("provider", string(input.Provider)))

	return &usecase.AuthOutput{Token: session.ID, ExpiresAt: session.ExpiresAt, User: loggedInUser}, nil
}

// findOrCreateOAuthUser resolves a provider identity to a local account,
// linking by email when the address is already registered.
func (srv *authService) findOrCreateOAuthUser(ctx context.Context, userRepo repository.UserRepository, oauthUser *service.OAuthUser) (*entity.User, error) {
	user, err := userRepo.FindByProviderID(ctx, oauthUser.Provider, oauthUser.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up provider identity")
	}

	existing, err := userRepo.FindByEmail(ctx, oauthUser.Email)
	if err == nil {
		setProviderID(existing, oauthUser.Provider, oauthUser.ID)
		if err := userRepo.Update(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to link provider identity")
		}

		srv.log(ctx).Info("Linked provider identity to existing account", slog.Int64("userID", existing.ID))

		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up account by email")
	}

	newUser := &entity.User{
		Email:    oauthUser.Email,
		Name:     oauthUser.Name,
		Provider: oauthUser.Provider,
	}
	setProviderID(newUser, oauthUser.Provider, oauthUser.ID)

	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create oauth user")
	}

	srv.log(ctx).Info("Created account from provider identity", slog.Int64("userID", newUser.ID))

	return newUser, nil
}

func setProviderID(user *entity.User, provider entity.ProviderType, providerID string) {
	switch provider {
	case entity.ProviderGoogle:
		user.GoogleID = providerID
	case entity.ProviderGithub:
		user.GithubID = providerID
	}
}

// issueSession mints an opaque token and persists the session row.
func (srv *authService) issueSession(ctx context.Context, sessionRepo repository.SessionRepository, userID int64) (*entity.Session, error) {
	token, err := srv.tokens.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(srv.sessionTTL),
	}

	if err := sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return session, nil
}
