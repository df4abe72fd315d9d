package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users    usecase.UserUsecase
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	users usecase.UserUsecase,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:    users,
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, srv.logger)
}

// Login verifies the credentials and issues an access token. An unknown email
// and a wrong password return the same error so the response does not leak
// which accounts exist.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrEmailPasswordRequired
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", "email", input.Email)

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up user for login", "error", err)

		return nil, domainerrors.NewInternalError(err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", "userID", user.ID)

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := srv.tokenSvc.GenerateToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", "error", err, "userID", user.ID)

		return nil, domainerrors.NewInternalError(err)
	}
	srv.log(ctx).Debug("User logged in successfully", "userID", user.ID)

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		User:        toPublicUser(user),
	}, nil
}

// Register delegates account creation to the user usecase, then issues an
// access token for the new account. Creation failures propagate unchanged.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrRegistrationFieldsRequired
	}

	createdUser, err := srv.users.Create(ctx, usecase.CreateUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenSvc.GenerateToken(createdUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", "error", err, "userID", createdUser.ID)

		return nil, domainerrors.NewInternalError(err)
	}
	srv.log(ctx).Debug("User registered successfully", "userID", createdUser.ID)

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		User:        createdUser,
	}, nil
}
