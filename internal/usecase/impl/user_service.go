// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"
	"passport/internal/validate"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, srv.logger)
}

// Create orchestrates the complete user creation process: input validation,
// password hashing, name normalization and persistence.
func (srv *userService) Create(ctx context.Context, input usecase.CreateUserInput) (*usecase.PublicUser, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.ErrNameEmailRequired
	}
	if !validate.Email(input.Email) {
		return nil, domainerrors.ErrInvalidEmailFormat
	}
	if input.Password == "" {
		return nil, domainerrors.ErrPasswordRequired
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during user creation", "error", err)

		return nil, domainerrors.NewInternalError(err)
	}

	newUser := &entity.User{
		Name:         normalizeName(input.Name),
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Insert(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("User creation rejected, email already registered", "email", input.Email)

			return nil, domainerrors.ErrDuplicateEmail
		}
		srv.log(ctx).Error("Failed to insert user", "error", err, "email", input.Email)

		return nil, domainerrors.NewInternalError(err)
	}
	srv.log(ctx).Debug("User created successfully", "userID", newUser.ID)

	return toPublicUser(newUser), nil
}

// FindByID returns the public projection of the user with the given id.
// A malformed id and an unknown id are both reported as not found.
func (srv *userService) FindByID(ctx context.Context, id string) (*usecase.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to find user by id", "error", err, "userID", id)

		return nil, domainerrors.NewInternalError(err)
	}

	return toPublicUser(user), nil
}

// normalizeName trims surrounding whitespace and title-cases each word.
// Title casing is lossy ("McDonald" becomes "Mcdonald"); kept for
// compatibility with the records already in the store.
func normalizeName(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

// toPublicUser strips everything a client must not see, notably the password hash.
func toPublicUser(user *entity.User) *usecase.PublicUser {
	return &usecase.PublicUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
