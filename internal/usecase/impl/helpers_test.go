package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(userRepo, hasher, newDiscardLogger())

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	users        *mockUC.MockUserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	users := mockUC.NewMockUserUsecase(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(users, userRepo, hasher, tokenService, newDiscardLogger())

	return authServiceFixtures{
		service:      service,
		users:        users,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}
