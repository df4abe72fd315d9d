package usecase

import "context"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthOutput returns the issued access token together with the public user.
type AuthOutput struct {
	AccessToken string      `json:"access_token"`
	User        *PublicUser `json:"user"`
}

// AuthUsecase defines the interface for authentication business operations.
type AuthUsecase interface {
	// Login verifies the credentials and issues an access token bound to the
	// user's id. A missing account and a wrong password are indistinguishable.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Register delegates account creation to the user usecase and issues an
	// access token for the newly created user. Creation errors propagate verbatim.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
}
