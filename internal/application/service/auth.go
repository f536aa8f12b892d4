package service

import (
	"context"

	"bodhira/internal/application/dto"
)

// AuthService defines the interface for account and token operations.
type AuthService interface {
	// Register creates a new account and returns a signed bearer token.
	Register(ctx context.Context, req dto.RegisterRequest) (string, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, req dto.LoginRequest) (string, error)
	// ParseToken validates a bearer token and returns the username it
	// was issued to.
	ParseToken(token string) (string, error)
}
