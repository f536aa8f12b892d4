package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bodhira/internal/application/dto"
	"bodhira/internal/domain/entity"
	"bodhira/internal/domain/repository"
	appErrors "bodhira/internal/pkg/errors"
	"bodhira/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	log      logger.Logger
}

// NewAuthService creates a new instance of AuthService implementation.
// secret is the HMAC key used to sign bearer tokens.
func NewAuthService(userRepo repository.UserRepository, secret string, log logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		secret:   []byte(secret),
		log:      log,
	}
}

// Register creates a new account with a bcrypt-hashed password and
// returns a signed token for it.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	_, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		return "", appErrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error(fmt.Sprintf("Failed to check existing user %s", req.Username), err)
		return "", fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password", err)
		return "", fmt.Errorf("%w: %v", appErrors.ErrInternalServer, err)
	}

	user := &entity.User{
		Username:             req.Username,
		PasswordHash:         string(hash),
		NotificationsEnabled: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create user %s", req.Username), err)
		return "", fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Registered new user %s", req.Username))
	return s.issueToken(user.Username)
}

// Login verifies the credentials and returns a signed token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", appErrors.ErrInvalidCredentials
		}
		s.log.Error(fmt.Sprintf("Failed to find user %s during login", req.Username), err)
		return "", fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", appErrors.ErrInvalidCredentials
	}

	return s.issueToken(user.Username)
}

// issueToken signs a token carrying the username as subject.
func (s *authService) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to sign token for user %s", username), err)
		return "", fmt.Errorf("%w: %v", appErrors.ErrInternalServer, err)
	}
	return signed, nil
}

// ParseToken validates a bearer token and returns its subject.
func (s *authService) ParseToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", appErrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", appErrors.ErrInvalidToken
	}
	return claims.Subject, nil
}
