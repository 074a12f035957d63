package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/sangkips/kuittikone/pkg/utils"
)

// AuthService authenticates the store administrator
type AuthService struct {
	jwtManager   *utils.JWTManager
	username     string
	passwordHash string
	tokenExpiry  time.Duration
}

// NewAuthService creates a new auth service. An empty password hash
// disables login.
func NewAuthService(jwtManager *utils.JWTManager, username, passwordHash string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		jwtManager:   jwtManager,
		username:     username,
		passwordHash: passwordHash,
		tokenExpiry:  tokenExpiry,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Username    string
	AccessToken string
	ExpiresIn   int64
}

// Login checks the administrator credentials and returns an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if s.passwordHash == "" {
		log.Warn().Msg("login attempted but no admin password hash is configured")
		return nil, apperror.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.username)) != 1 {
		return nil, apperror.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(input.Password, s.passwordHash) {
		log.Warn().Str("username", input.Username).Msg("failed admin login")
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(s.username, []string{utils.RoleAdmin})
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	log.Info().Str("username", s.username).Msg("admin logged in")
	return &LoginOutput{
		Username:    s.username,
		AccessToken: token,
		ExpiresIn:   int64(s.tokenExpiry.Seconds()),
	}, nil
}

// ValidateToken returns the claims of a valid access token
func (s *AuthService) ValidateToken(token string) (*utils.JWTClaims, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	return claims, nil
}
