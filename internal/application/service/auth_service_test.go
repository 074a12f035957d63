package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/sangkips/kuittikone/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(jwtManager, "admin", hash, time.Hour)

	out, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), out.ExpiresIn)

	claims, err := svc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.HasRole(utils.RoleAdmin))

	_, err = svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginInput{Username: "root", Password: "s3cret"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestAuthService_LoginDisabledWithoutHash(t *testing.T) {
	svc := NewAuthService(utils.NewJWTManager("x", time.Hour), "admin", "", time.Hour)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: ""})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
