package auth

import (
	"context"
	"testing"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/auth"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/jwt"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() auth.AuthService {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")
	return NewAuthService(nil, nil, nil, jwtService, nil)
}

// Validation failures must short-circuit before any repository is touched;
// the service is built with nil repositories to prove it.

func TestAuthService_Register_ValidationErrors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  auth.RegisterRequest
	}{
		{"empty request", auth.RegisterRequest{}},
		{"invalid email", auth.RegisterRequest{
			CompanyName: "Lopez HVAC", Email: "not-an-email",
			Password: "password123", ConfirmPassword: "password123",
		}},
		{"password mismatch", auth.RegisterRequest{
			CompanyName: "Lopez HVAC", Email: "owner@example.com",
			Password: "password123", ConfirmPassword: "different456",
		}},
		{"short password", auth.RegisterRequest{
			CompanyName: "Lopez HVAC", Email: "owner@example.com",
			Password: "short", ConfirmPassword: "short",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestAuthService_Login_ValidationErrors(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAuthService_RefreshToken_RejectsGarbageToken(t *testing.T) {
	svc := newTestService()

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: "not.a.jwt",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_RejectsAccessTokenType(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")
	svc := NewAuthService(nil, nil, nil, jwtService, nil)

	// A valid token of the wrong type must not mint a new access token.
	accessToken, _, err := jwtService.GenerateAccessToken("u1", "c1", nil, "owner")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: accessToken,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
