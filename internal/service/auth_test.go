package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/security"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60, 60)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	user := &domain.User{ID: 42, Email: "reviewer@example.org", PasswordHash: string(hash), Roles: []domain.Role{domain.RoleReviewer}}

	t.Run("Success", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewAuthService(users, tokens)

		users.On("GetByEmail", ctx, "reviewer@example.org").Return(user, nil)

		access, refresh, err := svc.Login(ctx, "Reviewer@Example.org ", "correct horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.True(t, claims.HasRole(domain.RoleReviewer))
	})

	t.Run("Wrong Password", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewAuthService(users, tokens)

		users.On("GetByEmail", ctx, "reviewer@example.org").Return(user, nil)

		_, _, err := svc.Login(ctx, "reviewer@example.org", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewAuthService(users, tokens)

		users.On("GetByEmail", ctx, "nobody@example.org").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "nobody@example.org", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60, 60)

	user := &domain.User{ID: 42, Email: "reviewer@example.org", Roles: []domain.Role{domain.RoleReviewer}}

	t.Run("Reissues Both Tokens", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewAuthService(users, tokens)

		refresh, err := tokens.GenerateRefreshToken(42, "reviewer@example.org")
		assert.NoError(t, err)
		users.On("GetByID", ctx, int32(42)).Return(user, nil)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Rejects Access Token", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewAuthService(users, tokens)

		access, err := tokens.GenerateAccessToken(42, "reviewer@example.org", user.Roles)
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60, 60)

	t.Run("Hashes Password", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewAuthService(users, tokens)

		users.On("GetByEmail", ctx, "printer@example.org").Return(nil, sql.ErrNoRows)
		users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.CreateUser(ctx, "Pat", "Printer@Example.org", "s3cret", []domain.Role{domain.RolePrinter})
		assert.NoError(t, err)
		assert.Equal(t, "printer@example.org", user.Email)
		assert.NotEqual(t, "s3cret", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		users := new(MockUserRepo)
		svc := NewAuthService(users, tokens)

		users.On("GetByEmail", ctx, "printer@example.org").Return(&domain.User{ID: 9}, nil)

		_, err := svc.CreateUser(ctx, "Pat", "printer@example.org", "s3cret", nil)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}
