package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestHashPassword(t *testing.T) {
	t.Run("Successfully hash password", func(t *testing.T) {
		password := "mySecurePassword123"
		hashed, err := HashPassword(password)

		assert.NoError(t, err)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, password, hashed)
	})

	t.Run("Different hashes for same password", func(t *testing.T) {
		password := "samePassword"
		hash1, _ := HashPassword(password)
		hash2, _ := HashPassword(password)

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPassword(t *testing.T) {
	password := "correctPassword"
	hashed, _ := HashPassword(password)

	t.Run("Correct password", func(t *testing.T) {
		assert.True(t, CheckPassword(hashed, password))
	})

	t.Run("Incorrect password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, "wrongPassword"))
	})

	t.Run("Empty password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, ""))
	})
}

func TestGenerateAccessToken(t *testing.T) {
	t.Run("Successfully generate access token", func(t *testing.T) {
		token, err := GenerateAccessToken(1, "aluno@example.com", RoleStudent, testSecret)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		token, err := GenerateAccessToken(1, "aluno@example.com", RoleStudent, "")

		assert.ErrorIs(t, err, ErrEmptyJWTSecret)
		assert.Empty(t, token)
	})

	t.Run("Token contains correct claims", func(t *testing.T) {
		token, err := GenerateAccessToken(42, "admin@example.com", RoleAdmin, testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, RoleAdmin, claims.Role)
		assert.Equal(t, "access", claims.TokenType)
	})
}

func TestGenerateRefreshToken(t *testing.T) {
	t.Run("Successfully generate refresh token", func(t *testing.T) {
		token, err := GenerateRefreshToken(1, "aluno@example.com", RoleStudent, testSecret)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Refresh token has longer expiration", func(t *testing.T) {
		token, err := GenerateRefreshToken(1, "aluno@example.com", RoleStudent, testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		assert.Equal(t, "refresh", claims.TokenType)

		expectedExpiry := time.Now().Add(RefreshTokenTTL)
		diff := claims.ExpiresAt.Time.Sub(expectedExpiry).Abs()
		assert.Less(t, diff, 2*time.Second)
	})
}

func TestGenerateTokens(t *testing.T) {
	t.Run("Successfully generate both tokens", func(t *testing.T) {
		accessToken, refreshToken, err := GenerateTokens(1, "aluno@example.com", RoleStudent, testSecret)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.NotEqual(t, accessToken, refreshToken)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		accessToken, refreshToken, err := GenerateTokens(1, "aluno@example.com", RoleStudent, "")

		assert.Error(t, err)
		assert.Empty(t, accessToken)
		assert.Empty(t, refreshToken)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Valid token", func(t *testing.T) {
		token, _ := GenerateAccessToken(1, "aluno@example.com", RoleStudent, testSecret)

		claims, err := ValidateToken(token, testSecret)

		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, _ := GenerateAccessToken(1, "aluno@example.com", RoleStudent, testSecret)

		claims, err := ValidateToken(token, "another-secret")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Garbage token", func(t *testing.T) {
		claims, err := ValidateToken("not.a.token", testSecret)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Empty secret", func(t *testing.T) {
		claims, err := ValidateToken("whatever", "")

		assert.ErrorIs(t, err, ErrEmptyJWTSecret)
		assert.Nil(t, claims)
	})
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("Successfully refresh", func(t *testing.T) {
		refreshToken, err := GenerateRefreshToken(7, "aluno@example.com", RoleStudent, testSecret)
		require.NoError(t, err)

		newAccess, claims, err := RefreshAccessToken(refreshToken, testSecret)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.Equal(t, 7, claims.UserID)

		accessClaims, err := ValidateToken(newAccess, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "access", accessClaims.TokenType)
	})

	t.Run("Access token rejected", func(t *testing.T) {
		accessToken, err := GenerateAccessToken(7, "aluno@example.com", RoleStudent, testSecret)
		require.NoError(t, err)

		newAccess, claims, err := RefreshAccessToken(accessToken, testSecret)

		assert.ErrorIs(t, err, ErrInvalidTokenType)
		assert.Empty(t, newAccess)
		assert.Nil(t, claims)
	})
}
