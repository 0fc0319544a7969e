package auth_test

import (
	"testing"
	"time"

	"coursework/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	email := "student@example.com"
	token, err := auth.GenerateToken(email, testSecret, 30*time.Minute)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := auth.ParseToken(token, testSecret)

	assert.NoError(t, err)
	assert.Equal(t, email, subject)
}

func TestParseToken_InvalidToken(t *testing.T) {
	_, err := auth.ParseToken("invalid-token", testSecret)

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("student@example.com", "other-secret", 30*time.Minute)
	assert.NoError(t, err)

	_, err = auth.ParseToken(token, testSecret)

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_ExpiredToken(t *testing.T) {
	// Token expired an hour ago
	claims := jwt.MapClaims{
		"sub": "student@example.com",
		"exp": jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	expiredToken, _ := token.SignedString([]byte(testSecret))

	_, err := auth.ParseToken(expiredToken, testSecret)

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_MissingSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenWithoutSubject, _ := token.SignedString([]byte(testSecret))

	_, err := auth.ParseToken(tokenWithoutSubject, testSecret)

	assert.Error(t, err)
	assert.Equal(t, "invalid claims", err.Error())
}
