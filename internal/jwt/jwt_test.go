package jwt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/mkobayashi-dev/freshtrack/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndGetUserID(t *testing.T) {
	j := jwt.New("test-secret", time.Minute)

	token, err := j.Generate(context.Background(), 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := j.GetUserID(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserID_Expired(t *testing.T) {
	j := jwt.New("test-secret", -time.Minute)

	token, err := j.Generate(context.Background(), 42)
	assert.NoError(t, err)

	_, err = j.GetUserID(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestGetUserID_WrongSecret(t *testing.T) {
	issuer := jwt.New("secret-a", time.Minute)
	verifier := jwt.New("secret-b", time.Minute)

	token, err := issuer.Generate(context.Background(), 42)
	assert.NoError(t, err)

	_, err = verifier.GetUserID(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestGetUserID_Garbage(t *testing.T) {
	j := jwt.New("test-secret", time.Minute)

	_, err := j.GetUserID(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestGetUserID_MissingSubject(t *testing.T) {
	j := jwt.New("test-secret", time.Minute)

	claims := gojwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = j.GetUserID(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenMissingSubject)
}

func TestGetUserID_NonNumericSubject(t *testing.T) {
	j := jwt.New("test-secret", time.Minute)

	claims := gojwt.MapClaims{
		"sub": "not-a-number",
		"exp": time.Now().Add(time.Minute).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = j.GetUserID(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestGetTokenFromRequest(t *testing.T) {
	j := jwt.New("test-secret", time.Minute)

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "valid bearer header",
			header:    "Bearer sometoken",
			wantToken: "sometoken",
		},
		{
			name:      "lowercase scheme accepted",
			header:    "bearer sometoken",
			wantToken: "sometoken",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  "Basic sometoken",
			wantErr: true,
		},
		{
			name:    "no token part",
			header:  "Bearer",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
