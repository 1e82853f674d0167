package services

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
	"github.com/mkobayashi-dev/freshtrack/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameExists = errors.New("username is already taken")
	ErrEmailExists    = errors.New("email is already registered")

	// ErrInvalidCredentials covers both unknown-username and
	// wrong-password logins so the response never helps username
	// enumeration. The distinction is only logged server-side.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError describes a rejected signup field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (int64, error)
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	token  TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, token TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		token:  token,
	}
}

// Register validates the signup input, checks username then email for
// conflicts and persists the new user with a bcrypt password hash.
// Validation runs before any persistence, so a rejected signup has no
// side effects. The existence checks are advisory: a registration that
// loses the race against a concurrent insert surfaces the same
// conflict error via the unique constraints.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := validateSignup(username, email, password); err != nil {
		return err
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Warnw("username already taken", "username", username)
		return ErrUsernameExists
	}

	existing, err = svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, username, email, string(hashedPassword)); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateUsername):
			return ErrUsernameExists
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return ErrEmailExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a signed bearer token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown username", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("password mismatch", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.token.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// validateSignup applies the signup rules. username and email are
// already trimmed. Each rule reports its own message so the client can
// tell which one failed.
func validateSignup(username, email, password string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "username must not be empty"}
	}
	if len(username) > 50 {
		return &ValidationError{Field: "username", Message: "username must be at most 50 characters"}
	}

	if email == "" {
		return &ValidationError{Field: "email", Message: "email must not be empty"}
	}
	if len(email) > 100 {
		return &ValidationError{Field: "email", Message: "email must be at most 100 characters"}
	}

	if len(password) < 8 {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	if len(password) > 100 {
		return &ValidationError{Field: "password", Message: "password must be at most 100 characters"}
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		return &ValidationError{Field: "password", Message: "password must contain at least one letter"}
	}
	if !hasDigit {
		return &ValidationError{Field: "password", Message: "password must contain at least one digit"}
	}

	return nil
}
