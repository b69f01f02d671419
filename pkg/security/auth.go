package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// InvalidCredentials is the only message a failed login ever returns.
const InvalidCredentials = "Invalid username or password"

type AdminFinder interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// TokenIssuer signs and verifies HS256 tokens whose subject is the admin username.
type TokenIssuer struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewTokenIssuer(secret string, expiration time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

func (i *TokenIssuer) GenerateJWT(username string) (string, error) {
	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.expiration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Username validates tokenString and returns its subject.
func (i *TokenIssuer) Username(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return "", custom_error.NewUnauthorized("Invalid token")
	}
	if claims.Subject == "" {
		return "", custom_error.NewUnauthorized("Invalid token")
	}

	return claims.Subject, nil
}

// AuthenticateAdmin checks the password against the stored bcrypt hash. Unknown
// usernames and wrong passwords fail the same way.
func AuthenticateAdmin(ctx context.Context, admins AdminFinder, username, password string) (*models.Admin, error) {
	admin, err := admins.FindByUsername(ctx, username)
	if err != nil {
		var notFound *custom_error.NotFoundError
		if errors.As(err, &notFound) {
			return nil, custom_error.NewUnauthorized(InvalidCredentials)
		}
		return nil, err
	}

	if !CheckPassword(admin.PasswordHash, password) {
		return nil, custom_error.NewUnauthorized(InvalidCredentials)
	}

	return admin, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
