package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"obsydia_retail/internal/infrastructure/logging"
)

var (
	ErrAdminNotConfigured = errors.New("admin login not configured")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// IAdminAuthUseCase guards the admin dashboard with a single configured
// account and short-lived HS256 tokens.
type IAdminAuthUseCase interface {
	Login(ctx context.Context, username, password string) (string, error)
	Verify(token string) (string, error)
}

type AdminCredentials struct {
	Username     string
	PasswordHash []byte
	JWTSecret    []byte
	TokenTTL     time.Duration
}

type AdminAuthUseCase struct {
	creds AdminCredentials
	now   func() time.Time
}

var _ IAdminAuthUseCase = (*AdminAuthUseCase)(nil)

func NewAdminAuthUseCase(creds AdminCredentials) *AdminAuthUseCase {
	if creds.TokenTTL <= 0 {
		creds.TokenTTL = 12 * time.Hour
	}
	return &AdminAuthUseCase{creds: creds, now: time.Now}
}

// HashAdminPassword derives the bcrypt hash used when only a plain password
// is configured.
func HashAdminPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func (u *AdminAuthUseCase) configured() bool {
	return u.creds.Username != "" && len(u.creds.PasswordHash) > 0 && len(u.creds.JWTSecret) > 0
}

func (u *AdminAuthUseCase) Login(_ context.Context, username, password string) (string, error) {
	if !u.configured() {
		logging.L().Warnf("[admin][auth] login attempted but admin account is not configured")
		return "", ErrAdminNotConfigured
	}

	username = strings.TrimSpace(username)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.creds.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword(u.creds.PasswordHash, []byte(password))
	if !userOK || passErr != nil {
		logging.L().Infof("[admin][auth] login rejected username=%q", username)
		return "", ErrInvalidCredentials
	}

	now := u.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   u.creds.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.creds.TokenTTL)),
	})
	signed, err := token.SignedString(u.creds.JWTSecret)
	if err != nil {
		return "", err
	}
	logging.L().Infof("[admin][auth] login success username=%q", username)
	return signed, nil
}

// Verify returns the token subject when the token is valid.
func (u *AdminAuthUseCase) Verify(tokenString string) (string, error) {
	if !u.configured() {
		return "", ErrAdminNotConfigured
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return u.creds.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(u.now))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject != u.creds.Username {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
