package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
)

// Sessions last as long as the legacy portal kept users signed in.
const sessionTTL = 30 * 24 * time.Hour

type AuthService struct {
	users  ports.UserRepository
	secret []byte
}

func NewAuthService(users ports.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret)}
}

var _ ports.AuthService = (*AuthService)(nil)

type sessionClaims struct {
	Name string          `json:"name"`
	Role domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Login verifies credentials and issues a signed session token. Archived
// users cannot sign in.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}
	if user.Archived() {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.User{}, err
	}
	return signed, user, nil
}

func (s *AuthService) ParseToken(token string) (domain.Session, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	if !parsed.Valid {
		return domain.Session{}, jwt.ErrTokenUnverifiable
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return domain.Session{}, fmt.Errorf("invalid subject claim %q", claims.Subject)
	}

	return domain.Session{
		UserID: userID,
		Name:   claims.Name,
		Role:   claims.Role,
	}, nil
}
