package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"fashionstore/internal/domain"
	userrepo "fashionstore/internal/repository/user"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles signup/login and token validation.
type Service struct {
	repo        repo
	secret      []byte
	expiry      time.Duration
	passwordMin int
}

type repo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

func New(repo userrepo.Repository, secret string, expiry time.Duration) *Service {
	return &Service{
		repo:        repo,
		secret:      []byte(secret),
		expiry:      expiry,
		passwordMin: 8,
	}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register creates a new user with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, errors.New("email required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         strings.TrimSpace(in.Name),
	})
}

// Login validates credentials and returns the user plus a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Claims is the caller identity carried by a valid access token.
type Claims struct {
	UserID  int64
	Email   string
	IsAdmin bool
}

// ParseToken validates a signed token and extracts its claims.
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	return &Claims{UserID: userID, Email: email, IsAdmin: role == "admin"}, nil
}

// Lookup resolves the user bound to previously parsed claims.
func (s *Service) Lookup(ctx context.Context, claims *Claims) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) issueToken(u *domain.User) (string, error) {
	role := "customer"
	if u.IsAdmin {
		role = "admin"
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatInt(u.ID, 10),
		"email": u.Email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiry).Unix(),
	})
	return token.SignedString(s.secret)
}
