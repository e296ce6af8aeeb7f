package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tasksphere/tasksphere/apperrors"
	"github.com/tasksphere/tasksphere/dto"
	"github.com/tasksphere/tasksphere/models"
	"github.com/tasksphere/tasksphere/repositories"
)

// AuthService issues and verifies bearer tokens and manages accounts.
// Domain services never see tokens; the middleware resolves them to a user id.
type AuthService struct {
	users    *repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service instance
func NewAuthService(users *repositories.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user account
func (s *AuthService) Register(req dto.RegisterRequest) (models.User, error) {
	taken, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return models.User{}, apperrors.Internal(err)
	}
	if taken {
		return models.User{}, apperrors.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperrors.Internal(err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	created, err := s.users.Create(user)
	if err != nil {
		return models.User{}, apperrors.Internal(err)
	}
	return created, nil
}

// Login authenticates a user and returns a signed token
func (s *AuthService) Login(req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthResponse{}, apperrors.Unauthorized("invalid email or password")
		}
		return dto.AuthResponse{}, apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, apperrors.Unauthorized("invalid email or password")
	}

	token, expiresAt, err := s.GenerateToken(user)
	if err != nil {
		return dto.AuthResponse{}, apperrors.Internal(err)
	}

	return dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// CurrentUser returns the profile of the authenticated user
func (s *AuthService) CurrentUser(userID string) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NotFound("User not found")
		}
		return models.User{}, apperrors.Internal(err)
	}
	return user, nil
}

// GenerateToken generates a new JWT token for a user
func (s *AuthService) GenerateToken(user models.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := dto.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthorized("invalid token claims")
	}
	return claims, nil
}
