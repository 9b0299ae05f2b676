// Package auth implements the demo credential flow: two fixed roles
// with bcrypt-checked passwords, JWT access tokens, and a single Redis
// key remembering which role is signed in.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindplayhq/mindplay-server/internal/auth/jwt"
)

// Roles recognized by the login flow.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

const activeRoleKey = "auth:active_role"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
)

// Service validates the fixed demo credentials and issues tokens.
type Service struct {
	redis       *redis.Client
	tokens      *jwt.Manager
	studentHash []byte
	teacherHash []byte
	logger      zerolog.Logger
}

// NewService constructs the auth service. The hashes are bcrypt
// digests of the per-role passwords.
func NewService(redisClient *redis.Client, tokens *jwt.Manager, studentHash, teacherHash string, logger zerolog.Logger) *Service {
	return &Service{
		redis:       redisClient,
		tokens:      tokens,
		studentHash: []byte(studentHash),
		teacherHash: []byte(teacherHash),
		logger:      logger.With().Str("component", "auth").Logger(),
	}
}

// LoginRequest carries a role selection and its password.
type LoginRequest struct {
	Role        string
	Password    string
	DisplayName string
}

// LoginResult is returned on a successful credential check.
type LoginResult struct {
	Token       string    `json:"token"`
	Role        string    `json:"role"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
}

// Login checks the password for the requested role, records the active
// role, and issues a token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	var hash []byte
	switch req.Role {
	case RoleStudent:
		hash = s.studentHash
	case RoleTeacher:
		hash = s.teacherHash
	default:
		return LoginResult{}, fmt.Errorf("%w: %s", ErrUnknownRole, req.Role)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = defaultDisplayName(req.Role)
	}

	user := jwt.User{ID: uuid.New(), DisplayName: displayName, Role: req.Role}
	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, activeRoleKey, req.Role, 0).Err(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to persist active role")
		}
	}

	s.logger.Info().Str("role", req.Role).Msg("login succeeded")
	return LoginResult{Token: token, Role: req.Role, UserID: user.ID, DisplayName: displayName}, nil
}

// Logout clears the remembered role.
func (s *Service) Logout(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	if err := s.redis.Del(ctx, activeRoleKey).Err(); err != nil {
		return fmt.Errorf("clear active role: %w", err)
	}
	return nil
}

// ActiveRole reports which role is signed in, empty when none.
func (s *Service) ActiveRole(ctx context.Context) (string, error) {
	if s.redis == nil {
		return "", nil
	}
	role, err := s.redis.Get(ctx, activeRoleKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read active role: %w", err)
	}
	return role, nil
}

// Validate parses an access token.
func (s *Service) Validate(token string) (*jwt.Claims, error) {
	return s.tokens.ValidateToken(token)
}

func defaultDisplayName(role string) string {
	if role == RoleTeacher {
		return "Teacher"
	}
	return "Student"
}

// HashPassword produces a bcrypt digest, used by provisioning tooling.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
