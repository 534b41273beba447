// internal/services/auth_service.go
// Signup / login / refresh / logout user dengan bcrypt + JWT

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"alphawell/internal/auth"
	"alphawell/internal/models"
	"alphawell/internal/repositories"
	"alphawell/internal/util"
)

// MinPasswordLen harus sama dengan tag min pada SignupInput.Password.
const MinPasswordLen = 6

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
	Role     string `json:"role"`
}

type Session struct {
	auth.Pair
	User models.User `json:"user"`
}

type AuthService struct {
	users      repositories.UserRepository
	tokens     *auth.Manager
	bcryptCost int
	log        *zap.Logger
}

func NewAuthService(users repositories.UserRepository, tokens *auth.Manager, bcryptCost int, log *zap.Logger) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := util.Validate(in); err != nil {
		return nil, err
	}
	email := in.Email
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	u := models.User{
		ID:           util.NewID(),
		Name:         name,
		Email:        email,
		Role:         models.ParseRole(in.Role),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, util.Conflict("email already registered")
		}
		return nil, err
	}
	s.log.Info("user signed up", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return s.session(u)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, util.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, util.Unauthorized("invalid credentials")
	}
	return s.session(u)
}

// Refresh menerbitkan access token baru; refresh token lama tetap berlaku sampai expiry/logout.
func (s *AuthService) Refresh(ctx context.Context, refresh string) (*auth.Pair, error) {
	c, err := s.tokens.ParseRefresh(refresh)
	if err != nil {
		return nil, util.Unauthorized("invalid refresh token")
	}
	u, err := s.users.FindByID(ctx, c.Subject)
	if err != nil {
		return nil, util.Unauthorized("invalid refresh token")
	}
	pair, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	pair.Refresh = refresh
	return &pair, nil
}

func (s *AuthService) Logout(_ context.Context, refresh string) error {
	if err := s.tokens.Revoke(refresh); err != nil {
		return util.Unauthorized("invalid refresh token")
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (models.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.User{}, util.NotFound("user not found")
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *AuthService) session(u models.User) (*Session, error) {
	pair, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{Pair: pair, User: u}, nil
}
