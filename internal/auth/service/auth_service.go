package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/logger"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/users"
)

var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters long", auth.MinPasswordLength)
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserRepository is the user store the service needs.
type UserRepository interface {
	Create(ctx context.Context, u *users.User) error
	GetByUsername(ctx context.Context, username string) (*users.User, error)
	GetByID(ctx context.Context, id int64) (*users.User, error)
	EnsureUser(ctx context.Context, u users.UpsertUser) (int64, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginResult is returned to the client after a successful login.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        *users.User `json:"user"`
}

type AuthService struct {
	users    UserRepository
	tokens   *auth.TokenManager
	revoker  auth.Revoker
	external auth.IDTokenVerifier
}

// NewAuthService wires the service. external may be nil, which disables
// Firebase ID tokens.
func NewAuthService(repo UserRepository, tokens *auth.TokenManager, revoker auth.Revoker, external auth.IDTokenVerifier) *AuthService {
	return &AuthService{users: repo, tokens: tokens, revoker: revoker, external: external}
}

// Register creates an account. Duplicate usernames or emails return
// users.ErrExists.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*users.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(in.Password) < auth.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &users.User{Username: in.Username, Email: in.Email, HashedPassword: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	logger.Op(ctx, "auth.register").Info("user registered", "user_id", u.ID)
	return u, nil
}

// Login checks the password and issues an access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}

	if auth.NeedsRehash(u.HashedPassword) {
		s.upgradePassword(ctx, u, password)
	}

	token, claims, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        u,
	}, nil
}

func (s *AuthService) upgradePassword(ctx context.Context, u *users.User, password string) {
	log := logger.Op(ctx, "auth.rehash")
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Warn("rehash failed", "user_id", u.ID, "error", err)
		return
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		log.Warn("storing upgraded hash failed", "user_id", u.ID, "error", err)
		return
	}
	u.HashedPassword = hash
}

// Logout revokes the token until it expires.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return auth.ErrInvalidToken
	}
	return s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// Authenticate resolves a bearer token to a user. Access tokens are tried
// first; anything else is offered to the external verifier when configured.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err == nil {
		revoked, rerr := s.revoker.IsRevoked(ctx, claims.ID)
		if rerr != nil {
			return nil, rerr
		}
		if revoked {
			return nil, auth.ErrTokenRevoked
		}
		return &auth.Principal{UserID: claims.UserID, Username: claims.Subject, Claims: claims}, nil
	}
	if errors.Is(err, auth.ErrExpiredToken) || s.external == nil {
		return nil, err
	}
	return s.authenticateExternal(ctx, token)
}

func (s *AuthService) authenticateExternal(ctx context.Context, idToken string) (*auth.Principal, error) {
	decoded, err := s.external.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	email, _ := decoded.Claims["email"].(string)
	id, err := s.users.EnsureUser(ctx, users.UpsertUser{ExternalID: decoded.UID, Email: email})
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}
	return &auth.Principal{UserID: id, Username: users.ExternalUsername(decoded.UID)}, nil
}

// Me returns the current user.
func (s *AuthService) Me(ctx context.Context, id int64) (*users.User, error) {
	return s.users.GetByID(ctx, id)
}
