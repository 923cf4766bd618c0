package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/Skotchmaster/doggee/internal/apperr"
	"github.com/Skotchmaster/doggee/internal/hash"
	"github.com/Skotchmaster/doggee/internal/logging"
	"github.com/Skotchmaster/doggee/internal/models"
	"github.com/Skotchmaster/doggee/internal/repo"
	"github.com/Skotchmaster/doggee/internal/tokens"
	"github.com/Skotchmaster/doggee/internal/transport"
	"github.com/Skotchmaster/doggee/internal/validation"
)

type AuthService struct {
	Repo      *repo.GormRepo
	Tokens    *tokens.Codec
	Hasher    hash.Hasher
	Validator *validation.Validator
	Events    EventPublisher

	dummyOnce sync.Once
	dummyHash string
}

type AuthResult struct {
	AccessToken  string
	RefreshToken string
	UserID       uint
}

func (s *AuthService) issuePair(id tokens.Identity) (string, string, error) {
	access, err := s.Tokens.IssueAccess(id)
	if err != nil {
		return "", "", fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.Tokens.IssueRefresh(id)
	if err != nil {
		return "", "", fmt.Errorf("issue refresh token: %w", err)
	}
	return access, refresh, nil
}

// dummy returns a valid hash used to burn the same bcrypt time on unknown
// usernames as on real ones.
func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Hasher.HashPassword("doggee-dummy-password")
	})
	return s.dummyHash
}

func (s *AuthService) Register(ctx context.Context, req transport.Credentials) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if err := s.Validator.Struct(req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "validation failed")
		return nil, err
	}

	if _, err := s.Repo.FindUserByUsername(ctx, req.Username); err == nil {
		l.Warn("register_error", "status", 401, "reason", "user already exists")
		return nil, apperr.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("register_error", "status", 500, "reason", "cannot look up user", "error", err)
		return nil, fmt.Errorf("register: %w", err)
	}

	pwHash, err := s.Hasher.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, fmt.Errorf("register: %w", err)
	}

	var res AuthResult
	err = s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		user := models.User{
			Username:     req.Username,
			PasswordHash: pwHash,
		}
		if err := tx.CreateUserIfNotExists(ctx, &user); err != nil {
			return err
		}

		access, refresh, err := s.issuePair(tokens.Identity{Username: user.Username, ID: user.ID})
		if err != nil {
			return err
		}
		if _, err := tx.AddRefreshToken(ctx, refresh, user.ID); err != nil {
			return err
		}

		res = AuthResult{AccessToken: access, RefreshToken: refresh, UserID: user.ID}
		return nil
	})
	if err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_error", "status", 401, "reason", "user already exists")
			return nil, apperr.ErrUserAlreadyExists
		}
		l.Error("register_error", "status", 500, "reason", "cannot create user", "error", err)
		return nil, fmt.Errorf("register: %w", err)
	}

	publish(ctx, s.Events, TopicUserEvents, Event{Type: "user_registered", UserID: res.UserID, Name: req.Username})

	l.Info("register_successful", "user_id", res.UserID)
	return &res, nil
}

// Login fails with the same error for an unknown username and for a wrong
// password.
func (s *AuthService) Login(ctx context.Context, req transport.Credentials) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if err := s.Validator.Struct(req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "validation failed")
		return nil, err
	}

	user, err := s.Repo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.Hasher.CheckPassword(s.dummy(), req.Password)
			l.Warn("login_failed", "status", 401, "reason", "invalid credentials")
			return nil, apperr.ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "reason", "cannot look up user", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.Hasher.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "status", 401, "reason", "invalid credentials")
		return nil, apperr.ErrInvalidCredentials
	}

	access, refresh, err := s.issuePair(tokens.Identity{Username: user.Username, ID: user.ID})
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	if _, err := s.Repo.AddRefreshToken(ctx, refresh, user.ID); err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot store refresh token", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	l.Info("login_successful", "user_id", user.ID)
	return &AuthResult{AccessToken: access, RefreshToken: refresh, UserID: user.ID}, nil
}

// Refresh exchanges a stored refresh token for a new pair and rewrites the
// stored row, so the presented token stops working.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	if refreshToken == "" {
		l.Warn("refresh_failed", "status", 401, "reason", "refresh token not provided")
		return nil, apperr.ErrRefreshTokenNotProvided
	}

	v := s.Tokens.VerifyRefresh(refreshToken)
	if !v.Valid() {
		l.Warn("refresh_failed", "status", 401, "reason", string(v.Reason))
		return nil, apperr.ErrInvalidRefreshToken
	}
	id := v.Claims.Identity()

	stored, err := s.Repo.FindRefreshToken(ctx, refreshToken, id.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("refresh_failed", "status", 401, "reason", "refresh token not stored", "user_id", id.ID)
			return nil, apperr.ErrInvalidRefreshToken
		}
		l.Error("refresh_failed", "status", 500, "reason", "cannot look up refresh token", "error", err)
		return nil, fmt.Errorf("refresh: %w", err)
	}

	access, refresh, err := s.issuePair(id)
	if err != nil {
		l.Error("refresh_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("refresh: %w", err)
	}

	if err := s.Repo.RotateRefreshToken(ctx, stored.ID, refreshToken, refresh); err != nil {
		if errors.Is(err, repo.ErrTokenRotated) {
			l.Warn("refresh_failed", "status", 401, "reason", "lost concurrent rotation", "user_id", id.ID)
			return nil, apperr.ErrInvalidRefreshToken
		}
		l.Error("refresh_failed", "status", 500, "reason", "cannot rotate refresh token", "error", err)
		return nil, fmt.Errorf("refresh: %w", err)
	}

	l.Info("refresh_successful", "user_id", id.ID)
	return &AuthResult{AccessToken: access, RefreshToken: refresh, UserID: id.ID}, nil
}
