package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/doggee/internal/apperr"
	"github.com/Skotchmaster/doggee/internal/logging"
	"github.com/Skotchmaster/doggee/internal/models"
	"github.com/Skotchmaster/doggee/internal/repo"
	"github.com/Skotchmaster/doggee/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) getUser(ctx context.Context, id uint, withDogs bool) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, id, withDogs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (*transport.Profile, error) {
	user, err := s.getUser(ctx, id, true)
	if err != nil {
		return nil, err
	}
	p := transport.ProfileFromUser(user)
	return &p, nil
}

func (s *UserService) AuthorizeOwner(ctx context.Context, actorID, id uint) error {
	if _, err := s.getUser(ctx, id, false); err != nil {
		return err
	}
	if actorID != id {
		return apperr.ErrAccessDenied
	}
	return nil
}

// UpdateProfile changes name, city and birthdate of user id. Only the user
// itself may do so.
func (s *UserService) UpdateProfile(ctx context.Context, actorID, id uint, req transport.UpdateProfileRequest) (*transport.Profile, error) {
	l := logging.FromContext(ctx).With("svc", "user.update_profile", "user_id", id)

	if err := s.AuthorizeOwner(ctx, actorID, id); err != nil {
		if errors.Is(err, apperr.ErrAccessDenied) {
			l.Warn("update_profile_failed", "status", 403, "reason", "not the profile owner", "actor_id", actorID)
		}
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Birthdate != nil {
		fields["birthdate"] = req.Birthdate.Time
	}

	if err := s.Repo.UpdateProfile(ctx, id, fields); err != nil {
		l.Error("update_profile_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return s.GetProfile(ctx, id)
}
