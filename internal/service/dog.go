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
	"github.com/Skotchmaster/doggee/internal/validation"
)

type DogService struct {
	Repo      *repo.GormRepo
	Validator *validation.Validator
	Events    EventPublisher
}

func (s *DogService) requireUser(ctx context.Context, userID uint) error {
	if _, err := s.Repo.GetUserByID(ctx, userID, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrUserNotFound
		}
		return fmt.Errorf("get user %d: %w", userID, err)
	}
	return nil
}

// AuthorizeOwner fails with user_not_found if userID does not exist and with
// access_denied if actorID is someone else.
func (s *DogService) AuthorizeOwner(ctx context.Context, actorID, userID uint) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	if actorID != userID {
		return apperr.ErrAccessDenied
	}
	return nil
}

// Owned resolves dogID among userID's dogs and checks that actorID owns it.
// Handlers call it before decoding a request body.
func (s *DogService) Owned(ctx context.Context, actorID, userID, dogID uint) (*models.Dog, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	dog, err := s.Repo.FindDog(ctx, userID, dogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrDogNotFound
		}
		return nil, fmt.Errorf("find dog %d: %w", dogID, err)
	}

	if dog.OwnerID != actorID {
		return nil, apperr.ErrAccessDenied
	}
	return dog, nil
}

func (s *DogService) ListDogs(ctx context.Context, userID uint) ([]models.Dog, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	dogs, err := s.Repo.ListDogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	return dogs, nil
}

func (s *DogService) CreateDog(ctx context.Context, actorID, userID uint, req transport.CreateDogRequest) (*models.Dog, error) {
	l := logging.FromContext(ctx).With("svc", "dog.create", "user_id", userID)

	if err := s.AuthorizeOwner(ctx, actorID, userID); err != nil {
		if errors.Is(err, apperr.ErrAccessDenied) {
			l.Warn("create_dog_failed", "status", 403, "reason", "not the owner", "actor_id", actorID)
		}
		return nil, err
	}
	if err := s.Validator.Struct(req); err != nil {
		return nil, err
	}

	dog := models.Dog{
		Name:      req.Name,
		Breed:     req.Breed,
		Birthdate: req.Birthdate.TimePtr(),
		Weight:    req.Weight,
		OwnerID:   userID,
	}
	if err := s.Repo.CreateDog(ctx, &dog); err != nil {
		l.Error("create_dog_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("create dog: %w", err)
	}

	publish(ctx, s.Events, TopicDogEvents, Event{Type: "dog_created", UserID: userID, DogID: dog.ID, Name: dog.Name})
	return &dog, nil
}

func (s *DogService) UpdateDog(ctx context.Context, actorID, userID, dogID uint, req transport.UpdateDogRequest) (*models.Dog, error) {
	l := logging.FromContext(ctx).With("svc", "dog.update", "user_id", userID, "dog_id", dogID)

	dog, err := s.Owned(ctx, actorID, userID, dogID)
	if err != nil {
		if errors.Is(err, apperr.ErrAccessDenied) {
			l.Warn("update_dog_failed", "status", 403, "reason", "not the owner", "actor_id", actorID)
		}
		return nil, err
	}
	if err := s.Validator.Struct(req); err != nil {
		return nil, err
	}

	if req.Name != nil {
		dog.Name = *req.Name
	}
	if req.Breed != nil {
		dog.Breed = *req.Breed
	}
	if req.Birthdate != nil {
		dog.Birthdate = req.Birthdate.TimePtr()
	}
	if req.Weight != nil {
		dog.Weight = req.Weight
	}

	if err := s.Repo.SaveDog(ctx, dog); err != nil {
		l.Error("update_dog_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("update dog: %w", err)
	}

	publish(ctx, s.Events, TopicDogEvents, Event{Type: "dog_updated", UserID: userID, DogID: dog.ID, Name: dog.Name})
	return dog, nil
}

func (s *DogService) DeleteDog(ctx context.Context, actorID, userID, dogID uint) error {
	l := logging.FromContext(ctx).With("svc", "dog.delete", "user_id", userID, "dog_id", dogID)

	dog, err := s.Owned(ctx, actorID, userID, dogID)
	if err != nil {
		if errors.Is(err, apperr.ErrAccessDenied) {
			l.Warn("delete_dog_failed", "status", 403, "reason", "not the owner", "actor_id", actorID)
		}
		return err
	}

	if err := s.Repo.DeleteDog(ctx, dog.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrDogNotFound
		}
		l.Error("delete_dog_failed", "status", 500, "error", err)
		return fmt.Errorf("delete dog: %w", err)
	}

	publish(ctx, s.Events, TopicDogEvents, Event{Type: "dog_deleted", UserID: userID, DogID: dog.ID})
	return nil
}
