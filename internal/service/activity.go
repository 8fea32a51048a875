package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
	"github.com/FrankMwesigwa/ntlp-conf/internal/service/ports"
)

type ActivityService struct {
	repo     ports.ActivityRepo
	userRepo ports.UserRepo
}

func NewActivityService(repo ports.ActivityRepo, userRepo ports.UserRepo) *ActivityService {
	return &ActivityService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *ActivityService) Create(ctx context.Context, input domain.ActivityInput) (*domain.Activity, error) {
	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.UserID == 0 {
		missing = append(missing, "userid")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{MissingFields: missing}
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrActivityUserUnknown
		}
		return nil, fmt.Errorf("check user: %w", err)
	}

	activity := &domain.Activity{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	// Re-read to include the owning user.
	return s.repo.GetByID(ctx, activity.ID)
}

func (s *ActivityService) Get(ctx context.Context, id int64) (*domain.Activity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ActivityService) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.repo.List(ctx)
}

func (s *ActivityService) ListByUser(ctx context.Context, userID int64) ([]*domain.Activity, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *ActivityService) Update(ctx context.Context, id int64, input domain.ActivityInput) (*domain.Activity, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UserID != 0 && input.UserID != activity.UserID {
		if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrActivityUserUnknown
			}
			return nil, fmt.Errorf("check user: %w", err)
		}
		activity.UserID = input.UserID
	}
	activity.Title = input.Title
	activity.Description = input.Description

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *ActivityService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
