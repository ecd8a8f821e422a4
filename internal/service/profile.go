package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/worldme/worldme/internal/models"
)

// ProfileRepository определяет контракт для работы с бд профилей
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// ProfileService определяет контракт публичных профилей (имя и аватар)
type ProfileService interface {
	SaveProfile(ctx context.Context, profile *models.Profile) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

type profileService struct {
	repo   ProfileRepository
	logger *logrus.Logger
}

func NewProfileService(repo ProfileRepository, logger *logrus.Logger) ProfileService {
	return &profileService{
		repo:   repo,
		logger: logger,
	}
}

// SaveProfile создает или обновляет профиль пользователя
func (s *profileService) SaveProfile(ctx context.Context, profile *models.Profile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "SaveProfile",
		"user_id": profile.UserID,
	})

	if err := s.repo.Upsert(ctx, profile); err != nil {
		log.WithError(err).Error("Failed to save profile in repository")
		return fmt.Errorf("service: could not save profile: %w", err)
	}

	log.Info("Profile saved")
	return nil
}

// GetProfile возвращает профиль пользователя
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to get profile")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}
	return profile, nil
}
