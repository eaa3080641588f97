package services

import (
	"gorm.io/gorm"

	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/pkg/apperrors"
)

type NotificationService interface {
	ListForUser(db *gorm.DB, userID string, page, pageSize int) ([]models.Notification, error)
	MarkRead(db *gorm.DB, userID, notificationID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListForUser(db *gorm.DB, userID string, page, pageSize int) ([]models.Notification, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	notifications, err := s.notificationRepo.FindByUser(db, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(db *gorm.DB, userID, notificationID string) error {
	if err := s.notificationRepo.MarkRead(db, userID, notificationID); err != nil {
		return apperrors.RepositoryError(err)
	}
	return nil
}
