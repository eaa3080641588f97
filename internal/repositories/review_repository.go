package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"schoolhub_backend/internal/models"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this school and parent")
	// ErrReviewStateConflict means the status/version the caller observed
	// was overwritten before its update landed (lost optimistic race).
	ErrReviewStateConflict = errors.New("review state changed concurrently")
)

// ReviewFilter narrows review queries. Zero values mean "no constraint".
type ReviewFilter struct {
	SchoolID  string
	SchoolIDs []string
	ParentID  string
	Status    models.ReviewStatus
	DateFrom  time.Time
	DateTo    time.Time
	Limit     int
	Offset    int
}

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindBySchoolAndParent(db *gorm.DB, schoolID, parentID string) (*models.Review, error)
	Find(db *gorm.DB, filter ReviewFilter) ([]models.Review, error)
	Count(db *gorm.DB, filter ReviewFilter) (int64, error)
	// UpdateStatusReport performs the compare-and-swap status transition:
	// the row is updated only when both status and version still match what
	// the caller observed. Status, report and version move in one UPDATE so
	// a half-written transition is never observable.
	UpdateStatusReport(db *gorm.DB, reviewID string, observed models.ReviewStatus, observedVersion int, next models.ReviewStatus, report *string) (*models.Review, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	var existing models.Review
	err := db.Where("school_id = ? AND parent_id = ?", review.SchoolID, review.ParentID).
		First(&existing).Error
	if err == nil {
		return ErrReviewAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if review.ReceiveDate.IsZero() {
		review.ReceiveDate = time.Now()
	}
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("School").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindBySchoolAndParent(db *gorm.DB, schoolID, parentID string) (*models.Review, error) {
	var review models.Review
	err := db.Where("school_id = ? AND parent_id = ?", schoolID, parentID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func applyReviewFilter(q *gorm.DB, filter ReviewFilter) *gorm.DB {
	if filter.SchoolID != "" {
		q = q.Where("school_id = ?", filter.SchoolID)
	}
	if len(filter.SchoolIDs) > 0 {
		q = q.Where("school_id IN ?", filter.SchoolIDs)
	}
	if filter.ParentID != "" {
		q = q.Where("parent_id = ?", filter.ParentID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if !filter.DateFrom.IsZero() {
		q = q.Where("receive_date >= ?", filter.DateFrom)
	}
	if !filter.DateTo.IsZero() {
		q = q.Where("receive_date <= ?", filter.DateTo)
	}
	return q
}

func (r *ReviewRepositoryImpl) Find(db *gorm.DB, filter ReviewFilter) ([]models.Review, error) {
	var reviews []models.Review
	q := applyReviewFilter(db.Model(&models.Review{}), filter).
		Order("receive_date DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	err := q.Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) Count(db *gorm.DB, filter ReviewFilter) (int64, error) {
	var count int64
	err := applyReviewFilter(db.Model(&models.Review{}), filter).Count(&count).Error
	return count, err
}

func (r *ReviewRepositoryImpl) UpdateStatusReport(db *gorm.DB, reviewID string, observed models.ReviewStatus, observedVersion int, next models.ReviewStatus, report *string) (*models.Review, error) {
	result := db.Model(&models.Review{}).
		Where("id = ? AND status = ? AND version = ?", reviewID, observed, observedVersion).
		Updates(map[string]interface{}{
			"status":     next,
			"report":     report,
			"version":    observedVersion + 1,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish a vanished row from a lost race.
		var exists int64
		if err := db.Model(&models.Review{}).Where("id = ?", reviewID).Count(&exists).Error; err != nil {
			return nil, err
		}
		if exists == 0 {
			return nil, ErrReviewNotFound
		}
		return nil, ErrReviewStateConflict
	}

	return r.FindByID(db, reviewID)
}
