package repositories

import (
	"errors"

	"gorm.io/gorm"

	"schoolhub_backend/internal/models"
)

var ErrSchoolNotFound = errors.New("school not found")

type SchoolRepository interface {
	Create(db *gorm.DB, school *models.School) error
	FindByID(db *gorm.DB, id string) (*models.School, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.School, error)
	List(db *gorm.DB, city string, limit, offset int) ([]models.School, int64, error)
}

type SchoolRepositoryImpl struct{}

func NewSchoolRepository() SchoolRepository {
	return &SchoolRepositoryImpl{}
}

func (r *SchoolRepositoryImpl) Create(db *gorm.DB, school *models.School) error {
	return db.Create(school).Error
}

func (r *SchoolRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.School, error) {
	var school models.School
	err := db.First(&school, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.School, error) {
	var schools []models.School
	err := db.Where("owner_id = ?", ownerID).Order("created_at").Find(&schools).Error
	return schools, err
}

func (r *SchoolRepositoryImpl) List(db *gorm.DB, city string, limit, offset int) ([]models.School, int64, error) {
	q := db.Model(&models.School{}).Where("status = ?", models.SchoolStatusActive)
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schools []models.School
	err := q.Order("name").Limit(limit).Offset(offset).Find(&schools).Error
	return schools, total, err
}
