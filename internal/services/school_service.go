package services

import (
	"gorm.io/gorm"

	"schoolhub_backend/internal/algorithms"
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/internal/services/dto"
	"schoolhub_backend/pkg/apperrors"
)

type SchoolService interface {
	CreateSchool(db *gorm.DB, ownerID string, req *dto.CreateSchoolRequest) (*dto.SchoolResponse, error)
	GetSchool(db *gorm.DB, schoolID string) (*dto.SchoolResponse, error)
	ListSchools(db *gorm.DB, city string, page, pageSize int) (*dto.SchoolListResponse, error)
}

type schoolService struct {
	schoolRepo repositories.SchoolRepository
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewSchoolService(schoolRepo repositories.SchoolRepository, reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository) SchoolService {
	return &schoolService{schoolRepo: schoolRepo, reviewRepo: reviewRepo, userRepo: userRepo}
}

func (s *schoolService) CreateSchool(db *gorm.DB, ownerID string, req *dto.CreateSchoolRequest) (*dto.SchoolResponse, error) {
	owner, err := s.userRepo.FindByID(db, ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown user")
		}
		return nil, apperrors.RepositoryError(err)
	}
	if owner.Role != models.UserRoleSchoolOwner {
		return nil, apperrors.ErrInsufficientPermissions
	}

	school := &models.School{
		OwnerID: ownerID,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Status:  models.SchoolStatusActive,
	}
	if err := s.schoolRepo.Create(db, school); err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	return s.buildSchoolResponse(db, school)
}

func (s *schoolService) GetSchool(db *gorm.DB, schoolID string) (*dto.SchoolResponse, error) {
	school, err := s.schoolRepo.FindByID(db, schoolID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}
	return s.buildSchoolResponse(db, school)
}

func (s *schoolService) ListSchools(db *gorm.DB, city string, page, pageSize int) (*dto.SchoolListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	schools, total, err := s.schoolRepo.List(db, city, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	responses := make([]*dto.SchoolResponse, 0, len(schools))
	for i := range schools {
		resp, err := s.buildSchoolResponse(db, &schools[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return &dto.SchoolListResponse{
		Schools:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// buildSchoolResponse attaches the public rating figures. Listings always
// show the approved-only aggregate.
func (s *schoolService) buildSchoolResponse(db *gorm.DB, school *models.School) (*dto.SchoolResponse, error) {
	reviews, err := s.reviewRepo.Find(db, repositories.ReviewFilter{SchoolID: school.ID})
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}
	visible := algorithms.VisibleForScope(reviews, algorithms.ScopePublic)

	return &dto.SchoolResponse{
		ID:             school.ID,
		OwnerID:        school.OwnerID,
		Name:           school.Name,
		Address:        school.Address,
		City:           school.City,
		Status:         string(school.Status),
		TotalReviews:   len(visible),
		OverallAverage: algorithms.Round2(algorithms.OverallAverage(visible)),
	}, nil
}
