package services

import (
	"time"

	"gorm.io/gorm"

	"schoolhub_backend/internal/algorithms"
	"schoolhub_backend/internal/email"
	"schoolhub_backend/internal/logger"
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/moderation"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/internal/services/dto"
	"schoolhub_backend/pkg/apperrors"
)

const defaultDashboardMonths = 3

// ReviewService orchestrates the review moderation workflow: it validates
// submissions, applies the state machine, delegates persistence and feeds
// the aggregator on read paths. Every method takes the active *gorm.DB
// (pool or test transaction) injected by the request middleware.
type ReviewService interface {
	SubmitReview(db *gorm.DB, parentID string, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error)
	ReportReview(db *gorm.DB, ownerID, reviewID string, req *dto.ReportReviewRequest) (*dto.ReviewResponse, error)
	DecideReport(db *gorm.DB, adminID, reviewID string, accept bool) (*dto.ReviewResponse, error)

	ListReviewsForSchool(db *gorm.DB, query *dto.ReviewListQuery) (*dto.ReviewListResponse, error)
	ListReviewsForSchoolOwner(db *gorm.DB, ownerID string, query *dto.ReviewListQuery) (*dto.ReviewListResponse, error)

	GetSchoolRatingSummary(db *gorm.DB, schoolID string) (*dto.RatingSummaryResponse, error)
	GetModerationDashboard(db *gorm.DB, query *dto.DashboardQuery) (*dto.ModerationDashboardResponse, error)
}

type reviewService struct {
	reviewRepo       repositories.ReviewRepository
	schoolRepo       repositories.SchoolRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
	now              func() time.Time
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	schoolRepo repositories.SchoolRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
) ReviewService {
	return &reviewService{
		reviewRepo:       reviewRepo,
		schoolRepo:       schoolRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
		now:              time.Now,
	}
}

// ---------------- Submission ----------------

func (s *reviewService) SubmitReview(db *gorm.DB, parentID string, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	parent, err := s.userRepo.FindByID(db, parentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown submitting user")
		}
		return nil, apperrors.RepositoryError(err)
	}

	if _, err := s.schoolRepo.FindByID(db, req.SchoolID); err != nil {
		if apperrors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}

	outcome, appErr := moderation.Apply("", parent.Role, moderation.ActionSubmit, "", nil)
	if appErr != nil {
		return nil, appErr
	}

	review := &models.Review{
		SchoolID:                  req.SchoolID,
		ParentID:                  parentID,
		LearningProgram:           req.Categories.LearningProgram,
		FacilitiesAndUtilities:    req.Categories.FacilitiesAndUtilities,
		ExtracurricularActivities: req.Categories.ExtracurricularActivities,
		TeacherAndStaff:           req.Categories.TeacherAndStaff,
		HygieneAndNutrition:       req.Categories.HygieneAndNutrition,
		Feedback:                  req.Feedback,
		Status:                    outcome.Status,
		Report:                    outcome.Report,
		ReceiveDate:               s.now(),
	}

	if err := s.reviewRepo.Create(db, review); err != nil {
		if apperrors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrReviewAlreadyExists
		}
		return nil, apperrors.RepositoryError(err)
	}

	return buildReviewResponse(review), nil
}

// validateSubmission is the rating submission validator: completeness and
// bounds of the five category scores plus the feedback length. Pure and
// deterministic; the zero value is "unset" and never valid.
func validateSubmission(req *dto.SubmitReviewRequest) error {
	fieldErrors := make(map[string]string)

	scores := map[string]int{
		"learning_program":           req.Categories.LearningProgram,
		"facilities_and_utilities":   req.Categories.FacilitiesAndUtilities,
		"extracurricular_activities": req.Categories.ExtracurricularActivities,
		"teacher_and_staff":          req.Categories.TeacherAndStaff,
		"hygiene_and_nutrition":      req.Categories.HygieneAndNutrition,
	}
	for field, score := range scores {
		switch {
		case score == 0:
			fieldErrors[field] = "Incomplete submission: all five category scores are required"
		case score < 1 || score > 5:
			fieldErrors[field] = "Score must be an integer between 1 and 5"
		}
	}

	if len(req.Feedback) > 2000 {
		fieldErrors["feedback"] = "Feedback must be at most 2000 characters"
	}

	if len(fieldErrors) > 0 {
		return apperrors.ValidationError(fieldErrors)
	}
	return nil
}

// ---------------- Moderation ----------------

func (s *reviewService) ReportReview(db *gorm.DB, ownerID, reviewID string, req *dto.ReportReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.loadReview(db, reviewID)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByID(db, ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown reporting user")
		}
		return nil, apperrors.RepositoryError(err)
	}

	school, err := s.schoolRepo.FindByID(db, review.SchoolID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}
	if school.OwnerID != ownerID {
		return nil, apperrors.ErrNotSchoolOwner
	}

	outcome, appErr := moderation.Apply(review.Status, owner.Role, moderation.ActionReport, req.Reason, review.Report)
	if appErr != nil {
		return nil, appErr
	}

	updated, err := s.applyTransition(db, review, outcome)
	if err != nil {
		// A concurrent report already moved the review out of approved.
		if apperrors.Is(err, repositories.ErrReviewStateConflict) {
			return nil, apperrors.ErrReviewNotReportable
		}
		return nil, err
	}

	s.notifyParent(db, updated, models.NotificationReviewReported, email.TemplateReviewReported, school.Name)

	return buildReviewResponse(updated), nil
}

func (s *reviewService) DecideReport(db *gorm.DB, adminID, reviewID string, accept bool) (*dto.ReviewResponse, error) {
	review, err := s.loadReview(db, reviewID)
	if err != nil {
		return nil, err
	}

	admin, err := s.userRepo.FindByID(db, adminID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Unknown deciding user")
		}
		return nil, apperrors.RepositoryError(err)
	}

	action := moderation.DecisionAction(accept)
	outcome, appErr := moderation.Apply(review.Status, admin.Role, action, "", review.Report)
	if appErr != nil {
		return nil, appErr
	}

	updated, err := s.applyTransition(db, review, outcome)
	if err != nil {
		// First decision wins; the loser sees "nothing to decide".
		if apperrors.Is(err, repositories.ErrReviewStateConflict) {
			return nil, apperrors.ErrNothingToDecide
		}
		return nil, err
	}

	school, schoolErr := s.schoolRepo.FindByID(db, updated.SchoolID)
	schoolName := updated.SchoolID
	if schoolErr == nil {
		schoolName = school.Name
	}

	if accept {
		s.notifyParent(db, updated, models.NotificationReviewRejected, email.TemplateReviewRejected, schoolName)
	} else {
		s.notifyParent(db, updated, models.NotificationReviewRestored, email.TemplateReviewRestored, schoolName)
	}

	return buildReviewResponse(updated), nil
}

func (s *reviewService) loadReview(db *gorm.DB, reviewID string) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}
	return review, nil
}

// applyTransition writes the outcome through the compare-and-swap contract:
// status, report and version move together, guarded by the status/version
// the caller observed.
func (s *reviewService) applyTransition(db *gorm.DB, review *models.Review, outcome moderation.Outcome) (*models.Review, error) {
	updated, err := s.reviewRepo.UpdateStatusReport(db, review.ID, review.Status, review.Version, outcome.Status, outcome.Report)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		if apperrors.Is(err, repositories.ErrReviewStateConflict) {
			return nil, err
		}
		return nil, apperrors.RepositoryError(err)
	}
	return updated, nil
}

// notifyParent records the moderation event and sends the email best-effort.
// Moderation never fails because a notification could not be delivered.
func (s *reviewService) notifyParent(db *gorm.DB, review *models.Review, nType models.NotificationType, template string, schoolName string) {
	reason := ""
	if review.Report != nil {
		reason = *review.Report
	}

	if parent, err := s.userRepo.FindByID(db, review.ParentID); err == nil {
		if err := s.emailProvider.SendTemplate(parent.Email, template, email.TemplateData{
			"SchoolName": schoolName,
			"Reason":     reason,
		}); err != nil {
			logger.Warn("moderation email delivery failed", "review_id", review.ID, "error", err)
		}
	}

	notification := &models.Notification{
		UserID:   review.ParentID,
		Type:     nType,
		Message:  string(nType) + ": " + schoolName,
		ReviewID: &review.ID,
	}
	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.Warn("failed to record moderation notification", "review_id", review.ID, "error", err)
	}
}

// ---------------- Read paths ----------------

func (s *reviewService) ListReviewsForSchool(db *gorm.DB, query *dto.ReviewListQuery) (*dto.ReviewListResponse, error) {
	filter := filterFromQuery(query)
	return s.list(db, filter, query)
}

func (s *reviewService) ListReviewsForSchoolOwner(db *gorm.DB, ownerID string, query *dto.ReviewListQuery) (*dto.ReviewListResponse, error) {
	schools, err := s.schoolRepo.FindByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	if len(schools) == 0 {
		return &dto.ReviewListResponse{Reviews: []*dto.ReviewResponse{}, Page: pageOf(query), PageSize: pageSizeOf(query)}, nil
	}

	filter := filterFromQuery(query)
	filter.SchoolID = ""
	filter.SchoolIDs = make([]string, 0, len(schools))
	for _, school := range schools {
		filter.SchoolIDs = append(filter.SchoolIDs, school.ID)
	}

	return s.list(db, filter, query)
}

func (s *reviewService) list(db *gorm.DB, filter repositories.ReviewFilter, query *dto.ReviewListQuery) (*dto.ReviewListResponse, error) {
	total, err := s.reviewRepo.Count(db, filter)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	page, pageSize := pageOf(query), pageSizeOf(query)
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	reviews, err := s.reviewRepo.Find(db, filter)
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i]))
	}

	return &dto.ReviewListResponse{
		Reviews:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetSchoolRatingSummary is the public read path: approved reviews only,
// by policy, with no way for a caller to widen the scope.
func (s *reviewService) GetSchoolRatingSummary(db *gorm.DB, schoolID string) (*dto.RatingSummaryResponse, error) {
	if _, err := s.schoolRepo.FindByID(db, schoolID); err != nil {
		if apperrors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, apperrors.RepositoryError(err)
	}

	reviews, err := s.reviewRepo.Find(db, repositories.ReviewFilter{SchoolID: schoolID})
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	visible := algorithms.VisibleForScope(reviews, algorithms.ScopePublic)

	breakdown := make(map[int]int)
	for star := 1; star <= 5; star++ {
		breakdown[star] = len(algorithms.FilterByRoundedRating(visible, map[int]bool{star: true}))
	}

	return &dto.RatingSummaryResponse{
		SchoolID:         schoolID,
		TotalReviews:     len(visible),
		OverallAverage:   algorithms.Round2(algorithms.OverallAverage(visible)),
		CategoryAverages: categoryAveragesDTO(visible),
		RatingBreakdown:  breakdown,
	}, nil
}

// GetModerationDashboard computes aggregates under an explicitly requested
// scope. The handler layer restricts ScopeAll to admins.
func (s *reviewService) GetModerationDashboard(db *gorm.DB, query *dto.DashboardQuery) (*dto.ModerationDashboardResponse, error) {
	scope := algorithms.ScopePublic
	if query.Scope == string(algorithms.ScopeAll) {
		scope = algorithms.ScopeAll
	}
	months := query.Months
	if months == 0 {
		months = defaultDashboardMonths
	}

	reviews, err := s.reviewRepo.Find(db, repositories.ReviewFilter{SchoolID: query.SchoolID})
	if err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	scoped := algorithms.VisibleForScope(reviews, scope)

	statusCounts := make(map[string]int)
	for status, count := range algorithms.StatusCounts(scoped) {
		statusCounts[string(status)] = count
	}

	buckets := algorithms.MonthlyBuckets(scoped, months, s.now())
	monthly := make([]dto.MonthlyCount, 0, len(buckets))
	for _, b := range buckets {
		monthly = append(monthly, dto.MonthlyCount{Month: b.Month, Count: b.Count})
	}

	return &dto.ModerationDashboardResponse{
		SchoolID:         query.SchoolID,
		Scope:            string(scope),
		TotalReviews:     len(scoped),
		OverallAverage:   algorithms.Round2(algorithms.OverallAverage(scoped)),
		CategoryAverages: categoryAveragesDTO(scoped),
		StatusCounts:     statusCounts,
		MonthlyCounts:    monthly,
	}, nil
}

// ---------------- Helpers ----------------

func filterFromQuery(query *dto.ReviewListQuery) repositories.ReviewFilter {
	return repositories.ReviewFilter{
		SchoolID: query.SchoolID,
		Status:   models.ReviewStatus(query.Status),
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
	}
}

func pageOf(query *dto.ReviewListQuery) int {
	if query.Page <= 0 {
		return 1
	}
	return query.Page
}

func pageSizeOf(query *dto.ReviewListQuery) int {
	if query.PageSize <= 0 {
		return 20
	}
	return query.PageSize
}

func categoryAveragesDTO(reviews []models.Review) map[string]float64 {
	averages := make(map[string]float64, 5)
	for category, avg := range algorithms.PerCategoryAverages(reviews) {
		averages[string(category)] = algorithms.Round2(avg)
	}
	return averages
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:       review.ID,
		SchoolID: review.SchoolID,
		ParentID: review.ParentID,
		Categories: dto.CategoryScores{
			LearningProgram:           review.LearningProgram,
			FacilitiesAndUtilities:    review.FacilitiesAndUtilities,
			ExtracurricularActivities: review.ExtracurricularActivities,
			TeacherAndStaff:           review.TeacherAndStaff,
			HygieneAndNutrition:       review.HygieneAndNutrition,
		},
		Feedback:      review.Feedback,
		Status:        string(review.Status),
		Report:        review.Report,
		ReceiveDate:   review.ReceiveDate,
		ReviewAverage: algorithms.Round1(review.Average()),
	}
}
