package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schoolhub_backend/internal/email"
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/internal/services/dto"
	"schoolhub_backend/pkg/apperrors"
)

// ---------------- In-memory fakes ----------------

type fakeReviewRepo struct {
	mu      sync.Mutex
	nextID  int
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*models.Review)}
}

func (f *fakeReviewRepo) Create(_ *gorm.DB, review *models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reviews {
		if r.SchoolID == review.SchoolID && r.ParentID == review.ParentID {
			return repositories.ErrReviewAlreadyExists
		}
	}
	f.nextID++
	review.ID = fmt.Sprintf("review-%d", f.nextID)
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) FindByID(_ *gorm.DB, id string) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reviews[id]
	if !ok {
		return nil, repositories.ErrReviewNotFound
	}
	dup := *r
	return &dup, nil
}

func (f *fakeReviewRepo) FindBySchoolAndParent(_ *gorm.DB, schoolID, parentID string) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reviews {
		if r.SchoolID == schoolID && r.ParentID == parentID {
			dup := *r
			return &dup, nil
		}
	}
	return nil, repositories.ErrReviewNotFound
}

func (f *fakeReviewRepo) Find(_ *gorm.DB, filter repositories.ReviewFilter) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for _, r := range f.reviews {
		if filter.SchoolID != "" && r.SchoolID != filter.SchoolID {
			continue
		}
		if len(filter.SchoolIDs) > 0 {
			found := false
			for _, id := range filter.SchoolIDs {
				if r.SchoolID == id {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		if filter.ParentID != "" && r.ParentID != filter.ParentID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReviewRepo) Count(db *gorm.DB, filter repositories.ReviewFilter) (int64, error) {
	all, err := f.Find(db, filter)
	return int64(len(all)), err
}

func (f *fakeReviewRepo) UpdateStatusReport(_ *gorm.DB, reviewID string, observed models.ReviewStatus, observedVersion int, next models.ReviewStatus, report *string) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reviews[reviewID]
	if !ok {
		return nil, repositories.ErrReviewNotFound
	}
	if r.Status != observed || r.Version != observedVersion {
		return nil, repositories.ErrReviewStateConflict
	}
	r.Status = next
	r.Report = report
	r.Version++
	dup := *r
	return &dup, nil
}

type fakeSchoolRepo struct {
	schools map[string]*models.School
}

func (f *fakeSchoolRepo) Create(_ *gorm.DB, school *models.School) error {
	f.schools[school.ID] = school
	return nil
}

func (f *fakeSchoolRepo) FindByID(_ *gorm.DB, id string) (*models.School, error) {
	s, ok := f.schools[id]
	if !ok {
		return nil, repositories.ErrSchoolNotFound
	}
	return s, nil
}

func (f *fakeSchoolRepo) FindByOwner(_ *gorm.DB, ownerID string) ([]models.School, error) {
	var out []models.School
	for _, s := range f.schools {
		if s.OwnerID == ownerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSchoolRepo) List(_ *gorm.DB, _ string, _, _ int) ([]models.School, int64, error) {
	var out []models.School
	for _, s := range f.schools {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeNotificationRepo struct {
	mu      sync.Mutex
	created []*models.Notification
}

func (f *fakeNotificationRepo) Create(_ *gorm.DB, n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) FindByUser(_ *gorm.DB, userID string, _, _ int) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ *gorm.DB, _, _ string) error { return nil }

// ---------------- Fixture ----------------

type reviewServiceFixture struct {
	svc           ReviewService
	reviews       *fakeReviewRepo
	notifications *fakeNotificationRepo
}

const (
	parentID  = "parent-1"
	parent2ID = "parent-2"
	ownerID   = "owner-1"
	adminID   = "admin-1"
	schoolID  = "school-1"
)

func newReviewServiceFixture(t *testing.T) *reviewServiceFixture {
	t.Helper()

	users := &fakeUserRepo{users: map[string]*models.User{
		parentID:  {BaseModel: models.BaseModel{ID: parentID}, Email: "parent@example.com", Role: models.UserRoleParent},
		parent2ID: {BaseModel: models.BaseModel{ID: parent2ID}, Email: "parent2@example.com", Role: models.UserRoleParent},
		ownerID:   {BaseModel: models.BaseModel{ID: ownerID}, Email: "owner@example.com", Role: models.UserRoleSchoolOwner},
		adminID:   {BaseModel: models.BaseModel{ID: adminID}, Email: "admin@example.com", Role: models.UserRoleAdmin},
	}}
	schools := &fakeSchoolRepo{schools: map[string]*models.School{
		schoolID: {BaseModel: models.BaseModel{ID: schoolID}, OwnerID: ownerID, Name: "Northside Primary"},
	}}
	reviews := newFakeReviewRepo()
	notifications := &fakeNotificationRepo{}

	svc := NewReviewService(reviews, schools, users, notifications, email.MockProvider{})
	return &reviewServiceFixture{svc: svc, reviews: reviews, notifications: notifications}
}

func submitRequest(scores [5]int) *dto.SubmitReviewRequest {
	return &dto.SubmitReviewRequest{
		SchoolID: schoolID,
		Categories: dto.CategoryScores{
			LearningProgram:           scores[0],
			FacilitiesAndUtilities:    scores[1],
			ExtracurricularActivities: scores[2],
			TeacherAndStaff:           scores[3],
			HygieneAndNutrition:       scores[4],
		},
		Feedback: "detailed impressions",
	}
}

func appErrCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected *apperrors.AppError, got %v", err)
	return appErr.Code
}

// ---------------- Submission ----------------

func TestSubmitReview_PublishesImmediately(t *testing.T) {
	f := newReviewServiceFixture(t)

	resp, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{5, 4, 4, 5, 5}))
	require.NoError(t, err)

	assert.Equal(t, string(models.ReviewStatusApproved), resp.Status)
	assert.Nil(t, resp.Report)
	assert.Equal(t, 4.6, resp.ReviewAverage)

	summary, err := f.svc.GetSchoolRatingSummary(nil, schoolID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalReviews)
	assert.Equal(t, 4.6, summary.OverallAverage)
}

func TestSubmitReview_IncompleteScoresRejected(t *testing.T) {
	f := newReviewServiceFixture(t)

	req := submitRequest([5]int{5, 4, 4, 5, 5})
	req.Categories.HygieneAndNutrition = 0

	_, err := f.svc.SubmitReview(nil, parentID, req)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidationFailed, appErrCode(t, err))
	assert.Empty(t, f.reviews.reviews, "nothing may be persisted on a validation failure")
}

func TestSubmitReview_OutOfRangeScoreRejected(t *testing.T) {
	f := newReviewServiceFixture(t)

	for _, bad := range []int{-1, 6, 100} {
		req := submitRequest([5]int{bad, 4, 4, 5, 5})
		_, err := f.svc.SubmitReview(nil, parentID, req)
		require.Error(t, err, "score %d must be rejected", bad)
		assert.Equal(t, apperrors.CodeValidationFailed, appErrCode(t, err))
	}
}

func TestSubmitReview_DuplicatePerSchoolRejected(t *testing.T) {
	f := newReviewServiceFixture(t)

	_, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{3, 3, 3, 3, 3}))
	require.NoError(t, err)

	_, err = f.svc.SubmitReview(nil, parentID, submitRequest([5]int{5, 5, 5, 5, 5}))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, appErrCode(t, err))
}

func TestSubmitReview_NonParentForbidden(t *testing.T) {
	f := newReviewServiceFixture(t)

	_, err := f.svc.SubmitReview(nil, ownerID, submitRequest([5]int{3, 3, 3, 3, 3}))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, appErrCode(t, err))
}

func TestSubmitReview_UnknownSchool(t *testing.T) {
	f := newReviewServiceFixture(t)

	req := submitRequest([5]int{3, 3, 3, 3, 3})
	req.SchoolID = "no-such-school"

	_, err := f.svc.SubmitReview(nil, parentID, req)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, appErrCode(t, err))
}

// ---------------- Report ----------------

func TestReportReview_MovesToPendingAndHides(t *testing.T) {
	f := newReviewServiceFixture(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{1, 1, 2, 1, 1}))
	require.NoError(t, err)

	reported, err := f.svc.ReportReview(nil, ownerID, created.ID, &dto.ReportReviewRequest{Reason: "contains fabricated claims"})
	require.NoError(t, err)
	assert.Equal(t, string(models.ReviewStatusPending), reported.Status)
	require.NotNil(t, reported.Report)
	assert.Equal(t, "contains fabricated claims", *reported.Report)

	// Hidden from the public aggregate while pending.
	summary, err := f.svc.GetSchoolRatingSummary(nil, schoolID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalReviews)
	assert.Equal(t, 0.0, summary.OverallAverage)

	// The parent is notified.
	require.Len(t, f.notifications.created, 1)
	assert.Equal(t, parentID, f.notifications.created[0].UserID)
	assert.Equal(t, models.NotificationReviewReported, f.notifications.created[0].Type)
}

func TestReportReview_OnlyOwningSchoolOwner(t *testing.T) {
	f := newReviewServiceFixture(t)
	f.addSecondOwner(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{2, 2, 2, 2, 2}))
	require.NoError(t, err)

	_, err = f.svc.ReportReview(nil, "owner-2", created.ID, &dto.ReportReviewRequest{Reason: "not my school but reporting anyway"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, appErrCode(t, err))
}

func (f *reviewServiceFixture) addSecondOwner(t *testing.T) {
	t.Helper()
	svc := f.svc.(*reviewService)
	users := svc.userRepo.(*fakeUserRepo)
	users.users["owner-2"] = &models.User{
		BaseModel: models.BaseModel{ID: "owner-2"},
		Email:     "owner2@example.com",
		Role:      models.UserRoleSchoolOwner,
	}
}

func TestReportReview_AlreadyPending(t *testing.T) {
	f := newReviewServiceFixture(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{2, 2, 2, 2, 2}))
	require.NoError(t, err)

	_, err = f.svc.ReportReview(nil, ownerID, created.ID, &dto.ReportReviewRequest{Reason: "first report"})
	require.NoError(t, err)

	_, err = f.svc.ReportReview(nil, ownerID, created.ID, &dto.ReportReviewRequest{Reason: "second report"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErrCode(t, err))
}

func TestReportReview_ConcurrentReportsHaveOneWinner(t *testing.T) {
	f := newReviewServiceFixture(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{2, 2, 2, 2, 2}))
	require.NoError(t, err)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := f.svc.ReportReview(nil, ownerID, created.ID, &dto.ReportReviewRequest{
				Reason: fmt.Sprintf("race report %d", n),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.Equal(t, apperrors.CodeInvalidStatus, appErrCode(t, err))
		conflicts++
	}
	assert.Equal(t, 1, wins, "exactly one report may land")
	assert.Equal(t, attempts-1, conflicts)

	stored, err := f.reviews.FindByID(nil, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStatusPending, stored.Status)
	require.NotNil(t, stored.Report)
}

// ---------------- Decision ----------------

func TestDecideReport_AcceptRejectsAndRetainsReason(t *testing.T) {
	f := newReviewServiceFixture(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{1, 2, 1, 2, 1}))
	require.NoError(t, err)
	_, err = f.svc.ReportReview(nil, ownerID, created.ID, &dto.ReportReviewRequest{Reason: "abusive content"})
	require.NoError(t, err)

	decided, err := f.svc.DecideReport(nil, adminID, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, string(models.ReviewStatusRejected), decided.Status)
	require.NotNil(t, decided.Report, "rejection keeps the dispute reason on record")
	assert.Equal(t, "abusive content", *decided.Report)

	summary, err := f.svc.GetSchoolRatingSummary(nil, schoolID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalReviews)
}

func TestDecideReport_DenyRestoresAndClearsReport(t *testing.T) {
	f := newReviewServiceFixture(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{4, 4, 4, 4, 4}))
	require.NoError(t, err)
	_, err = f.svc.ReportReview(nil, ownerID, created.ID, &dto.ReportReviewRequest{Reason: "disagree with it"})
	require.NoError(t, err)

	restored, err := f.svc.DecideReport(nil, adminID, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, string(models.ReviewStatusApproved), restored.Status)
	assert.Nil(t, restored.Report, "a denied report leaves no trace on the review")

	// Scores and average are untouched by the round trip.
	assert.Equal(t, 4.0, restored.ReviewAverage)

	summary, err := f.svc.GetSchoolRatingSummary(nil, schoolID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalReviews)
	assert.Equal(t, 4.0, summary.OverallAverage)
}

func TestDecideReport_NothingPending(t *testing.T) {
	f := newReviewServiceFixture(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{3, 3, 3, 3, 3}))
	require.NoError(t, err)

	_, err = f.svc.DecideReport(nil, adminID, created.ID, true)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErrCode(t, err))
}

func TestDecideReport_SecondDecisionLoses(t *testing.T) {
	f := newReviewServiceFixture(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{3, 3, 3, 3, 3}))
	require.NoError(t, err)
	_, err = f.svc.ReportReview(nil, ownerID, created.ID, &dto.ReportReviewRequest{Reason: "dispute"})
	require.NoError(t, err)

	_, err = f.svc.DecideReport(nil, adminID, created.ID, false)
	require.NoError(t, err)

	_, err = f.svc.DecideReport(nil, adminID, created.ID, true)
	require.Error(t, err, "a decision on an already-decided review must fail")
	assert.Equal(t, apperrors.CodeInvalidStatus, appErrCode(t, err))
}

func TestDecideReport_NonAdminForbidden(t *testing.T) {
	f := newReviewServiceFixture(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{3, 3, 3, 3, 3}))
	require.NoError(t, err)
	_, err = f.svc.ReportReview(nil, ownerID, created.ID, &dto.ReportReviewRequest{Reason: "dispute"})
	require.NoError(t, err)

	_, err = f.svc.DecideReport(nil, ownerID, created.ID, true)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, appErrCode(t, err))
}

// ---------------- Aggregates ----------------

func TestRatingSummary_ExcludesHiddenReviews(t *testing.T) {
	f := newReviewServiceFixture(t)

	first, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{4, 4, 4, 4, 4}))
	require.NoError(t, err)
	_, err = f.svc.SubmitReview(nil, parent2ID, submitRequest([5]int{1, 1, 1, 1, 1}))
	require.NoError(t, err)

	// Both visible: (4.0 + 1.0) / 2.
	summary, err := f.svc.GetSchoolRatingSummary(nil, schoolID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalReviews)
	assert.Equal(t, 2.5, summary.OverallAverage)

	// Hide the first via report + accept; the public aggregate recomputes.
	_, err = f.svc.ReportReview(nil, ownerID, first.ID, &dto.ReportReviewRequest{Reason: "dispute"})
	require.NoError(t, err)
	_, err = f.svc.DecideReport(nil, adminID, first.ID, true)
	require.NoError(t, err)

	summary, err = f.svc.GetSchoolRatingSummary(nil, schoolID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalReviews)
	assert.Equal(t, 1.0, summary.OverallAverage)
	assert.Equal(t, 1, summary.RatingBreakdown[1])
	assert.Equal(t, 0, summary.RatingBreakdown[4])
}

func TestModerationDashboard_ScopeAllSeesEveryStatus(t *testing.T) {
	f := newReviewServiceFixture(t)

	first, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{4, 4, 4, 4, 4}))
	require.NoError(t, err)
	_, err = f.svc.SubmitReview(nil, parent2ID, submitRequest([5]int{2, 2, 2, 2, 2}))
	require.NoError(t, err)
	_, err = f.svc.ReportReview(nil, ownerID, first.ID, &dto.ReportReviewRequest{Reason: "dispute"})
	require.NoError(t, err)

	public, err := f.svc.GetModerationDashboard(nil, &dto.DashboardQuery{SchoolID: schoolID})
	require.NoError(t, err)
	assert.Equal(t, "public", public.Scope)
	assert.Equal(t, 1, public.TotalReviews)
	assert.Equal(t, 2.0, public.OverallAverage)

	all, err := f.svc.GetModerationDashboard(nil, &dto.DashboardQuery{SchoolID: schoolID, Scope: "all"})
	require.NoError(t, err)
	assert.Equal(t, "all", all.Scope)
	assert.Equal(t, 2, all.TotalReviews)
	assert.Equal(t, 3.0, all.OverallAverage)
	assert.Equal(t, 1, all.StatusCounts[string(models.ReviewStatusApproved)])
	assert.Equal(t, 1, all.StatusCounts[string(models.ReviewStatusPending)])
	assert.Equal(t, 0, all.StatusCounts[string(models.ReviewStatusRejected)])
}

func TestModerationDashboard_MonthlyWindow(t *testing.T) {
	f := newReviewServiceFixture(t)
	svc := f.svc.(*reviewService)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{3, 3, 3, 3, 3}))
	require.NoError(t, err)

	// Backdate a second review outside the three-month window.
	old := &models.Review{
		SchoolID:                  schoolID,
		ParentID:                  parent2ID,
		LearningProgram:           3,
		FacilitiesAndUtilities:    3,
		ExtracurricularActivities: 3,
		TeacherAndStaff:           3,
		HygieneAndNutrition:       3,
		Status:                    models.ReviewStatusApproved,
		ReceiveDate:               now.AddDate(0, -4, 0),
	}
	require.NoError(t, f.reviews.Create(nil, old))
	require.Equal(t, now, f.reviews.reviews[created.ID].ReceiveDate)

	dash, err := f.svc.GetModerationDashboard(nil, &dto.DashboardQuery{SchoolID: schoolID})
	require.NoError(t, err)
	require.Len(t, dash.MonthlyCounts, 1)
	assert.Equal(t, "2026-06", dash.MonthlyCounts[0].Month)
	assert.Equal(t, 1, dash.MonthlyCounts[0].Count)
	// The old review still counts toward the overall aggregate.
	assert.Equal(t, 2, dash.TotalReviews)
}

// ---------------- Listing ----------------

func TestListReviewsForSchoolOwner_ScopedToOwnedSchools(t *testing.T) {
	f := newReviewServiceFixture(t)

	_, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{3, 3, 3, 3, 3}))
	require.NoError(t, err)

	list, err := f.svc.ListReviewsForSchoolOwner(nil, ownerID, &dto.ReviewListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Reviews, 1)
	assert.Equal(t, int64(1), list.Total)

	// An owner with no schools sees an empty page, not an error.
	f.addSecondOwner(t)
	empty, err := f.svc.ListReviewsForSchoolOwner(nil, "owner-2", &dto.ReviewListQuery{})
	require.NoError(t, err)
	assert.Empty(t, empty.Reviews)
}

func TestListReviews_StatusFilter(t *testing.T) {
	f := newReviewServiceFixture(t)

	created, err := f.svc.SubmitReview(nil, parentID, submitRequest([5]int{3, 3, 3, 3, 3}))
	require.NoError(t, err)
	_, err = f.svc.SubmitReview(nil, parent2ID, submitRequest([5]int{4, 4, 4, 4, 4}))
	require.NoError(t, err)
	_, err = f.svc.ReportReview(nil, ownerID, created.ID, &dto.ReportReviewRequest{Reason: "dispute"})
	require.NoError(t, err)

	pending, err := f.svc.ListReviewsForSchool(nil, &dto.ReviewListQuery{SchoolID: schoolID, Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending.Reviews, 1)
	assert.Equal(t, created.ID, pending.Reviews[0].ID)
}
