package dto

import "time"

// ======================
// Request DTOs
// ======================

// CategoryScores is the complete five-category submission. All five must be
// present together; a UI may encode "unset" as 0 and 0 is never accepted.
type CategoryScores struct {
	LearningProgram           int `json:"learning_program" validate:"required,min=1,max=5"`
	FacilitiesAndUtilities    int `json:"facilities_and_utilities" validate:"required,min=1,max=5"`
	ExtracurricularActivities int `json:"extracurricular_activities" validate:"required,min=1,max=5"`
	TeacherAndStaff           int `json:"teacher_and_staff" validate:"required,min=1,max=5"`
	HygieneAndNutrition       int `json:"hygiene_and_nutrition" validate:"required,min=1,max=5"`
}

type SubmitReviewRequest struct {
	SchoolID   string         `json:"school_id" validate:"required"`
	Categories CategoryScores `json:"categories"`
	Feedback   string         `json:"feedback" validate:"omitempty,max=2000"`
}

type ReportReviewRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type DecideReportRequest struct {
	// Pointer so an explicit false (deny) is distinguishable from absent.
	Accept *bool `json:"accept" validate:"required"`
}

// ReviewListQuery filters list endpoints. Status filtering and date ranges
// are applied server-side.
type ReviewListQuery struct {
	SchoolID string    `form:"school_id"`
	Status   string    `form:"status" validate:"omitempty,is-review-status"`
	DateFrom time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   time.Time `form:"date_to" time_format:"2006-01-02"`
	Page     int       `form:"page" validate:"omitempty,min=1"`
	PageSize int       `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// DashboardQuery selects the aggregation scope. Scope "all" includes hidden
// reviews and is only honored for admins; it is never a default.
type DashboardQuery struct {
	SchoolID string `form:"school_id" validate:"required"`
	Scope    string `form:"scope" validate:"omitempty,oneof=public all"`
	Months   int    `form:"months" validate:"omitempty,min=1,max=24"`
}

// ======================
// Response DTOs
// ======================

type ReviewResponse struct {
	ID            string         `json:"id"`
	SchoolID      string         `json:"school_id"`
	ParentID      string         `json:"parent_id"`
	Categories    CategoryScores `json:"categories"`
	Feedback      string         `json:"feedback,omitempty"`
	Status        string         `json:"status"`
	Report        *string        `json:"report,omitempty"`
	ReceiveDate   time.Time      `json:"receive_date"`
	ReviewAverage float64        `json:"review_average"` // rounded to 1 decimal
}

type ReviewListResponse struct {
	Reviews  []*ReviewResponse `json:"reviews"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// RatingSummaryResponse is the public aggregate for one school.
type RatingSummaryResponse struct {
	SchoolID         string             `json:"school_id"`
	TotalReviews     int                `json:"total_reviews"`
	OverallAverage   float64            `json:"overall_average"` // rounded to 2 decimals
	CategoryAverages map[string]float64 `json:"category_averages"`
	RatingBreakdown  map[int]int        `json:"rating_breakdown"` // rounded average star -> count
}

// ModerationDashboardResponse is the admin/owner view; it carries the scope
// it was computed under so clients cannot mistake hidden-inclusive numbers
// for public ones.
type ModerationDashboardResponse struct {
	SchoolID         string             `json:"school_id"`
	Scope            string             `json:"scope"`
	TotalReviews     int                `json:"total_reviews"`
	OverallAverage   float64            `json:"overall_average"`
	CategoryAverages map[string]float64 `json:"category_averages"`
	StatusCounts     map[string]int     `json:"status_counts"`
	MonthlyCounts    []MonthlyCount     `json:"monthly_counts"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
