package models

import "time"

// RatingCategory names one of the five scored aspects of a review.
type RatingCategory string

const (
	CategoryLearningProgram           RatingCategory = "learning_program"
	CategoryFacilitiesAndUtilities    RatingCategory = "facilities_and_utilities"
	CategoryExtracurricularActivities RatingCategory = "extracurricular_activities"
	CategoryTeacherAndStaff           RatingCategory = "teacher_and_staff"
	CategoryHygieneAndNutrition       RatingCategory = "hygiene_and_nutrition"
)

// RatingCategories lists the five categories in display order.
var RatingCategories = []RatingCategory{
	CategoryLearningProgram,
	CategoryFacilitiesAndUtilities,
	CategoryExtracurricularActivities,
	CategoryTeacherAndStaff,
	CategoryHygieneAndNutrition,
}

// Review is a parent's five-category rating of one school. A review always
// carries all five scores; there is no draft state. Rejected reviews are
// soft-hidden, never deleted.
type Review struct {
	BaseModel
	SchoolID string `gorm:"not null;index;uniqueIndex:idx_reviews_school_parent" json:"school_id"`
	ParentID string `gorm:"not null;index;uniqueIndex:idx_reviews_school_parent" json:"parent_id"`

	LearningProgram           int `gorm:"not null;check:learning_program >= 1 AND learning_program <= 5" json:"learning_program"`
	FacilitiesAndUtilities    int `gorm:"not null;check:facilities_and_utilities >= 1 AND facilities_and_utilities <= 5" json:"facilities_and_utilities"`
	ExtracurricularActivities int `gorm:"not null;check:extracurricular_activities >= 1 AND extracurricular_activities <= 5" json:"extracurricular_activities"`
	TeacherAndStaff           int `gorm:"not null;check:teacher_and_staff >= 1 AND teacher_and_staff <= 5" json:"teacher_and_staff"`
	HygieneAndNutrition       int `gorm:"not null;check:hygiene_and_nutrition >= 1 AND hygiene_and_nutrition <= 5" json:"hygiene_and_nutrition"`

	Feedback string       `json:"feedback"`
	Status   ReviewStatus `gorm:"default:'approved';index" json:"status"`
	// Report holds the most recent dispute reason. Non-null whenever the
	// status is pending or rejected.
	Report      *string   `json:"report,omitempty"`
	ReceiveDate time.Time `gorm:"not null;index;default:now()" json:"receive_date"`
	// Version guards status transitions: every status write checks and
	// increments it, so concurrent report/decide races have one winner.
	Version int `gorm:"not null;default:0" json:"-"`

	School School `gorm:"foreignKey:SchoolID" json:"-"`
	Parent User   `gorm:"foreignKey:ParentID" json:"-"`
}

// Scores returns the category scores keyed by category.
func (r *Review) Scores() map[RatingCategory]int {
	return map[RatingCategory]int{
		CategoryLearningProgram:           r.LearningProgram,
		CategoryFacilitiesAndUtilities:    r.FacilitiesAndUtilities,
		CategoryExtracurricularActivities: r.ExtracurricularActivities,
		CategoryTeacherAndStaff:           r.TeacherAndStaff,
		CategoryHygieneAndNutrition:       r.HygieneAndNutrition,
	}
}

// Average is the arithmetic mean of the five category scores, unrounded.
// Rounding happens only at the response edge.
func (r *Review) Average() float64 {
	sum := r.LearningProgram +
		r.FacilitiesAndUtilities +
		r.ExtracurricularActivities +
		r.TeacherAndStaff +
		r.HygieneAndNutrition
	return float64(sum) / 5
}
