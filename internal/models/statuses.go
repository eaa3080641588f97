package models

type UserStatus string
type UserRole string
type SchoolStatus string
type ReviewStatus string
type NotificationType string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleParent      UserRole = "parent"
	UserRoleSchoolOwner UserRole = "school_owner"
	UserRoleAdmin       UserRole = "admin"

	SchoolStatusActive SchoolStatus = "active"
	SchoolStatusHidden SchoolStatus = "hidden"

	// A review is published on creation. Reporting moves it to pending
	// (out of public aggregates, into the admin queue); an accepted report
	// rejects it, a denied report restores it.
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusRejected ReviewStatus = "rejected"

	NotificationReviewReported NotificationType = "review_reported"
	NotificationReviewRejected NotificationType = "review_rejected"
	NotificationReviewRestored NotificationType = "review_restored"
)

// ValidReviewStatus reports whether s is one of the three review statuses.
func ValidReviewStatus(s ReviewStatus) bool {
	switch s {
	case ReviewStatusApproved, ReviewStatusPending, ReviewStatusRejected:
		return true
	}
	return false
}

// ValidUserRole reports whether r is a known role.
func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleParent, UserRoleSchoolOwner, UserRoleAdmin:
		return true
	}
	return false
}
