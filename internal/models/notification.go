package models

// Notification records a moderation event for its affected user: the school
// owner sees dispute outcomes, the parent sees what happened to their review.
type Notification struct {
	BaseModel
	UserID   string           `gorm:"not null;index" json:"user_id"`
	Type     NotificationType `gorm:"not null" json:"type"`
	Message  string           `gorm:"not null" json:"message"`
	ReviewID *string          `gorm:"index" json:"review_id,omitempty"`
	IsRead   bool             `gorm:"default:false" json:"is_read"`
}
