package models

// School is the grouping and ownership key for reviews. Display attributes
// only; discovery search lives elsewhere.
type School struct {
	BaseModel
	OwnerID string       `gorm:"not null;index" json:"owner_id"`
	Name    string       `gorm:"not null" json:"name"`
	Address string       `json:"address"`
	City    string       `gorm:"index" json:"city"`
	Status  SchoolStatus `gorm:"default:'active'" json:"status"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
