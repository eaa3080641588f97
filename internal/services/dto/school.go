package dto

type CreateSchoolRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Address string `json:"address" validate:"omitempty,max=300"`
	City    string `json:"city" validate:"required,min=2,max=100"`
}

type SchoolResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city"`
	Status  string `json:"status"`

	// Public rating figures, approved reviews only.
	TotalReviews   int     `json:"total_reviews"`
	OverallAverage float64 `json:"overall_average"`
}

type SchoolListResponse struct {
	Schools  []*SchoolResponse `json:"schools"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}
