package fiber

type PageViewsResponse struct {
	Slug       string `json:"slug" example:"/blog/my-post"`
	PropertyID string `json:"property_id" example:"123456"`
	StartDate  string `json:"start_date" example:"2023-01-01"`
	EndDate    string `json:"end_date" example:"today"`
	Views      int64  `json:"views" example:"17"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"invalid date range"`
}
