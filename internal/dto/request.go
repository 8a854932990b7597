package dto

// SubmitGenerationRequest asks for a session table to be generated from two CSV exports.
// Omitted tunables fall back to the service defaults.
type SubmitGenerationRequest struct {
	PaymentsPath               string `json:"payments_path" binding:"required" example:"/data/payments.csv"`
	CampaignsPath              string `json:"campaigns_path" binding:"required" example:"/data/campaigns.csv"`
	SessionCount               *int   `json:"session_count" binding:"omitempty,min=0" example:"30000"`
	MaxPosition                *int   `json:"max_position" binding:"omitempty,min=0" example:"10"`
	MergePaymentsWithinSeconds *int   `json:"merge_payments_within_seconds" binding:"omitempty,min=0" example:"600"`
}

// GetSummaryRequest represents a session summary query
type GetSummaryRequest struct {
	From    int64  `form:"from" binding:"required" example:"1677628800"`
	To      int64  `form:"to" binding:"required" example:"1680307200"`
	GroupBy string `form:"group_by" example:"day"`
}
