package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"payments_path is required"`
}

// SubmitGenerationResponse is returned once a generation job is queued
type SubmitGenerationResponse struct {
	JobID                      string `json:"job_id" example:"5f1c2a8e-6f0e-4c55-9a43-1d1b8c1e2f3a"`
	Status                     string `json:"status" example:"accepted"`
	SessionCount               int    `json:"session_count" example:"30000"`
	MaxPosition                int    `json:"max_position" example:"10"`
	MergePaymentsWithinSeconds int    `json:"merge_payments_within_seconds" example:"600"`
}

// SessionRowData is one labeled campaign impression of a session
type SessionRowData struct {
	Position      int      `json:"pos" example:"0"`
	CampaignID    string   `json:"campaign_id" example:"c42"`
	DonationCount int      `json:"donation_count" example:"1"`
	Amount        string   `json:"amount" example:"25.00"`
	PaymentIDs    []string `json:"payment_ids"`
}

// SessionResponse holds every row of one session
type SessionResponse struct {
	SessionID string           `json:"session_id"`
	UserID    string           `json:"user_id" example:"u1"`
	SessionTS string           `json:"session_ts" example:"2023-03-04 00:00:00"`
	Rows      []SessionRowData `json:"rows"`
}

// SummaryGroupData represents row counts for a specific group
type SummaryGroupData struct {
	GroupValue   string `json:"group_value" example:"2023-03-04"`
	RowCount     uint64 `json:"row_count" example:"1500"`
	DonatedCount uint64 `json:"donated_count" example:"120"`
}

// GetSummaryResponse represents the session summary query response
type GetSummaryResponse struct {
	From         int64              `json:"from" example:"1677628800"`
	To           int64              `json:"to" example:"1680307200"`
	SessionCount uint64             `json:"session_count" example:"30000"`
	UserCount    uint64             `json:"user_count" example:"21000"`
	RowCount     uint64             `json:"row_count" example:"310000"`
	DonatedCount uint64             `json:"donated_count" example:"31500"`
	GroupBy      string             `json:"group_by,omitempty" example:"day"`
	Groups       []SummaryGroupData `json:"groups,omitempty"`
}
