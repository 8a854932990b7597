package domain

import "time"

// GenerationJob describes one session generation run requested through the queue
type GenerationJob struct {
	JobID                      string    `json:"job_id"`
	PaymentsPath               string    `json:"payments_path"`
	CampaignsPath              string    `json:"campaigns_path"`
	SessionCount               int       `json:"session_count"`
	MaxPosition                int       `json:"max_position"`
	MergePaymentsWithinSeconds int       `json:"merge_payments_within_seconds"`
	RequestedAt                time.Time `json:"requested_at"`
}
