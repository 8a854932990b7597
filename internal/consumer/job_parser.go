package consumer

import (
	"encoding/json"
	"fmt"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// JSONJobParser implements MessageParser for JSON-formatted job messages
type JSONJobParser struct{}

// NewJSONJobParser creates a new JSON job parser
func NewJSONJobParser() *JSONJobParser {
	return &JSONJobParser{}
}

// Parse parses a JSON message body into a GenerationJob
func (p *JSONJobParser) Parse(body []byte) (*domain.GenerationJob, error) {
	var job domain.GenerationJob
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	switch {
	case job.JobID == "":
		return nil, fmt.Errorf("job_id is required")
	case job.PaymentsPath == "":
		return nil, fmt.Errorf("payments_path is required")
	case job.CampaignsPath == "":
		return nil, fmt.Errorf("campaigns_path is required")
	}

	return &job, nil
}
