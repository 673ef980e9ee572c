package consumer

import (
	"encoding/json"
	"fmt"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

// JSONRunParser implements MessageParser for JSON-formatted run requests
type JSONRunParser struct{}

// NewJSONRunParser creates a new JSON run-request parser
func NewJSONRunParser() *JSONRunParser {
	return &JSONRunParser{}
}

// Parse parses a JSON message body into a RunRequest. A message without a run
// ID or with an unknown model is malformed and will never become valid, so it
// is rejected here rather than retried.
func (p *JSONRunParser) Parse(body []byte) (*domain.RunRequest, error) {
	var run domain.RunRequest
	if err := json.Unmarshal(body, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run request: %w", err)
	}

	if run.RunID == "" {
		return nil, fmt.Errorf("run request missing run_id")
	}

	if _, err := domain.ParseModel(run.Model); err != nil {
		return nil, fmt.Errorf("run request has invalid model: %w", err)
	}

	return &run, nil
}
