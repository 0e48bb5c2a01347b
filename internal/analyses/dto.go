package analyses

import (
	"errors"
	"html"
	"strings"
)

const (
	minDescriptionLen = 10
	maxDescriptionLen = 5000
	maxEstimatedUsers = 100_000_000
)

// AnalysisRequest is the inbound payload shared by the analyze, iac, and
// narrative endpoints.
type AnalysisRequest struct {
	Description    string `json:"description"`
	EstimatedUsers int    `json:"estimated_users"`
	Budget         string `json:"budget"`
	Region         string `json:"region"`
	AdvancedGuide  *bool  `json:"advanced_guide"`
}

var validBudgets = map[string]struct{}{
	"low":    {},
	"medium": {},
	"high":   {},
}

// Normalize validates the request and sanitizes the description in place:
// trim, HTML-escape, collapse runs of whitespace. Defaults are applied for
// the optional fields.
func (r *AnalysisRequest) Normalize() error {
	if n := len(r.Description); n < minDescriptionLen || n > maxDescriptionLen {
		return errors.New("description must be between 10 and 5000 characters")
	}

	desc := strings.TrimSpace(r.Description)
	desc = html.EscapeString(desc)
	desc = strings.Join(strings.Fields(desc), " ")
	if len(desc) < minDescriptionLen {
		return errors.New("description too short")
	}
	r.Description = desc

	if r.EstimatedUsers < 1 || r.EstimatedUsers > maxEstimatedUsers {
		return errors.New("estimated_users must be between 1 and 100000000")
	}

	if _, ok := validBudgets[r.Budget]; !ok {
		return errors.New("budget must be one of: low, medium, high")
	}

	if r.Region == "" {
		r.Region = "us-east-1"
	}
	if r.AdvancedGuide == nil {
		t := true
		r.AdvancedGuide = &t
	}
	return nil
}
