package analyses

import (
	"strings"
	"testing"
)

func validRequest() AnalysisRequest {
	return AnalysisRequest{
		Description:    "An online store with product cart and checkout payment flow",
		EstimatedUsers: 5000,
		Budget:         "medium",
	}
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	req := validRequest()
	if err := req.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if req.Region != "us-east-1" {
		t.Errorf("region = %q, want us-east-1", req.Region)
	}
	if req.AdvancedGuide == nil || !*req.AdvancedGuide {
		t.Error("advanced_guide should default to true")
	}
}

func TestNormalizeSanitizesDescription(t *testing.T) {
	req := validRequest()
	req.Description = "  An online <b>store</b>   with \t payment   checkout  "
	if err := req.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if strings.Contains(req.Description, "<") || strings.Contains(req.Description, ">") {
		t.Errorf("HTML not escaped: %q", req.Description)
	}
	if strings.Contains(req.Description, "  ") {
		t.Errorf("whitespace not collapsed: %q", req.Description)
	}
	if !strings.HasPrefix(req.Description, "An online") {
		t.Errorf("leading whitespace kept: %q", req.Description)
	}
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AnalysisRequest)
	}{
		{"short description", func(r *AnalysisRequest) { r.Description = "too short" }},
		{"long description", func(r *AnalysisRequest) { r.Description = strings.Repeat("x", 5001) }},
		{"whitespace padding under minimum", func(r *AnalysisRequest) { r.Description = "   a b c   " }},
		{"zero users", func(r *AnalysisRequest) { r.EstimatedUsers = 0 }},
		{"too many users", func(r *AnalysisRequest) { r.EstimatedUsers = 100_000_001 }},
		{"missing budget", func(r *AnalysisRequest) { r.Budget = "" }},
		{"unknown budget", func(r *AnalysisRequest) { r.Budget = "unlimited" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			if err := req.Normalize(); err == nil {
				t.Error("Normalize accepted invalid request")
			}
		})
	}
}

func TestNormalizeBoundaryUsers(t *testing.T) {
	for _, users := range []int{1, 100_000_000} {
		req := validRequest()
		req.EstimatedUsers = users
		if err := req.Normalize(); err != nil {
			t.Errorf("users=%d rejected: %v", users, err)
		}
	}
}
