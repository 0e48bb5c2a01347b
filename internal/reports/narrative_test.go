package reports

import (
	"strings"
	"testing"

	"counsellor-backend/internal/advisor"
)

func TestNarrativeSectionOrder(t *testing.T) {
	result := advisor.Run("An ecommerce shop selling handmade goods with online payment checkout", 5000)

	html := Narrative(result, 5000)

	markers := []string{
		"Executive Summary",
		"Architecture Deep Dive",
		"Cost Analysis",
		"Implementation Roadmap",
		"Critical Best Practices",
		"You're Ready to Build",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(html, m)
		if idx < 0 {
			t.Fatalf("section %q missing", m)
		}
		if idx < last {
			t.Errorf("section %q out of order", m)
		}
		last = idx
	}
}

func TestNarrativePersonalization(t *testing.T) {
	result := advisor.Run("An ecommerce shop selling handmade goods with online payment checkout", 5000)

	html := Narrative(result, 5000)

	if !strings.Contains(html, "E-Commerce Platform") {
		t.Error("executive summary should use the ecommerce profile")
	}
	if !strings.Contains(html, "5,000 users") {
		t.Error("user count should be rendered with separators")
	}
	if !strings.Contains(html, "Medium Scale") {
		t.Error("5000 users should be labeled Medium Scale")
	}
	// 5000 users is inside the on-demand tier.
	if !strings.Contains(html, "On-Demand (pay per request)") {
		t.Error("dynamodb capacity mode wrong for 5000 users")
	}
	// Every recommended service gets its own numbered detail block.
	for _, svc := range result.Services {
		if !strings.Contains(html, svc.DisplayName) {
			t.Errorf("service %s missing from deep dive", svc.DisplayName)
		}
	}
	// Free-tier verdict is always on, so the notice always renders.
	if !strings.Contains(html, "Free Tier Opportunity") {
		t.Error("free tier notice missing")
	}
	// Cost summary strings flow through unchanged.
	if !strings.Contains(html, result.CostSummary.Summary.Typical) {
		t.Error("typical cost missing from cost narrative")
	}
}

func TestNarrativeFallbackProfile(t *testing.T) {
	// Analytics has no dedicated profile copy and falls back to the
	// web application wording.
	result := advisor.Run("Business analytics dashboard with tracking and reporting metrics", 200)

	html := Narrative(result, 200)

	if !strings.Contains(html, "a cloud-based web application requiring scalable infrastructure") {
		t.Error("unknown project type should fall back to web application copy")
	}
	if !strings.Contains(html, "Small Scale") {
		t.Error("200 users should be labeled Small Scale")
	}
}

func TestNarrativePhaseGuidancePerPhase(t *testing.T) {
	result := advisor.Run("An ecommerce shop selling handmade goods with online payment checkout", 50000)

	html := Narrative(result, 50000)

	// Six phases at this scale, each with its own heading.
	for i := 1; i <= 6; i++ {
		if !strings.Contains(html, "Phase "+string(rune('0'+i))+": ") {
			t.Errorf("phase %d heading missing", i)
		}
	}
	// Performance Optimization has no canned guidance and uses the default.
	if !strings.Contains(html, "This phase implements critical components of your architecture.") {
		t.Error("default phase guidance missing for Performance Optimization")
	}
	if !strings.Contains(html, "Provisioned with auto-scaling") {
		t.Error("dynamodb capacity mode wrong for 50000 users")
	}
}
