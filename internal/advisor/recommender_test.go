package advisor

import (
	"strings"
	"testing"
)

func findService(t *testing.T, services []RecommendedService, key string) RecommendedService {
	t.Helper()
	for _, svc := range services {
		if svc.Key == key {
			return svc
		}
	}
	t.Fatalf("service %s not recommended", key)
	return RecommendedService{}
}

func TestRecommendMergesFeaturesWithoutDuplicates(t *testing.T) {
	classification := Classification{
		Primary:  CategoryAPI,
		Features: []Category{CategoryAPI, CategoryFileStorage, CategoryAuthentication},
	}

	services := Recommend(classification, 500)

	wantOrder := []string{KeyLambda, KeyAPIGateway, KeyDynamoDB, KeyS3, KeyCognito}
	if len(services) != len(wantOrder) {
		t.Fatalf("got %d services, want %d", len(services), len(wantOrder))
	}
	seen := make(map[string]int)
	for i, svc := range services {
		seen[svc.Key]++
		if svc.Key != wantOrder[i] {
			t.Errorf("services[%d] = %s, want %s", i, svc.Key, wantOrder[i])
		}
	}
	for key, n := range seen {
		if n > 1 {
			t.Errorf("service %s appears %d times", key, n)
		}
	}
}

func TestRecommendSynthesizesCDNAboveThreshold(t *testing.T) {
	classification := Classification{Primary: CategoryAPI, Features: []Category{CategoryAPI}}

	services := Recommend(classification, 20000)

	cdnCount := 0
	for _, svc := range services {
		if svc.Capabilities.CDN {
			cdnCount++
		}
	}
	if cdnCount != 1 {
		t.Fatalf("CDN count = %d, want 1", cdnCount)
	}

	last := services[len(services)-1]
	if last.Key != KeyCloudFront {
		t.Errorf("synthesized CDN should be appended last, got %s", last.Key)
	}
	if !strings.Contains(last.Rationale, "20,000 users") {
		t.Errorf("CDN rationale should carry the formatted user count: %q", last.Rationale)
	}
}

func TestRecommendDoesNotDuplicateCatalogCDN(t *testing.T) {
	// Ecommerce already ships CloudFront in its catalog set.
	classification := Classification{Primary: CategoryEcommerce, Features: []Category{CategoryEcommerce}}

	services := Recommend(classification, 50000)

	cdnCount := 0
	for _, svc := range services {
		if svc.Capabilities.CDN {
			cdnCount++
		}
	}
	if cdnCount != 1 {
		t.Errorf("CDN count = %d, want 1", cdnCount)
	}
}

func TestRecommendBelowThresholdHasNoCDNForAPI(t *testing.T) {
	classification := Classification{Primary: CategoryAPI, Features: []Category{CategoryAPI}}

	for _, svc := range Recommend(classification, 10000) {
		if svc.Capabilities.CDN {
			t.Errorf("CDN recommended at exactly 10000 users")
		}
	}
}

func TestRecommendUnknownCategoryFallsBack(t *testing.T) {
	classification := Classification{Primary: Category("video_games"), Features: []Category{"video_games"}}

	services := Recommend(classification, 500)

	wantOrder := []string{KeyLambda, KeyAPIGateway, KeyDynamoDB, KeyS3}
	if len(services) != len(wantOrder) {
		t.Fatalf("got %d services, want %d", len(services), len(wantOrder))
	}
	for i, svc := range services {
		if svc.Key != wantOrder[i] {
			t.Errorf("services[%d] = %s, want %s", i, svc.Key, wantOrder[i])
		}
	}
}

func TestRecommendScalesCostsByUserTier(t *testing.T) {
	classification := Classification{Primary: CategoryAPI, Features: []Category{CategoryAPI}}

	cases := []struct {
		users    int
		min, max int
	}{
		{500, 5, 25},      // 0.5x
		{5000, 10, 50},    // 1.0x
		{50000, 20, 100},  // 2.0x
		{500000, 40, 200}, // 4.0x
	}
	for _, tc := range cases {
		lambda := findService(t, Recommend(classification, tc.users), KeyLambda)
		if lambda.CostRange.Min != tc.min || lambda.CostRange.Max != tc.max {
			t.Errorf("users=%d: lambda cost = %d-%d, want %d-%d",
				tc.users, lambda.CostRange.Min, lambda.CostRange.Max, tc.min, tc.max)
		}
	}
}

func TestRecommendAttachesFreeTier(t *testing.T) {
	classification := Classification{Primary: CategoryAPI, Features: []Category{CategoryAPI}}

	lambda := findService(t, Recommend(classification, 500), KeyLambda)
	if lambda.FreeTier != "1M requests + 400K GB-seconds" {
		t.Errorf("lambda free tier = %q", lambda.FreeTier)
	}
}
