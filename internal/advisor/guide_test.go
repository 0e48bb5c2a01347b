package advisor

import "testing"

func phaseNames(g Guide) []string {
	names := make([]string, 0, len(g.Phases))
	for _, p := range g.Phases {
		names = append(names, p.Name)
	}
	return names
}

func TestBuildGuideMinimalServiceMix(t *testing.T) {
	classification := Classification{Primary: CategoryAuthentication, Features: []Category{CategoryAuthentication}}
	services := Recommend(classification, 500)

	guide := BuildGuide(services, classification, 500)

	want := []string{"Foundation Setup", "Core Infrastructure", "Integration & Testing", "Production Deployment"}
	got := phaseNames(guide)
	if len(got) != len(want) {
		t.Fatalf("phases = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phases[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Cognito alone scores 2 complexity points.
	if guide.Introduction.Difficulty != DifficultyIntermediate {
		t.Errorf("difficulty = %s, want Intermediate", guide.Introduction.Difficulty)
	}
	if guide.Introduction.EstimatedCost != "$0-50/month" {
		t.Errorf("estimated cost = %q", guide.Introduction.EstimatedCost)
	}
	if guide.Introduction.CostNote != "Can run mostly on AWS Free Tier" {
		t.Errorf("cost note = %q", guide.Introduction.CostNote)
	}
	if guide.Architecture.Pattern != "Traditional" {
		t.Errorf("pattern = %q, want Traditional without serverless compute", guide.Architecture.Pattern)
	}
}

func TestBuildGuideAllPhases(t *testing.T) {
	classification := Classification{Primary: CategoryEcommerce, Features: []Category{CategoryEcommerce}}
	services := Recommend(classification, 50000)

	guide := BuildGuide(services, classification, 50000)

	want := []string{
		"Foundation Setup",
		"Core Infrastructure",
		"Compute & API Layer",
		"Integration & Testing",
		"Performance Optimization",
		"Production Deployment",
	}
	got := phaseNames(guide)
	if len(got) != len(want) {
		t.Fatalf("phases = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phases[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if guide.Introduction.EstimatedCost != "$200-1000/month" {
		t.Errorf("estimated cost = %q", guide.Introduction.EstimatedCost)
	}
	if guide.Architecture.Pattern != "Serverless" {
		t.Errorf("pattern = %q, want Serverless", guide.Architecture.Pattern)
	}
}

func TestBuildGuideIntroductionScaling(t *testing.T) {
	classification := Classification{Primary: CategoryEcommerce, Features: []Category{CategoryEcommerce}}
	services := Recommend(classification, 5000)

	guide := BuildGuide(services, classification, 5000)

	// Seven ecommerce services: 15 + 7*5 = 50 hours over 6 days.
	if guide.Introduction.Timeline != "50-60 hours over 6-8 days" {
		t.Errorf("timeline = %q", guide.Introduction.Timeline)
	}
	if guide.Introduction.Title != "Building Your Ecommerce Platform on AWS" {
		t.Errorf("title = %q", guide.Introduction.Title)
	}
	if guide.Sections != len(services)+6 {
		t.Errorf("sections = %d, want %d", guide.Sections, len(services)+6)
	}
	if guide.ProjectContext.EstimatedUsers != 5000 || guide.ProjectContext.ServicesCount != len(services) {
		t.Errorf("project context = %+v", guide.ProjectContext)
	}

	// 5000/10 exceeds the cap, so the load test step uses 100.
	found := false
	for _, step := range guide.NextSteps {
		if step == "4. Test with 100 concurrent users" {
			found = true
		}
	}
	if !found {
		t.Errorf("next steps missing capped concurrent user count: %v", guide.NextSteps)
	}
}

func TestBuildGuideDifficultyFloor(t *testing.T) {
	classification := Classification{Primary: CategoryFileStorage, Features: []Category{CategoryFileStorage}}
	services := Recommend(classification, 100)

	guide := BuildGuide(services, classification, 100)

	if guide.Introduction.Difficulty != DifficultyBeginner {
		t.Errorf("difficulty = %s, want Beginner", guide.Introduction.Difficulty)
	}
	// One service: 20 hours, day count floors at 3.
	if guide.Introduction.Timeline != "20-30 hours over 3-5 days" {
		t.Errorf("timeline = %q", guide.Introduction.Timeline)
	}
}

func TestGuideCostBucketIndependentOfCostSummary(t *testing.T) {
	// The guide's cost bucket comes from raw user thresholds, not from the
	// aggregated service costs: a one-service project and a seven-service
	// project at the same scale share a bucket.
	auth := Classification{Primary: CategoryAuthentication, Features: []Category{CategoryAuthentication}}
	shop := Classification{Primary: CategoryEcommerce, Features: []Category{CategoryEcommerce}}

	authGuide := BuildGuide(Recommend(auth, 5000), auth, 5000)
	shopGuide := BuildGuide(Recommend(shop, 5000), shop, 5000)

	if authGuide.Introduction.EstimatedCost != shopGuide.Introduction.EstimatedCost {
		t.Errorf("cost buckets differ: %q vs %q",
			authGuide.Introduction.EstimatedCost, shopGuide.Introduction.EstimatedCost)
	}
	if authGuide.Introduction.EstimatedCost != "$50-200/month" {
		t.Errorf("cost bucket = %q, want $50-200/month", authGuide.Introduction.EstimatedCost)
	}
}
