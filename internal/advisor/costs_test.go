package advisor

import "testing"

func TestAggregateCosts(t *testing.T) {
	services := []RecommendedService{
		{ServiceEntry: ServiceEntry{Key: "a", DisplayName: "Service A"}, CostRange: CostRange{Min: 10, Max: 20}},
		{ServiceEntry: ServiceEntry{Key: "b", DisplayName: "Service B"}, CostRange: CostRange{Min: 5, Max: 11}},
	}

	got := AggregateCosts(services)

	if got.Summary.Minimum != "$15" {
		t.Errorf("minimum = %q, want $15", got.Summary.Minimum)
	}
	if got.Summary.Maximum != "$31" {
		t.Errorf("maximum = %q, want $31", got.Summary.Maximum)
	}
	// Typical is the midpoint of the total envelope.
	if got.Summary.Typical != "$23" {
		t.Errorf("typical = %q, want $23", got.Summary.Typical)
	}
	if !got.Summary.FreeTierViable {
		t.Error("free tier verdict should be constant true")
	}
	if got.Breakdown["Service A"] != "$10-20" || got.Breakdown["Service B"] != "$5-11" {
		t.Errorf("breakdown = %v", got.Breakdown)
	}
}

func TestAggregateCostsEmpty(t *testing.T) {
	got := AggregateCosts(nil)

	if got.Summary.Minimum != "$0" || got.Summary.Maximum != "$0" || got.Summary.Typical != "$0" {
		t.Errorf("empty summary = %+v", got.Summary)
	}
	if len(got.Breakdown) != 0 {
		t.Errorf("breakdown should be empty, got %v", got.Breakdown)
	}
}

func TestAggregateCostsTracksRecommendationScale(t *testing.T) {
	classification := Classification{Primary: CategoryAPI, Features: []Category{CategoryAPI}}

	small := AggregateCosts(Recommend(classification, 500))
	large := AggregateCosts(Recommend(classification, 50000))

	if small.Summary.TotalMin >= large.Summary.TotalMin || small.Summary.TotalMax >= large.Summary.TotalMax {
		t.Errorf("costs should grow with the user tier: small=%+v large=%+v", small.Summary, large.Summary)
	}
	if small.Summary.TypicalValue != float64(small.Summary.TotalMin+small.Summary.TotalMax)/2 {
		t.Errorf("typical value %v is not the envelope midpoint", small.Summary.TypicalValue)
	}
}
