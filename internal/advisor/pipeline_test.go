package advisor

import (
	"fmt"
	"testing"
)

const storeDescription = "I want to build an online store where customers can browse products and checkout with payment"

func TestRunStoreScenarioMediumScale(t *testing.T) {
	result := Run(storeDescription, 5000)

	if result.Classification.Primary != CategoryEcommerce {
		t.Fatalf("primary = %s, want ecommerce", result.Classification.Primary)
	}
	if result.Classification.Confidence <= 0.5 {
		t.Errorf("confidence = %v, want > 0.5", result.Classification.Confidence)
	}
	if result.Classification.Features[0] != CategoryEcommerce {
		t.Errorf("features[0] = %s, want ecommerce", result.Classification.Features[0])
	}

	for _, key := range []string{KeyCognito, KeyDynamoDB, KeyLambda, KeyAPIGateway, KeyS3} {
		findService(t, result.Services, key)
	}

	// 1.0x tier at 5000 users leaves base ranges untouched.
	lambda := findService(t, result.Services, KeyLambda)
	if lambda.CostRange.Min != 10 || lambda.CostRange.Max != 50 {
		t.Errorf("lambda cost = %d-%d, want base 10-50", lambda.CostRange.Min, lambda.CostRange.Max)
	}

	cdnCount := 0
	for _, svc := range result.Services {
		if svc.Capabilities.CDN {
			cdnCount++
		}
	}
	if cdnCount != 1 {
		t.Errorf("CDN count = %d, want the catalog entry only", cdnCount)
	}
}

func TestRunStoreScenarioLargeScale(t *testing.T) {
	medium := Run(storeDescription, 5000)
	large := Run(storeDescription, 50000)

	if large.Classification.Primary != medium.Classification.Primary ||
		large.Classification.Confidence != medium.Classification.Confidence {
		t.Errorf("classification changed with scale: %+v vs %+v",
			large.Classification, medium.Classification)
	}

	cdnCount := 0
	for _, svc := range large.Services {
		if svc.Capabilities.CDN {
			cdnCount++
		}
	}
	if cdnCount != 1 {
		t.Errorf("CDN count = %d, want 1", cdnCount)
	}

	// Every service doubles relative to the 1.0x tier.
	for _, svc := range large.Services {
		base := findService(t, medium.Services, svc.Key)
		if svc.CostRange.Min != base.CostRange.Min*2 || svc.CostRange.Max != base.CostRange.Max*2 {
			t.Errorf("service %s cost = %d-%d, want 2x of %d-%d",
				svc.Key, svc.CostRange.Min, svc.CostRange.Max, base.CostRange.Min, base.CostRange.Max)
		}
	}
}

func TestRunBreakdownMatchesServices(t *testing.T) {
	result := Run(storeDescription, 5000)

	if len(result.CostSummary.Breakdown) != len(result.Services) {
		t.Fatalf("breakdown entries = %d, want %d", len(result.CostSummary.Breakdown), len(result.Services))
	}
	for _, svc := range result.Services {
		want := fmt.Sprintf("$%d-%d", svc.CostRange.Min, svc.CostRange.Max)
		if got := result.CostSummary.Breakdown[svc.DisplayName]; got != want {
			t.Errorf("breakdown[%s] = %q, want %q", svc.DisplayName, got, want)
		}
	}
}
