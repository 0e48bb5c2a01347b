package advisor

import (
	"fmt"

	"counsellor-backend/internal/shared/util"
)

// cdnUserThreshold is the user count above which a CDN is always recommended.
const cdnUserThreshold = 10000

// Recommend maps a classification and user scale to an ordered service list.
// Order is insertion order of discovery: the primary category's catalog
// first, then feature-derived additions, then the conditional CDN append.
// Unknown primary categories fall back to the default service set.
func Recommend(classification Classification, estimatedUsers int) []RecommendedService {
	var entries []ServiceEntry
	seen := make(map[string]struct{})

	primary, ok := serviceCatalog[classification.Primary]
	if !ok {
		primary = defaultServices
	}
	for _, e := range primary {
		entries = append(entries, e)
		seen[e.Key] = struct{}{}
	}

	// Secondary detected features pull in services the primary set omitted.
	for _, feature := range classification.Features {
		if feature == classification.Primary {
			continue
		}
		for _, e := range serviceCatalog[feature] {
			if _, dup := seen[e.Key]; dup {
				continue
			}
			entries = append(entries, e)
			seen[e.Key] = struct{}{}
		}
	}

	if estimatedUsers > cdnUserThreshold && !hasCDN(entries) {
		entries = append(entries, entry(KeyCloudFront,
			fmt.Sprintf("Essential for %s users - delivers content globally with low latency", util.FormatCount(estimatedUsers)),
			"Global CDN, caching, DDoS protection"))
	}

	out := make([]RecommendedService, 0, len(entries))
	for _, e := range entries {
		out = append(out, RecommendedService{
			ServiceEntry: e,
			CostRange:    scaledCost(e.Key, estimatedUsers),
			FreeTier:     freeTierFor(e.Key),
		})
	}
	return out
}

func hasCDN(entries []ServiceEntry) bool {
	for _, e := range entries {
		if e.Capabilities.CDN {
			return true
		}
	}
	return false
}

// costMultiplier is a step function of user count.
func costMultiplier(users int) float64 {
	switch {
	case users < 1000:
		return 0.5
	case users < 10000:
		return 1.0
	case users < 100000:
		return 2.0
	default:
		return 4.0
	}
}

func scaledCost(serviceKey string, users int) CostRange {
	base, ok := baseCosts[serviceKey]
	if !ok {
		base = defaultCostRange
	}
	multiplier := costMultiplier(users)
	return CostRange{
		Min: int(float64(base.Min) * multiplier),
		Max: int(float64(base.Max) * multiplier),
	}
}

func freeTierFor(serviceKey string) string {
	if tier, ok := freeTiers[serviceKey]; ok {
		return tier
	}
	return defaultFreeTier
}
