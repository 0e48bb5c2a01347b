package advisor

import "fmt"

// AggregateCosts sums per-service cost ranges into an overall monthly
// envelope. Typical is the arithmetic mean of the totals. The free-tier
// verdict is a constant policy, not a computed check.
func AggregateCosts(services []RecommendedService) CostSummary {
	totalMin := 0
	totalMax := 0
	breakdown := make(map[string]string, len(services))

	for _, svc := range services {
		totalMin += svc.CostRange.Min
		totalMax += svc.CostRange.Max
		breakdown[svc.DisplayName] = fmt.Sprintf("$%d-%d", svc.CostRange.Min, svc.CostRange.Max)
	}

	typical := float64(totalMin+totalMax) / 2

	return CostSummary{
		Summary: CostTotals{
			FreeTierViable: true,
			Minimum:        fmt.Sprintf("$%d", totalMin),
			Typical:        fmt.Sprintf("$%.0f", typical),
			Maximum:        fmt.Sprintf("$%d", totalMax),
			TotalMin:       totalMin,
			TotalMax:       totalMax,
			TypicalValue:   typical,
		},
		Breakdown: breakdown,
	}
}
