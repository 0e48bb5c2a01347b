package advisor

// Run executes the full advisory pipeline: classification, service
// recommendation, cost aggregation, and guide generation. It is pure and
// stateless; concurrent calls share only the read-only catalog tables.
func Run(description string, estimatedUsers int) Result {
	classification := Classify(description)
	services := Recommend(classification, estimatedUsers)
	costs := AggregateCosts(services)
	guide := BuildGuide(services, classification, estimatedUsers)

	return Result{
		Classification: classification,
		Services:       services,
		CostSummary:    costs,
		Guide:          guide,
	}
}
