package advisor

import (
	"fmt"

	"counsellor-backend/internal/shared/util"
)

// Difficulty labels.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// BuildGuide derives a phased implementation plan from the recommended
// services, the classification, and the user scale. The cost bucket here is
// computed from raw user-count thresholds on purpose, independently of
// AggregateCosts; the two estimates are decoupled in the product's behavior.
func BuildGuide(services []RecommendedService, classification Classification, estimatedUsers int) Guide {
	projectType := classification.Primary

	serviceCount := len(services)
	totalHours := 15 + serviceCount*5
	days := totalHours / 8
	if days < 3 {
		days = 3
	}

	complexityScore := 0
	for _, svc := range services {
		complexityScore += svc.complexityWeight
	}
	difficulty := DifficultyAdvanced
	switch {
	case complexityScore < 2:
		difficulty = DifficultyBeginner
	case complexityScore < 4:
		difficulty = DifficultyIntermediate
	}

	costRange, tierMessage := userTierCost(estimatedUsers)

	names := make([]string, 0, serviceCount)
	for _, svc := range services {
		names = append(names, svc.DisplayName)
	}

	pattern := "Traditional"
	for _, svc := range services {
		if svc.Capabilities.Serverless {
			pattern = "Serverless"
			break
		}
	}

	concurrentUsers := estimatedUsers / 10
	if concurrentUsers > 100 {
		concurrentUsers = 100
	}

	return Guide{
		Format:   "dynamic_personalized",
		Sections: serviceCount + 6,
		ProjectContext: GuideContext{
			Type:           projectType,
			EstimatedUsers: estimatedUsers,
			ServicesCount:  serviceCount,
			Complexity:     difficulty,
		},
		Introduction: GuideIntroduction{
			Title: fmt.Sprintf("Building Your %s Platform on AWS", titleCase(string(projectType))),
			Overview: fmt.Sprintf("Personalized implementation guide for a %s application serving %s users using %d AWS services.",
				projectType, util.FormatCount(estimatedUsers), serviceCount),
			Timeline:      fmt.Sprintf("%d-%d hours over %d-%d days", totalHours, totalHours+10, days, days+2),
			Difficulty:    difficulty,
			EstimatedCost: costRange + "/month",
			CostNote:      tierMessage,
		},
		Prerequisites: []string{
			"AWS account with admin access",
			"AWS CLI installed and configured",
			"Basic knowledge of cloud architecture",
			fmt.Sprintf("Understanding of %s applications", projectType),
		},
		Architecture: GuideArchitecture{
			Pattern:       pattern,
			ServicesCount: serviceCount,
			Scalability:   fmt.Sprintf("Designed for %s users", util.FormatCount(estimatedUsers)),
			Services:      names,
		},
		NextSteps: []string{
			fmt.Sprintf("1. Set up AWS account with budget alert for %s", costRange),
			"2. Review prerequisites and gather tools",
			"3. Follow implementation phases in order",
			fmt.Sprintf("4. Test with %d concurrent users", concurrentUsers),
			"5. Monitor CloudWatch metrics closely",
			"6. Scale gradually based on actual usage",
		},
		Phases: buildPhases(services, estimatedUsers),
	}
}

func userTierCost(estimatedUsers int) (costRange, tierMessage string) {
	switch {
	case estimatedUsers < 1000:
		return "$0-50", "Can run mostly on AWS Free Tier"
	case estimatedUsers < 10000:
		return "$50-200", "Some Free Tier benefits available"
	default:
		return "$200-1000", "Production-grade costs"
	}
}

// buildPhases assembles the ordered phase list. Foundation, Integration, and
// Deployment are unconditional; the rest depend on the service mix and scale.
func buildPhases(services []RecommendedService, estimatedUsers int) []Phase {
	hasKey := func(key string) bool {
		for _, svc := range services {
			if svc.Key == key {
				return true
			}
		}
		return false
	}
	hasCap := func(match func(Capabilities) bool) bool {
		for _, svc := range services {
			if match(svc.Capabilities) {
				return true
			}
		}
		return false
	}

	phases := []Phase{
		{
			Name:        "Foundation Setup",
			Duration:    "2-3 hours",
			Description: "Set up AWS account and basic infrastructure",
			Steps: []string{
				"Create AWS account or use existing",
				"Set up IAM users with MFA",
				"Configure AWS CLI",
				"Set up billing alerts",
			},
		},
	}

	var coreSteps []string
	if hasCap(func(c Capabilities) bool { return c.Auth }) {
		coreSteps = append(coreSteps, "Set up Cognito user pool")
	}
	if hasKey(KeyDynamoDB) {
		coreSteps = append(coreSteps, "Create DynamoDB tables")
	} else if hasKey(KeyRDS) {
		coreSteps = append(coreSteps, "Set up RDS database")
	}
	if hasCap(func(c Capabilities) bool { return c.Storage }) {
		coreSteps = append(coreSteps, "Create S3 buckets with proper policies")
	}
	if len(coreSteps) > 0 {
		phases = append(phases, Phase{
			Name:        "Core Infrastructure",
			Duration:    "4-6 hours",
			Description: "Set up database, storage, and authentication",
			Steps:       coreSteps,
		})
	}

	var computeSteps []string
	if hasCap(func(c Capabilities) bool { return c.Compute }) {
		computeSteps = append(computeSteps,
			"Create Lambda functions",
			"Set up environment variables",
			"Configure IAM roles",
		)
	}
	if hasKey(KeyAPIGateway) {
		computeSteps = append(computeSteps,
			"Create API Gateway",
			"Configure endpoints",
			"Set up CORS",
		)
	}
	if len(computeSteps) > 0 {
		phases = append(phases, Phase{
			Name:        "Compute & API Layer",
			Duration:    "6-8 hours",
			Description: "Implement business logic and API endpoints",
			Steps:       computeSteps,
		})
	}

	phases = append(phases, Phase{
		Name:        "Integration & Testing",
		Duration:    "4-6 hours",
		Description: "Connect all services and test end-to-end",
		Steps: []string{
			"Connect Lambda to database",
			"Test API endpoints",
			"Set up CloudWatch logging",
			"Configure error handling",
			"Test authentication flow",
		},
	})

	if estimatedUsers > 1000 {
		phases = append(phases, Phase{
			Name:        "Performance Optimization",
			Duration:    "3-4 hours",
			Description: "Optimize for scale and performance",
			Steps: []string{
				"Enable CloudFront CDN",
				"Configure caching",
				"Set up auto-scaling",
				"Optimize database queries",
				"Enable X-Ray tracing",
			},
		})
	}

	phases = append(phases, Phase{
		Name:        "Production Deployment",
		Duration:    "2-3 hours",
		Description: "Deploy to production environment",
		Steps: []string{
			"Set up CI/CD pipeline",
			"Configure monitoring dashboards",
			"Deploy to production",
			"Run smoke tests",
			"Monitor for 24 hours",
		},
	})

	return phases
}
