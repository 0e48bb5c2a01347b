package advisor

// Category is a fixed project-type label used both as classification output
// and catalog key.
type Category string

const (
	CategoryWebApplication Category = "web_application"
	CategoryEcommerce      Category = "ecommerce"
	CategoryMarketplace    Category = "marketplace"
	CategorySocial         Category = "social"
	CategoryMobileBackend  Category = "mobile_backend"
	CategoryAPI            Category = "api"
	CategoryRealTime       Category = "real_time"
	CategoryFileStorage    Category = "file_storage"
	CategoryAuthentication Category = "authentication"
	CategoryAnalytics      Category = "analytics"

	CategoryBlog  Category = "blog"
	CategorySaaS  Category = "saas"
	CategoryEmail Category = "email"
)

// fallbackCategory is returned when no keyword matches.
const fallbackCategory = CategoryWebApplication

// Classification is the immutable result of classifying a project description.
type Classification struct {
	Primary    Category   `json:"primary"`
	Confidence float64    `json:"confidence"`
	Features   []Category `json:"features"`
}

// Capabilities tags what a catalog service provides, so downstream logic
// reads structured flags instead of sniffing display names.
type Capabilities struct {
	Auth       bool `json:"-"`
	Database   bool `json:"-"`
	Compute    bool `json:"-"`
	API        bool `json:"-"`
	Storage    bool `json:"-"`
	CDN        bool `json:"-"`
	Email      bool `json:"-"`
	Serverless bool `json:"-"`
}

// ServiceEntry describes one cloud service in the static catalog.
type ServiceEntry struct {
	Key          string       `json:"key"`
	DisplayName  string       `json:"name"`
	Category     string       `json:"category"`
	Rationale    string       `json:"why_needed"`
	UsageExample string       `json:"use_case_example"`
	Capabilities Capabilities `json:"-"`

	// complexityWeight feeds the guide's difficulty score.
	complexityWeight int
}

// CostRange is a monthly USD cost envelope, min <= max.
type CostRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RecommendedService is a ServiceEntry enriched with user-scaled cost data.
type RecommendedService struct {
	ServiceEntry
	CostRange CostRange `json:"cost_range"`
	FreeTier  string    `json:"free_tier"`
}

// CostTotals is the envelope over all recommended services.
type CostTotals struct {
	FreeTierViable bool    `json:"free_tier_viable"`
	Minimum        string  `json:"minimum"`
	Typical        string  `json:"typical"`
	Maximum        string  `json:"maximum"`
	TotalMin       int     `json:"-"`
	TotalMax       int     `json:"-"`
	TypicalValue   float64 `json:"-"`
}

// CostSummary aggregates per-service cost ranges.
type CostSummary struct {
	Summary   CostTotals        `json:"summary"`
	Breakdown map[string]string `json:"breakdown"`
}

// Phase is one ordered stage of the implementation guide.
type Phase struct {
	Name        string   `json:"name"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// GuideIntroduction summarizes timeline, difficulty, and cost expectations.
type GuideIntroduction struct {
	Title         string `json:"title"`
	Overview      string `json:"overview"`
	Timeline      string `json:"timeline"`
	Difficulty    string `json:"difficulty"`
	EstimatedCost string `json:"estimated_cost"`
	CostNote      string `json:"cost_note"`
}

// GuideContext captures the project facts the guide was derived from.
type GuideContext struct {
	Type           Category `json:"type"`
	EstimatedUsers int      `json:"estimated_users"`
	ServicesCount  int      `json:"services_count"`
	Complexity     string   `json:"complexity"`
}

// GuideArchitecture summarizes the architecture shape.
type GuideArchitecture struct {
	Pattern       string   `json:"pattern"`
	ServicesCount int      `json:"services_count"`
	Scalability   string   `json:"scalability"`
	Services      []string `json:"services"`
}

// Guide is the phased implementation plan derived from the recommendation.
type Guide struct {
	Format         string            `json:"format"`
	Sections       int               `json:"sections"`
	ProjectContext GuideContext      `json:"project_context"`
	Introduction   GuideIntroduction `json:"introduction"`
	Prerequisites  []string          `json:"prerequisites"`
	Architecture   GuideArchitecture `json:"architecture"`
	NextSteps      []string          `json:"next_steps"`
	Phases         []Phase           `json:"phases"`
}

// Result is the immutable outbound structure of the full pipeline.
type Result struct {
	Classification Classification       `json:"analysis"`
	Services       []RecommendedService `json:"services"`
	CostSummary    CostSummary          `json:"cost_analysis"`
	Guide          Guide                `json:"implementation_guide"`
}
