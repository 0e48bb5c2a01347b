package analyses

import (
	"time"

	"counsellor-backend/internal/advisor"
)

// Record is one stored advisory run, kept so callers can revisit past
// recommendations. The full pipeline result is persisted as JSON; the
// flat columns exist for listing without unmarshaling the blob.
type Record struct {
	ID            string         `json:"id"`
	APIKey        string         `json:"api_key"`
	Description   string         `json:"description"`
	PrimaryType   string         `json:"project_type"`
	Confidence    float64        `json:"confidence"`
	ServicesCount int            `json:"services_count"`
	Result        advisor.Result `json:"result"`
	CreatedAt     time.Time      `json:"created_at"`
}
