package health

import "time"

// ServiceName and Version identify the API in the root banner.
const (
	ServiceName = "AWS Friendly Counsellor"
	Version     = "3.0.0"
)

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Banner returns the root identity payload.
func (s *Service) Banner() map[string]string {
	return map[string]string{
		"service": ServiceName,
		"version": Version,
		"status":  "healthy",
	}
}

// Status returns the health payload with a current timestamp.
func (s *Service) Status() map[string]string {
	return map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}
