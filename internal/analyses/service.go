package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"counsellor-backend/internal/advisor"
	"counsellor-backend/internal/reports"
	"counsellor-backend/internal/shared/storage/object"
	"counsellor-backend/internal/shared/telemetry"
)

// Service runs the advisory pipeline and manages record persistence and
// report archival. History persistence is best-effort: a repo failure is
// logged but never fails the caller's request.
type Service struct {
	Repo           Repo
	Store          object.ObjectStore
	ArchiveReports bool

	now func() time.Time
}

// NewService constructs a Service. store may be nil when archival is off.
func NewService(repo Repo, store object.ObjectStore, archiveReports bool) *Service {
	return &Service{
		Repo:           repo,
		Store:          store,
		ArchiveReports: archiveReports,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Analyze runs the full pipeline and records the result under the caller's
// API key.
func (s *Service) Analyze(ctx context.Context, apiKey string, req AnalysisRequest) Record {
	result := advisor.Run(req.Description, req.EstimatedUsers)

	record := Record{
		ID:            "proj_" + uuid.NewString(),
		APIKey:        apiKey,
		Description:   req.Description,
		PrimaryType:   string(result.Classification.Primary),
		Confidence:    result.Classification.Confidence,
		ServicesCount: len(result.Services),
		Result:        result,
		CreatedAt:     s.now(),
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		telemetry.Error("analyses.persist_failed", map[string]any{
			"record_id": record.ID,
			"error":     err.Error(),
		})
	}
	return record
}

// GenerateIaC runs the pipeline and renders a Terraform bundle.
func (s *Service) GenerateIaC(ctx context.Context, apiKey string, req AnalysisRequest) (string, advisor.Result, reports.Bundle) {
	result := advisor.Run(req.Description, req.EstimatedUsers)
	bundle := reports.Terraform(result.Services, result.Classification, req.EstimatedUsers)

	projectID := "iac_" + uuid.NewString()
	if payload, err := json.Marshal(bundle); err == nil {
		s.archive(ctx, apiKey, projectID+".json", "application/json", bytes.NewReader(payload))
	}
	return projectID, result, bundle
}

// GenerateNarrative runs the pipeline and renders the narrative report.
func (s *Service) GenerateNarrative(ctx context.Context, apiKey string, req AnalysisRequest) (string, string) {
	result := advisor.Run(req.Description, req.EstimatedUsers)
	narrativeHTML := reports.Narrative(result, req.EstimatedUsers)

	projectID := "narrative_" + uuid.NewString()
	s.archive(ctx, apiKey, projectID+".html", "text/html; charset=utf-8", strings.NewReader(narrativeHTML))
	return projectID, narrativeHTML
}

// List returns stored records for an API key, newest first.
func (s *Service) List(ctx context.Context, apiKey string, limit, offset int) ([]Record, error) {
	return s.Repo.ListByKey(ctx, apiKey, limit, offset)
}

// Get returns one stored record.
func (s *Service) Get(ctx context.Context, recordID string) (Record, error) {
	return s.Repo.GetByID(ctx, recordID)
}

func (s *Service) archive(ctx context.Context, apiKey, fileName, contentType string, r io.Reader) {
	if !s.ArchiveReports || s.Store == nil {
		return
	}
	storageKey, sizeBytes, err := s.Store.Save(ctx, apiKey, fileName, contentType, r)
	if err != nil {
		telemetry.Error("analyses.archive_failed", map[string]any{
			"file_name": fileName,
			"error":     err.Error(),
		})
		return
	}
	telemetry.Info("analyses.report_archived", map[string]any{
		"storage_key": storageKey,
		"size_bytes":  sizeBytes,
	})
}
