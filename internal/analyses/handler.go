package analyses

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"counsellor-backend/internal/advisor"
	"counsellor-backend/internal/reports"
	"counsellor-backend/internal/shared/server/middleware"
	"counsellor-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the advisory service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches advisory routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/iac", h.iac)
	rg.POST("/narrative", h.narrative)
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
}

type responseMetadata struct {
	ProcessingTimeMS int64  `json:"processing_time_ms"`
	Timestamp        string `json:"timestamp"`
}

func metadataSince(start time.Time) responseMetadata {
	return responseMetadata{
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}
}

type analysisSummary struct {
	ProjectType      advisor.Category   `json:"project_type"`
	Confidence       float64            `json:"confidence"`
	DetectedFeatures []advisor.Category `json:"detected_features"`
}

type analyzeResponse struct {
	ProjectID           string                       `json:"project_id"`
	Analysis            analysisSummary              `json:"analysis"`
	Services            []advisor.RecommendedService `json:"services"`
	CostAnalysis        advisor.CostSummary          `json:"cost_analysis"`
	ImplementationGuide advisor.Guide                `json:"implementation_guide"`
	Metadata            responseMetadata             `json:"metadata"`
}

type iacAnalysisSummary struct {
	ProjectType   advisor.Category `json:"project_type"`
	ServicesCount int              `json:"services_count"`
}

type iacResponse struct {
	ProjectID string             `json:"project_id"`
	Analysis  iacAnalysisSummary `json:"analysis"`
	Terraform reports.Bundle     `json:"terraform"`
	Metadata  responseMetadata   `json:"metadata"`
}

type narrativeResponse struct {
	ProjectID     string           `json:"project_id"`
	NarrativeHTML string           `json:"narrative_html"`
	Metadata      responseMetadata `json:"metadata"`
}

func bindAnalysisRequest(c *gin.Context) (AnalysisRequest, bool) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return AnalysisRequest{}, false
	}
	if err := req.Normalize(); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return AnalysisRequest{}, false
	}
	return req, true
}

func (h *Handler) analyze(c *gin.Context) {
	start := time.Now()
	req, ok := bindAnalysisRequest(c)
	if !ok {
		return
	}

	apiKey := middleware.APIKeyFromContext(c)
	record := h.Svc.Analyze(c.Request.Context(), apiKey, req)
	c.Set("projectId", record.ID)

	respond.OK(c, analyzeResponse{
		ProjectID: record.ID,
		Analysis: analysisSummary{
			ProjectType:      record.Result.Classification.Primary,
			Confidence:       record.Result.Classification.Confidence,
			DetectedFeatures: record.Result.Classification.Features,
		},
		Services:            record.Result.Services,
		CostAnalysis:        record.Result.CostSummary,
		ImplementationGuide: record.Result.Guide,
		Metadata:            metadataSince(start),
	})
}

func (h *Handler) iac(c *gin.Context) {
	start := time.Now()
	req, ok := bindAnalysisRequest(c)
	if !ok {
		return
	}

	apiKey := middleware.APIKeyFromContext(c)
	projectID, result, bundle := h.Svc.GenerateIaC(c.Request.Context(), apiKey, req)
	c.Set("projectId", projectID)

	respond.OK(c, iacResponse{
		ProjectID: projectID,
		Analysis: iacAnalysisSummary{
			ProjectType:   result.Classification.Primary,
			ServicesCount: len(result.Services),
		},
		Terraform: bundle,
		Metadata:  metadataSince(start),
	})
}

func (h *Handler) narrative(c *gin.Context) {
	start := time.Now()
	req, ok := bindAnalysisRequest(c)
	if !ok {
		return
	}

	apiKey := middleware.APIKeyFromContext(c)
	projectID, narrativeHTML := h.Svc.GenerateNarrative(c.Request.Context(), apiKey, req)
	c.Set("projectId", projectID)

	respond.OK(c, narrativeResponse{
		ProjectID:     projectID,
		NarrativeHTML: narrativeHTML,
		Metadata:      metadataSince(start),
	})
}

type recordSummary struct {
	ID            string    `json:"id"`
	ProjectType   string    `json:"project_type"`
	Confidence    float64   `json:"confidence"`
	ServicesCount int       `json:"services_count"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

type listResponse struct {
	Analyses []recordSummary `json:"analyses"`
	Count    int             `json:"count"`
}

func (h *Handler) list(c *gin.Context) {
	if middleware.IsAnonymous(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "API key required to view history", nil)
		return
	}

	apiKey := middleware.APIKeyFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	records, err := h.Svc.List(c.Request.Context(), apiKey, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	summaries := make([]recordSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, recordSummary{
			ID:            rec.ID,
			ProjectType:   rec.PrimaryType,
			Confidence:    rec.Confidence,
			ServicesCount: rec.ServicesCount,
			Description:   rec.Description,
			CreatedAt:     rec.CreatedAt,
		})
	}
	respond.OK(c, listResponse{Analyses: summaries, Count: len(summaries)})
}

func (h *Handler) get(c *gin.Context) {
	if middleware.IsAnonymous(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "API key required to view history", nil)
		return
	}

	recordID := c.Param("id")
	if recordID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id is required", nil)
		return
	}

	record, err := h.Svc.Get(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load analysis", nil)
		return
	}

	// Records are scoped to the key that created them.
	if record.APIKey != middleware.APIKeyFromContext(c) {
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		return
	}
	respond.OK(c, record)
}
