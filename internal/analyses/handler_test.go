package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"counsellor-backend/internal/shared/server/middleware"
)

func setupAdvisoryRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	svc := NewService(repo, nil, false)

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.APIKeyAuth(middleware.APIKeyAuthConfig{
		ValidKeys:      []string{"demo-key-12345", "other-key-67890"},
		AllowAnonymous: true,
	}))
	NewHandler(svc).RegisterRoutes(api)
	return r, repo
}

func postJSON(t *testing.T, r *gin.Engine, path, apiKey string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func analyzePayload() map[string]any {
	return map[string]any{
		"description":     "An online store with product cart and checkout payment flow",
		"estimated_users": 5000,
		"budget":          "medium",
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	r, repo := setupAdvisoryRouter(t)

	resp := postJSON(t, r, "/api/analyze", "demo-key-12345", analyzePayload())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		ProjectID string `json:"project_id"`
		Analysis  struct {
			ProjectType      string   `json:"project_type"`
			Confidence       float64  `json:"confidence"`
			DetectedFeatures []string `json:"detected_features"`
		} `json:"analysis"`
		Services     []map[string]any `json:"services"`
		CostAnalysis map[string]any   `json:"cost_analysis"`
		Metadata     struct {
			Timestamp string `json:"timestamp"`
		} `json:"metadata"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !strings.HasPrefix(body.ProjectID, "proj_") {
		t.Fatalf("project_id = %q, want proj_ prefix", body.ProjectID)
	}
	if body.Analysis.ProjectType != "ecommerce" {
		t.Fatalf("project_type = %q", body.Analysis.ProjectType)
	}
	if body.Analysis.Confidence <= 0 {
		t.Fatalf("confidence = %v", body.Analysis.Confidence)
	}
	if len(body.Services) == 0 {
		t.Fatal("expected recommended services")
	}
	if body.Metadata.Timestamp == "" {
		t.Fatal("expected metadata timestamp")
	}

	// The record lands in the repository under the caller's key.
	records, err := repo.ListByKey(context.Background(), "demo-key-12345", 10, 0)
	if err != nil {
		t.Fatalf("ListByKey: %v", err)
	}
	if len(records) != 1 || records[0].ID != body.ProjectID {
		t.Fatalf("stored records = %+v", records)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	r, _ := setupAdvisoryRouter(t)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"short description", map[string]any{"description": "too short", "estimated_users": 100, "budget": "low"}},
		{"missing budget", map[string]any{"description": "A valid project description here", "estimated_users": 100}},
		{"zero users", map[string]any{"description": "A valid project description here", "estimated_users": 0, "budget": "low"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, r, "/api/analyze", "demo-key-12345", tc.payload)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Error.Code != "validation_error" {
				t.Fatalf("error code = %q", body.Error.Code)
			}
		})
	}
}

func TestIaCEndpoint(t *testing.T) {
	r, _ := setupAdvisoryRouter(t)

	resp := postJSON(t, r, "/api/iac", "demo-key-12345", analyzePayload())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		ProjectID string `json:"project_id"`
		Analysis  struct {
			ProjectType   string `json:"project_type"`
			ServicesCount int    `json:"services_count"`
		} `json:"analysis"`
		Terraform struct {
			Format string            `json:"format"`
			Files  map[string]string `json:"files"`
		} `json:"terraform"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !strings.HasPrefix(body.ProjectID, "iac_") {
		t.Fatalf("project_id = %q, want iac_ prefix", body.ProjectID)
	}
	if body.Terraform.Format != "terraform" {
		t.Fatalf("format = %q", body.Terraform.Format)
	}
	for _, name := range []string{"main.tf", "variables.tf", "outputs.tf", "README.md"} {
		if _, ok := body.Terraform.Files[name]; !ok {
			t.Fatalf("missing terraform file %q", name)
		}
	}
	if body.Analysis.ServicesCount == 0 {
		t.Fatal("expected services_count > 0")
	}
}

func TestNarrativeEndpoint(t *testing.T) {
	r, _ := setupAdvisoryRouter(t)

	resp := postJSON(t, r, "/api/narrative", "demo-key-12345", analyzePayload())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		ProjectID     string `json:"project_id"`
		NarrativeHTML string `json:"narrative_html"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(body.ProjectID, "narrative_") {
		t.Fatalf("project_id = %q, want narrative_ prefix", body.ProjectID)
	}
	if !strings.Contains(body.NarrativeHTML, "Executive Summary") {
		t.Fatal("narrative missing executive summary section")
	}
}

func TestListRequiresAPIKey(t *testing.T) {
	r, _ := setupAdvisoryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous list, got %d", resp.Code)
	}
}

func TestListAndGetRoundTrip(t *testing.T) {
	r, _ := setupAdvisoryRouter(t)

	resp := postJSON(t, r, "/api/analyze", "demo-key-12345", analyzePayload())
	if resp.Code != http.StatusOK {
		t.Fatalf("analyze failed: %d", resp.Code)
	}
	var created struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/analyses", nil)
	req.Header.Set("X-API-Key", "demo-key-12345")
	listResp := httptest.NewRecorder()
	r.ServeHTTP(listResp, req)
	if listResp.Code != http.StatusOK {
		t.Fatalf("list failed: %d", listResp.Code)
	}
	var listed struct {
		Analyses []struct {
			ID          string `json:"id"`
			ProjectType string `json:"project_type"`
		} `json:"analyses"`
		Count int `json:"count"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if listed.Count != 1 || listed.Analyses[0].ID != created.ProjectID {
		t.Fatalf("list = %+v", listed)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/analyses/"+created.ProjectID, nil)
	req.Header.Set("X-API-Key", "demo-key-12345")
	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, req)
	if getResp.Code != http.StatusOK {
		t.Fatalf("get failed: %d", getResp.Code)
	}
	var record Record
	if err := json.NewDecoder(getResp.Body).Decode(&record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.ID != created.ProjectID || record.PrimaryType != "ecommerce" {
		t.Fatalf("record = %+v", record)
	}
}

func TestGetScopedToOwnKey(t *testing.T) {
	r, _ := setupAdvisoryRouter(t)

	resp := postJSON(t, r, "/api/analyze", "demo-key-12345", analyzePayload())
	if resp.Code != http.StatusOK {
		t.Fatalf("analyze failed: %d", resp.Code)
	}
	var created struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/"+created.ProjectID, nil)
	req.Header.Set("X-API-Key", "other-key-67890")
	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, req)
	if getResp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign key, got %d", getResp.Code)
	}
}
