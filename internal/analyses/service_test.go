package analyses

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	localstore "counsellor-backend/internal/shared/storage/object/local"
)

func TestServiceAnalyzePersistsRecord(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, nil, false)

	req := validRequest()
	if err := req.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	record := svc.Analyze(context.Background(), "demo-key-12345", req)

	if !strings.HasPrefix(record.ID, "proj_") {
		t.Errorf("record ID = %q, want proj_ prefix", record.ID)
	}
	if record.PrimaryType != "ecommerce" {
		t.Errorf("primary type = %q, want ecommerce", record.PrimaryType)
	}
	if record.ServicesCount != len(record.Result.Services) {
		t.Errorf("services count %d does not match result", record.ServicesCount)
	}

	stored, err := repo.GetByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.APIKey != "demo-key-12345" {
		t.Errorf("stored api key = %q", stored.APIKey)
	}
}

func TestServiceGenerateIaC(t *testing.T) {
	svc := NewService(NewMemoryRepo(), nil, false)

	req := validRequest()
	if err := req.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	projectID, result, bundle := svc.GenerateIaC(context.Background(), "demo-key-12345", req)

	if !strings.HasPrefix(projectID, "iac_") {
		t.Errorf("project ID = %q, want iac_ prefix", projectID)
	}
	if result.Classification.Primary != "ecommerce" {
		t.Errorf("primary = %s", result.Classification.Primary)
	}
	if len(bundle.Files) != 4 {
		t.Errorf("bundle files = %d, want 4", len(bundle.Files))
	}
}

func TestServiceArchivesReports(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(NewMemoryRepo(), localstore.New(dir), true)

	req := validRequest()
	if err := req.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	projectID, narrativeHTML := svc.GenerateNarrative(context.Background(), "demo-key-12345", req)
	if !strings.HasPrefix(projectID, "narrative_") {
		t.Errorf("project ID = %q, want narrative_ prefix", projectID)
	}
	if narrativeHTML == "" {
		t.Fatal("empty narrative")
	}

	var archived []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			archived = append(archived, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(archived) != 1 || !strings.HasSuffix(archived[0], ".html") {
		t.Errorf("archived files = %v, want one .html report", archived)
	}
}

func TestServiceArchiveDisabled(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(NewMemoryRepo(), localstore.New(dir), false)

	req := validRequest()
	if err := req.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	svc.GenerateNarrative(context.Background(), "demo-key-12345", req)

	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if len(files) != 0 {
		t.Errorf("archived files written with archival disabled: %v", files)
	}
}
