package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"counsellor-backend/internal/advisor"
)

func sampleRecord() Record {
	result := advisor.Run("An online store with product cart and checkout payment flow", 5000)
	return Record{
		ID:            "proj_test-1",
		APIKey:        "demo-key-12345",
		Description:   "An online store with product cart and checkout payment flow",
		PrimaryType:   string(result.Classification.Primary),
		Confidence:    result.Classification.Confidence,
		ServicesCount: len(result.Services),
		Result:        result,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	record := sampleRecord()

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			record.ID,
			record.APIKey,
			record.Description,
			record.PrimaryType,
			record.Confidence,
			record.ServicesCount,
			sqlmock.AnyArg(), // result payload
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	record := sampleRecord()
	payload, err := json.Marshal(record.Result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	rows := sqlmock.NewRows([]string{
		"id", "api_key", "description", "primary_type", "confidence", "services_count", "result", "created_at",
	}).AddRow(
		record.ID, record.APIKey, record.Description, record.PrimaryType,
		record.Confidence, record.ServicesCount, string(payload), record.CreatedAt,
	)
	mock.ExpectQuery("SELECT id, api_key, description").
		WithArgs(record.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != record.ID || got.APIKey != record.APIKey {
		t.Errorf("got %+v", got)
	}
	if got.Result.Classification.Primary != record.Result.Classification.Primary {
		t.Errorf("result blob not round-tripped: %+v", got.Result.Classification)
	}
	if len(got.Result.Services) != record.ServicesCount {
		t.Errorf("services count = %d, want %d", len(got.Result.Services), record.ServicesCount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, api_key, description").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "api_key", "description", "primary_type", "confidence", "services_count", "result", "created_at",
		}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoListByKeyClampsPaging(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	// limit 0 defaults to 20, negative offset clamps to 0.
	mock.ExpectQuery("SELECT id, api_key, description").
		WithArgs("demo-key-12345", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "api_key", "description", "primary_type", "confidence", "services_count", "result", "created_at",
		}))

	if _, err := repo.ListByKey(context.Background(), "demo-key-12345", 0, -5); err != nil {
		t.Fatalf("ListByKey: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
