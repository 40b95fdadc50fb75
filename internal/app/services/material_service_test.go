package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/studyportal/backend/internal/app/models"
	"github.com/studyportal/backend/internal/pkg/apperrors"
)

func testFileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("content")); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}

	return req.MultipartForm.File["file"][0]
}

func TestUploadMaterial(t *testing.T) {
	materialRepo := newMockMaterialRepo()
	storage := &mockStorage{}
	svc := NewMaterialService(materialRepo, newMockSubjectRepo(), storage, nopLogger())

	material, err := svc.UploadMaterial(context.Background(), 5, "Lecture Notes", testFileHeader(t, "week1.pdf"))
	if err != nil {
		t.Fatalf("UploadMaterial returned error: %v", err)
	}

	if material.ID == 0 {
		t.Error("expected assigned material id")
	}
	if material.SubjectID != 5 || material.Title != "Lecture Notes" {
		t.Errorf("unexpected material: %+v", material)
	}
	if material.FileName != "week1.pdf" {
		t.Errorf("expected original filename kept as metadata, got %q", material.FileName)
	}
	if len(storage.saved) != 1 || material.FilePath != storage.saved[0] {
		t.Errorf("expected storage key %v recorded on the row, got %q", storage.saved, material.FilePath)
	}
}

func TestUploadMaterialInsertFailureCleansUpFile(t *testing.T) {
	materialRepo := newMockMaterialRepo()
	materialRepo.createErr = errors.New("insert failed")
	storage := &mockStorage{}
	svc := NewMaterialService(materialRepo, newMockSubjectRepo(), storage, nopLogger())

	if _, err := svc.UploadMaterial(context.Background(), 5, "Notes", testFileHeader(t, "x.pdf")); err == nil {
		t.Fatal("expected error from failed insert")
	}

	if len(storage.saved) != 1 {
		t.Fatalf("expected one saved file, got %d", len(storage.saved))
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != storage.saved[0] {
		t.Errorf("expected saved file cleaned up, deleted: %v", storage.deleted)
	}
}

func TestDeleteMaterial(t *testing.T) {
	materialRepo := newMockMaterialRepo()
	storage := &mockStorage{}
	svc := NewMaterialService(materialRepo, newMockSubjectRepo(), storage, nopLogger())

	material := &models.Material{SubjectID: 1, Title: "Notes", FilePath: "k1", FileName: "notes.pdf"}
	if err := materialRepo.Create(context.Background(), material); err != nil {
		t.Fatalf("material create returned error: %v", err)
	}

	if err := svc.DeleteMaterial(context.Background(), material.ID); err != nil {
		t.Fatalf("DeleteMaterial returned error: %v", err)
	}

	if got, _ := materialRepo.GetByID(context.Background(), material.ID); got != nil {
		t.Error("material row still present after delete")
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "k1" {
		t.Errorf("expected file k1 deleted, got %v", storage.deleted)
	}
}

func TestDeleteMaterialMissingIsNoop(t *testing.T) {
	storage := &mockStorage{}
	svc := NewMaterialService(newMockMaterialRepo(), newMockSubjectRepo(), storage, nopLogger())

	if err := svc.DeleteMaterial(context.Background(), 99); err != nil {
		t.Fatalf("expected nil error for missing material, got %v", err)
	}
	if len(storage.deleted) != 0 {
		t.Errorf("no file should be touched for a missing material, got %v", storage.deleted)
	}
}

func TestDeleteMaterialSwallowsFileError(t *testing.T) {
	materialRepo := newMockMaterialRepo()
	storage := &mockStorage{deleteErr: errors.New("disk gone")}
	svc := NewMaterialService(materialRepo, newMockSubjectRepo(), storage, nopLogger())

	material := &models.Material{SubjectID: 1, Title: "Notes", FilePath: "k1"}
	if err := materialRepo.Create(context.Background(), material); err != nil {
		t.Fatalf("material create returned error: %v", err)
	}

	// The row delete wins; the orphaned file is only logged
	if err := svc.DeleteMaterial(context.Background(), material.ID); err != nil {
		t.Fatalf("expected nil error despite file removal failure, got %v", err)
	}
	if got, _ := materialRepo.GetByID(context.Background(), material.ID); got != nil {
		t.Error("material row still present after delete")
	}
}

func TestDeleteMaterialRowFailureKeepsFile(t *testing.T) {
	materialRepo := newMockMaterialRepo()
	materialRepo.deleteErr = errors.New("db down")
	storage := &mockStorage{}
	svc := NewMaterialService(materialRepo, newMockSubjectRepo(), storage, nopLogger())

	material := &models.Material{SubjectID: 1, Title: "Notes", FilePath: "k1"}
	if err := materialRepo.Create(context.Background(), material); err != nil {
		t.Fatalf("material create returned error: %v", err)
	}

	if err := svc.DeleteMaterial(context.Background(), material.ID); err == nil {
		t.Fatal("expected error from failed row delete")
	}
	if len(storage.deleted) != 0 {
		t.Errorf("file must not be removed when the row delete fails, got %v", storage.deleted)
	}
}

func TestListForSubjectMissingSubject(t *testing.T) {
	materialRepo := newMockMaterialRepo()
	svc := NewMaterialService(materialRepo, newMockSubjectRepo(), &mockStorage{}, nopLogger())

	if err := materialRepo.Create(context.Background(), &models.Material{SubjectID: 7, Title: "Orphan", FilePath: "k1"}); err != nil {
		t.Fatalf("material create returned error: %v", err)
	}

	subject, materials, err := svc.ListForSubject(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListForSubject returned error: %v", err)
	}
	if subject != nil {
		t.Errorf("expected nil subject, got %+v", subject)
	}
	if len(materials) != 1 || materials[0].Title != "Orphan" {
		t.Errorf("expected orphaned material listed, got %+v", materials)
	}
}

func TestGetMaterialNotFound(t *testing.T) {
	svc := NewMaterialService(newMockMaterialRepo(), newMockSubjectRepo(), &mockStorage{}, nopLogger())

	if _, err := svc.GetMaterial(context.Background(), 404); !errors.Is(err, apperrors.ErrMaterialNotFound) {
		t.Errorf("expected ErrMaterialNotFound, got %v", err)
	}
}
