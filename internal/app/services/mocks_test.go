package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/studyportal/backend/internal/app/models"
)

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// mockUserRepo is an in-memory IUserRepository for service tests.
type mockUserRepo struct {
	users     map[string]*models.User
	nextID    int64
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*models.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := m.users[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// mockBatchRepo is an in-memory IBatchRepository.
type mockBatchRepo struct {
	batches []models.Batch
	nextID  int64
	err     error
}

func (m *mockBatchRepo) Create(_ context.Context, batch *models.Batch) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	batch.ID = m.nextID
	m.batches = append(m.batches, *batch)
	return nil
}

func (m *mockBatchRepo) GetByDepartment(_ context.Context, department string) ([]models.Batch, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Batch
	for _, b := range m.batches {
		if b.Department == department {
			out = append(out, b)
		}
	}
	return out, nil
}

// mockSubjectRepo is an in-memory ISubjectRepository that records the name
// passed to UpdateName.
type mockSubjectRepo struct {
	subjects    map[int64]*models.Subject
	nextID      int64
	updateCalls []string
	err         error
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: map[int64]*models.Subject{}}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *models.Subject) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	subject.ID = m.nextID
	stored := *subject
	m.subjects[subject.ID] = &stored
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	if m.err != nil {
		return nil, m.err
	}
	if s, ok := m.subjects[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (m *mockSubjectRepo) GetByFilter(_ context.Context, batchID int64, degree, year, semester string) ([]models.Subject, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Subject
	for i := int64(1); i <= m.nextID; i++ {
		s, ok := m.subjects[i]
		if !ok {
			continue
		}
		if s.BatchID == batchID && s.Degree == degree && s.Year == year && s.Semester == semester {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSubjectRepo) UpdateName(_ context.Context, id int64, name string) error {
	if m.err != nil {
		return m.err
	}
	m.updateCalls = append(m.updateCalls, name)
	if s, ok := m.subjects[id]; ok {
		s.Name = name
	}
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.subjects, id)
	return nil
}

// mockMaterialRepo is an in-memory IMaterialRepository.
type mockMaterialRepo struct {
	materials map[int64]*models.Material
	nextID    int64
	createErr error
	deleteErr error
}

func newMockMaterialRepo() *mockMaterialRepo {
	return &mockMaterialRepo{materials: map[int64]*models.Material{}}
}

func (m *mockMaterialRepo) Create(_ context.Context, material *models.Material) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	material.ID = m.nextID
	stored := *material
	m.materials[material.ID] = &stored
	return nil
}

func (m *mockMaterialRepo) GetByID(_ context.Context, id int64) (*models.Material, error) {
	if mat, ok := m.materials[id]; ok {
		copied := *mat
		return &copied, nil
	}
	return nil, nil
}

func (m *mockMaterialRepo) GetBySubjectID(_ context.Context, subjectID int64) ([]models.Material, error) {
	var out []models.Material
	for i := int64(1); i <= m.nextID; i++ {
		mat, ok := m.materials[i]
		if !ok {
			continue
		}
		if mat.SubjectID == subjectID {
			out = append(out, *mat)
		}
	}
	return out, nil
}

func (m *mockMaterialRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.materials, id)
	return nil
}

// mockStorage records saved and deleted keys without touching the disk.
type mockStorage struct {
	saved     []string
	deleted   []string
	saveErr   error
	deleteErr error
}

func (m *mockStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	key := fmt.Sprintf("key-%d", len(m.saved)+1)
	m.saved = append(m.saved, key)
	return key, nil
}

func (m *mockStorage) DeleteFile(key string) error {
	m.deleted = append(m.deleted, key)
	return m.deleteErr
}

func (m *mockStorage) FullPath(key string) string {
	return "/storage/" + key
}
