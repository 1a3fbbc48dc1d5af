package repository

import (
	"context"
	"sync"

	"resume-builder/internal/domain"
)

// MemoryResumesRepo is the in-memory ResumesRepo used by tests and local
// development without Postgres.
type MemoryResumesRepo struct {
	mu      sync.Mutex
	records map[string]*domain.ResumeRecord
}

func NewMemoryResumesRepo() *MemoryResumesRepo {
	return &MemoryResumesRepo{records: map[string]*domain.ResumeRecord{}}
}

func (m *MemoryResumesRepo) Insert(ctx context.Context, r *domain.ResumeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r.DocumentID] = r.Clone()
	return nil
}

func (m *MemoryResumesRepo) ListByOwner(ctx context.Context, userEmail string) ([]*domain.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.ResumeRecord
	for _, r := range m.records {
		if r.UserEmail == userEmail {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

func (m *MemoryResumesRepo) GetByDocumentID(ctx context.Context, documentID string) (*domain.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[documentID]
	if !ok {
		return nil, ErrNotFound
	}
	return r.Clone(), nil
}

func (m *MemoryResumesRepo) Update(ctx context.Context, r *domain.ResumeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.DocumentID]; !ok {
		return ErrNotFound
	}
	m.records[r.DocumentID] = r.Clone()
	return nil
}

func (m *MemoryResumesRepo) DeleteByDocumentID(ctx context.Context, documentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, documentID)
	return nil
}
