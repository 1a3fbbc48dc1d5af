package repository

import (
	"context"
	"errors"

	"resume-builder/internal/domain"
)

// ErrNotFound reports a document id with no stored record.
var ErrNotFound = errors.New("resume not found")

// ResumesRepo stores resume records addressed by their public document id.
type ResumesRepo interface {
	Insert(ctx context.Context, r *domain.ResumeRecord) error
	ListByOwner(ctx context.Context, userEmail string) ([]*domain.ResumeRecord, error)
	GetByDocumentID(ctx context.Context, documentID string) (*domain.ResumeRecord, error)
	Update(ctx context.Context, r *domain.ResumeRecord) error
	// DeleteByDocumentID succeeds whether or not the record existed.
	DeleteByDocumentID(ctx context.Context, documentID string) error
}
