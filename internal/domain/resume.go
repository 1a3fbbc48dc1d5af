package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResumeRecord is the persisted resume row. DocumentID is the public,
// store-assigned identifier clients address records by; ID is internal.
// Fields holds the resume document's top-level fields as stored (JSONB).
type ResumeRecord struct {
	ID         uuid.UUID              `json:"id"`
	DocumentID string                 `json:"documentId"`
	UserEmail  string                 `json:"userEmail"`
	UserName   string                 `json:"userName"`
	Title      string                 `json:"title"`
	Fields     map[string]interface{} `json:"fields"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// listFields are the document keys that must always be arrays, never null.
var listFields = []string{"experience", "education", "skills", "projects", "sections"}

// ApplyPatch merges a partial update: only the keys present are touched,
// and list values replace the stored list wholesale. A "title" key updates
// the record title.
func (r *ResumeRecord) ApplyPatch(patch map[string]interface{}) {
	if r.Fields == nil {
		r.Fields = map[string]interface{}{}
	}
	for k, v := range patch {
		if k == "title" {
			if s, ok := v.(string); ok {
				r.Title = s
			}
			continue
		}
		r.Fields[k] = v
	}
	r.UpdatedAt = time.Now().UTC()
}

// Document returns the full resume document for validation and responses,
// with the never-null-lists invariant applied.
func (r *ResumeRecord) Document() map[string]interface{} {
	doc := map[string]interface{}{"title": r.Title}
	for k, v := range r.Fields {
		doc[k] = v
	}
	for _, k := range listFields {
		if v, ok := doc[k]; !ok || v == nil {
			doc[k] = []interface{}{}
		}
	}
	return doc
}

// Clone returns a copy safe to hand out from an in-memory repository.
func (r *ResumeRecord) Clone() *ResumeRecord {
	cp := *r
	cp.Fields = make(map[string]interface{}, len(r.Fields))
	for k, v := range r.Fields {
		cp.Fields[k] = v
	}
	return &cp
}
