package driven

import (
	"context"

	"github.com/candela-labs/iesedit/internal/core/domain"
)

// DocumentStore holds the host application's collection of loaded
// documents. The core itself keeps no registry; identity and lifecycle
// of a collection belong to the host.
type DocumentStore interface {
	// Save stores or updates a document under its ID.
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document.
	Delete(ctx context.Context, id string) error
}
