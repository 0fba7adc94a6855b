package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/candela-labs/iesedit/internal/core/domain"
	"github.com/candela-labs/iesedit/internal/core/ports/driven"
	"github.com/candela-labs/iesedit/internal/core/ports/driving"
)

// Ensure Library implements the interface.
var _ driving.Library = (*Library)(nil)

// Library manages the host application's collection of loaded
// documents. The core exposes no registry of its own; identity and
// lifecycle of the collection live here, in the host layer.
type Library struct {
	codec   driven.Codec
	docs    driven.DocumentStore
	catalog driven.CatalogStore
}

// NewLibrary creates a library over the given codec and stores.
// The catalog store may be nil when persistence is not configured.
func NewLibrary(codec driven.Codec, docs driven.DocumentStore, catalog driven.CatalogStore) *Library {
	return &Library{
		codec:   codec,
		docs:    docs,
		catalog: catalog,
	}
}

// Load parses raw text and stores the document under a fresh ID.
func (l *Library) Load(ctx context.Context, text, fileName string) (*domain.Document, error) {
	doc, err := l.codec.Parse(text, fileName)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	doc.ID = uuid.New().String()
	if err := l.docs.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("storing %s: %w", fileName, err)
	}
	return doc, nil
}

// Get returns a stored document by ID.
func (l *Library) Get(ctx context.Context, id string) (*domain.Document, error) {
	return l.docs.Get(ctx, id)
}

// Documents returns all stored documents.
func (l *Library) Documents(ctx context.Context) ([]domain.Document, error) {
	return l.docs.List(ctx)
}

// Catalog persists summary rows for all stored documents.
func (l *Library) Catalog(ctx context.Context) error {
	if l.catalog == nil {
		return fmt.Errorf("%w: catalog store not configured", domain.ErrInvalidInput)
	}

	docs, err := l.docs.List(ctx)
	if err != nil {
		return err
	}

	for i := range docs {
		p := docs[i].Photometric
		efficacy := 0.0
		if v, err := Efficacy(p.TotalLumens, p.InputWatts); err == nil {
			efficacy = v
		}

		entry := &driven.CatalogEntry{
			ID:               docs[i].ID,
			FileName:         docs[i].FileName,
			Test:             docs[i].Metadata.Test.Value(),
			Manufacturer:     docs[i].Metadata.Manufacturer.Value(),
			TotalLumens:      p.TotalLumens,
			InputWatts:       p.InputWatts,
			Efficacy:         efficacy,
			VerticalAngles:   p.NumberOfVerticalAngles,
			HorizontalAngles: p.NumberOfHorizontalAngles,
		}
		if err := l.catalog.Add(ctx, entry); err != nil {
			return fmt.Errorf("cataloging %s: %w", docs[i].FileName, err)
		}
	}
	return nil
}
