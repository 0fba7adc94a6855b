package driven

import "github.com/candela-labs/iesedit/internal/core/domain"

// Codec converts between raw photometric file text and the typed
// document model. Parsing either succeeds completely or fails
// atomically; no partial document is ever returned.
type Codec interface {
	// Parse converts raw text into a typed document. It fails with
	// domain.ErrFormat when a mandatory structural line is missing or
	// non-numeric, and with domain.ErrArity when declared counts
	// disagree with actual content.
	Parse(text, fileName string) (*domain.Document, error)

	// Generate serializes a document back to text with the exact
	// keyword order and numeric formatting the format requires.
	// Structurally invalid input is a precondition violation.
	Generate(doc *domain.Document) string
}
