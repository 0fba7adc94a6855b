package domain

// Document represents one parsed photometric file.
// It is the canonical representation after parsing.
type Document struct {
	// ID is assigned by the hosting library when the document is
	// stored in a collection. The core never interprets it.
	ID string

	// FileName is a display identifier, not interpreted by the core.
	FileName string

	// Metadata holds the descriptive keyword fields.
	Metadata Metadata

	// Photometric is the quantitative angle/intensity record.
	Photometric PhotometricData
}

// Clone returns a deep copy of the document. Every scaling operation
// works on a clone so a base document and its derived variants are
// never implicitly aliased.
func (d Document) Clone() Document {
	out := d
	out.Metadata = d.Metadata.Clone()
	out.Photometric = d.Photometric.Clone()
	return out
}
