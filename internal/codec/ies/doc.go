// Package ies reads and writes LM-63 style photometric files.
//
// The codec is lossless: unrecognized [KEYWORD] lines pass through the
// typed model opaquely, and output uses the exact keyword order and
// numeric formatting reference tooling expects (values truncated, not
// rounded, at the third decimal).
package ies
