// Package services implements the core use cases: the pure scaling
// engine, the single-document editor facade, color-temperature variant
// construction and the multi-document library.
//
// Every scaling function is a pure transform: it takes a document,
// clones it, and returns a new structurally valid document. No
// function mutates its input, so a base document and its derived
// variants never share state.
package services
