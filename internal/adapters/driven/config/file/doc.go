// Package file provides the TOML-backed configuration store for the
// iesedit host: default target units, the catalog database path and
// the default wattage-adjustment policy.
package file
