// Package sqlite persists the document catalog in a local SQLite
// database via database/sql and the modernc.org/sqlite driver.
package sqlite
