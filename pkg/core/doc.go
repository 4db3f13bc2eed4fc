// Package core implements the typed in-memory relational engine behind sqrel.
//
// It provides schema-typed tables (ordered Field lists over a closed set of
// field kinds), rows validated against their table's schema on insert, and
// predicate-based scans, all held in process memory. A Database is the
// catalog owning the tables and, when bound to a file path, can synchronize
// with a single-file SQLite database: Save rewrites the file from scratch and
// Load reconstructs tables and rows from it, inferring field kinds from the
// persisted column types.
//
// # Key Components
//
//   - Database: the table catalog and the Save/Load entry points.
//   - Table: an ordered schema plus its row collection; enforces the schema
//     atomically on AddRow.
//   - Row: one record's encoded values; composite values are held as
//     canonical JSON text and decoded on read.
//   - FieldType: the closed kind vocabulary (Integer, Float, Text, Composite).
//
// The engine provides no internal synchronization: a Database and everything
// it owns belong to one logical caller at a time. Embedders in concurrent
// environments must serialize access externally.
//
// Structured logging is pluggable through the Logger interface; the default
// is silent.
package core
