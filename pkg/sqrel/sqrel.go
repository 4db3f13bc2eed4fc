// Package sqrel provides an embeddable, schema-typed, in-memory relational
// store with optional persistence to a single SQLite file.
package sqrel

import (
	"context"

	"github.com/kielby/sqrel/pkg/core"
)

// DB is a relational store instance bound to an optional SQLite file.
type DB struct {
	core *core.Database
}

// Option is a functional option for configuring the DB.
type Option func(*core.Config)

// WithLogger configures the DB with a structured logger. The default is
// silent.
func WithLogger(l core.Logger) Option {
	return func(c *core.Config) {
		c.Logger = l
	}
}

// Open creates an empty store bound to the given SQLite file path. Nothing is
// read from disk until Load is called; an empty path makes the store
// memory-only.
func Open(path string, opts ...Option) *DB {
	config := core.DefaultConfig(path)
	for _, opt := range opts {
		opt(&config)
	}
	return &DB{core: core.NewWithConfig(config)}
}

// Core returns the underlying engine for direct access.
func (db *DB) Core() *core.Database {
	return db.core
}

// Create makes a new table with the given schema and returns it.
func (db *DB) Create(name string, fields []core.Field) (*core.Table, error) {
	return db.core.Create(name, fields)
}

// Get returns the named table.
func (db *DB) Get(name string) (*core.Table, error) {
	return db.core.Get(name)
}

// Delete removes the named table.
func (db *DB) Delete(name string) error {
	return db.core.Delete(name)
}

// Tables returns the table names in creation order.
func (db *DB) Tables() []string {
	return db.core.Tables()
}

// Save writes every table to the bound file, replacing its prior contents.
func (db *DB) Save(ctx context.Context) error {
	return db.core.Save(ctx)
}

// Load reconstructs tables and rows from the bound file.
func (db *DB) Load(ctx context.Context) error {
	return db.core.Load(ctx)
}
