package core

import (
	"fmt"
)

// Config holds database configuration.
type Config struct {
	// Path is the SQLite file Save and Load synchronize with. Empty means
	// the database is memory-only until SaveTo/LoadFrom are given a path.
	Path string
	// Logger receives structured progress messages. Nil means silent.
	Logger Logger
}

// DefaultConfig returns the default configuration for the given file path.
func DefaultConfig(path string) Config {
	return Config{Path: path, Logger: NopLogger()}
}

// Database is the catalog of tables. It is owned by exactly one logical
// caller; no internal synchronization is provided.
type Database struct {
	config Config
	tables map[string]*Table
	// order preserves creation order so listing and save iterate stably
	order  []string
	logger Logger
}

// New creates an empty database bound to the given file path. An empty path
// is allowed; Save/Load then fail with ErrNoPath until a path is supplied.
func New(path string) *Database {
	return NewWithConfig(DefaultConfig(path))
}

// NewWithConfig creates an empty database with the given configuration.
func NewWithConfig(config Config) *Database {
	logger := config.Logger
	if logger == nil {
		logger = NopLogger()
	}
	return &Database{
		config: config,
		tables: make(map[string]*Table),
		logger: logger,
	}
}

// Path returns the bound file path, which may be empty.
func (d *Database) Path() string {
	return d.config.Path
}

// Create makes a new table with the given schema, registers it under name
// and returns it. It fails with ErrTableExists if the name is taken; a
// schema error (empty or duplicate field name) leaves the database unchanged.
func (d *Database) Create(name string, fields []Field) (*Table, error) {
	if name == "" {
		return nil, wrapError("create", ErrEmptyName)
	}
	if _, ok := d.tables[name]; ok {
		return nil, wrapError("create", fmt.Errorf("%w: %q", ErrTableExists, name))
	}

	t := NewTable(name)
	if err := t.AddFields(fields); err != nil {
		return nil, err
	}

	d.tables[name] = t
	d.order = append(d.order, name)
	d.logger.Debug("table created", "table", name, "fields", len(fields))
	return t, nil
}

// Get returns the named table or fails with ErrTableNotFound.
func (d *Database) Get(name string) (*Table, error) {
	t, ok := d.tables[name]
	if !ok {
		return nil, wrapError("get", fmt.Errorf("%w: %q", ErrTableNotFound, name))
	}
	return t, nil
}

// Delete removes the named table and every row it owns. It fails with
// ErrTableNotFound if the name is absent.
func (d *Database) Delete(name string) error {
	if _, ok := d.tables[name]; !ok {
		return wrapError("delete", fmt.Errorf("%w: %q", ErrTableNotFound, name))
	}
	delete(d.tables, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	d.logger.Debug("table deleted", "table", name)
	return nil
}

// Tables returns the table names in creation order.
func (d *Database) Tables() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}
