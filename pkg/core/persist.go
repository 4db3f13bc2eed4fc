package core

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kielby/sqrel/internal/encoding"
)

// columnKind maps a declared field type to its persisted SQLite column kind.
func (t FieldType) columnKind() string {
	switch t {
	case TypeComposite:
		return "JSON"
	case TypeFloat:
		return "REAL"
	case TypeInteger:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

// fieldTypeOfColumn infers the semantic field type of a persisted column
// kind. Anything unrecognized is Text.
func fieldTypeOfColumn(kind string) FieldType {
	switch strings.ToUpper(kind) {
	case "JSON":
		return TypeComposite
	case "REAL":
		return TypeFloat
	case "INTEGER":
		return TypeInteger
	default:
		return TypeText
	}
}

// Save writes every table to the bound file path. Each persisted table is
// dropped and recreated from scratch: save is a full replace, never a merge.
// The connection lives only for the duration of the call.
func (d *Database) Save(ctx context.Context) error {
	if d.config.Path == "" {
		return wrapError("save", ErrNoPath)
	}
	return d.SaveTo(ctx, d.config.Path)
}

// SaveTo is Save against an explicit file path.
func (d *Database) SaveTo(ctx context.Context, path string) error {
	if path == "" {
		return wrapError("save", ErrNoPath)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return wrapError("save", fmt.Errorf("failed to open database: %w", err))
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return wrapError("save", fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range d.order {
		t := d.tables[name]
		if err := saveTable(ctx, tx, t); err != nil {
			return wrapError("save", err)
		}
		d.logger.Debug("table saved", "table", name, "rows", t.Len())
	}

	if err := tx.Commit(); err != nil {
		return wrapError("save", fmt.Errorf("failed to commit: %w", err))
	}

	d.logger.Info("database saved", "path", path, "tables", len(d.order))
	return nil
}

// saveTable recreates one persisted table and inserts every row. Values are
// decoded then re-encoded on the way out, which normalizes composites to
// canonical JSON text; scalars pass through unchanged. Values are always
// bound, never interpolated.
func saveTable(ctx context.Context, tx *sql.Tx, t *Table) error {
	defs := make([]string, len(t.fields))
	for i, f := range t.fields {
		defs[i] = fmt.Sprintf("%q %s", f.Name, f.Type.columnKind())
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %q", t.name)); err != nil {
		return fmt.Errorf("failed to drop table %q: %w", t.name, err)
	}
	create := fmt.Sprintf("CREATE TABLE %q (%s)", t.name, strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create table %q: %w", t.name, err)
	}

	for _, r := range t.rows {
		// Rows may carry fewer fields than the schema after an AddField
		// without backfill; each row inserts the columns it actually has.
		cols := make([]string, 0, len(r.values))
		marks := make([]string, 0, len(r.values))
		args := make([]any, 0, len(r.values))
		for name, v := range r.values {
			cols = append(cols, fmt.Sprintf("%q", name))
			marks = append(marks, "?")
			args = append(args, encoding.Encode(encoding.Decode(v)))
		}
		insert := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
			t.name, strings.Join(cols, ", "), strings.Join(marks, ", "))
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			return fmt.Errorf("failed to insert into %q: %w", t.name, err)
		}
	}
	return nil
}

// Load reconstructs tables and rows from the bound file path, inferring each
// table's schema from the persisted column kinds. Loading a table whose name
// is already taken fails with ErrTableExists; tables reconstructed before the
// failure stay registered, there is no rollback.
func (d *Database) Load(ctx context.Context) error {
	if d.config.Path == "" {
		return wrapError("load", ErrNoPath)
	}
	return d.LoadFrom(ctx, d.config.Path)
}

// LoadFrom is Load against an explicit file path.
func (d *Database) LoadFrom(ctx context.Context, path string) error {
	if path == "" {
		return wrapError("load", ErrNoPath)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return wrapError("load", fmt.Errorf("failed to open database: %w", err))
	}
	defer func() { _ = db.Close() }()

	names, err := persistedTables(ctx, db)
	if err != nil {
		return wrapError("load", err)
	}

	for _, name := range names {
		if err := d.loadTable(ctx, db, name); err != nil {
			return wrapError("load", err)
		}
	}

	d.logger.Info("database loaded", "path", path, "tables", len(names))
	return nil
}

// persistedTables lists user tables from the catalog, skipping the engine's
// own sqlite_* bookkeeping tables.
func persistedTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		if strings.HasPrefix(name, "sqlite_") {
			continue
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

type column struct {
	name string
	kind string
}

// tableColumns reads column metadata in declaration order.
func tableColumns(ctx context.Context, db *sql.DB, table string) ([]column, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %q: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []column
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, kind       string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &kind, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column of %q: %w", table, err)
		}
		cols = append(cols, column{name: name, kind: kind})
	}
	return cols, rows.Err()
}

// loadTable reconstructs one table: infer the schema, register it, then feed
// every persisted tuple through the codec and the normal AddRow validation.
func (d *Database) loadTable(ctx context.Context, db *sql.DB, name string) error {
	cols, err := tableColumns(ctx, db, name)
	if err != nil {
		return err
	}

	fields := make([]Field, len(cols))
	for i, c := range cols {
		fields[i] = Field{Name: c.name, Type: fieldTypeOfColumn(c.kind)}
	}

	t, err := d.Create(name, fields)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %q", name))
	if err != nil {
		return fmt.Errorf("failed to read rows of %q: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("failed to scan row of %q: %w", name, err)
		}

		values := make(map[string]any, len(cols))
		for i, c := range cols {
			values[c.name] = encoding.Decode(normalize(vals[i]))
		}
		if err := t.AddRow(values); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed reading rows of %q: %w", name, err)
	}

	d.logger.Debug("table loaded", "table", name, "rows", t.Len())
	return nil
}

// normalize converts driver byte slices to strings so text values decode
// uniformly regardless of how the driver surfaces them.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
