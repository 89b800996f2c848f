package sqlite

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/satchel/pkg/types"
)

// Compile-time interface check: table must implement Table.
var _ types.Table = (*table)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// tableSpec describes one entity table: its non-id columns in DDL
// order, how to dehydrate an entity into column values, and how to
// hydrate a full row (id first) back into the concrete entity struct.
type tableSpec struct {
	name    string
	columns []string
	args    func(data any) ([]any, error)
	scan    func(rowScanner) (any, error)
}

// table implements types.Table for a single entity type. All entity
// tables share this implementation; the per-entity codecs live in the
// tableSpec.
type table struct {
	backend *Backend
	spec    tableSpec
}

func (t *table) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(t.spec.columns, ", "), t.spec.name)
}

// Get retrieves an entity by ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (t *table) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if !t.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	row := t.backend.db.QueryRow(t.selectSQL()+" WHERE id = ?", id)
	entity, err := t.spec.scan(row)
	if err != nil {
		if isNoRows(err) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting %s %s: %w", t.spec.name, id, err)
	}
	return entity, nil
}

// Add inserts a new entity. Returns ErrDuplicateID if the id is already
// present; the reconciler relies on Update/Add returning distinct
// errors to drive its upsert.
func (t *table) Add(id string, data any) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.attached {
		return types.ErrCupboardDetached
	}

	args, err := t.spec.args(data)
	if err != nil {
		return err
	}

	var exists int
	err = t.backend.db.QueryRow(
		fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", t.spec.name), id,
	).Scan(&exists)
	if err == nil {
		return types.ErrDuplicateID
	}
	if !isNoRows(err) {
		return fmt.Errorf("checking %s existence: %w", t.spec.name, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	insert := fmt.Sprintf(
		"INSERT INTO %s (id, %s) VALUES (?, %s)",
		t.spec.name, strings.Join(t.spec.columns, ", "), placeholders,
	)
	if _, err := t.backend.db.Exec(insert, append([]any{id}, args...)...); err != nil {
		return fmt.Errorf("inserting %s %s: %w", t.spec.name, id, err)
	}
	return nil
}

// Update replaces the entity stored under id.
// Returns ErrNotFound if no row exists.
func (t *table) Update(id string, data any) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.attached {
		return types.ErrCupboardDetached
	}

	args, err := t.spec.args(data)
	if err != nil {
		return err
	}

	sets := make([]string, len(t.spec.columns))
	for i, col := range t.spec.columns {
		sets[i] = col + " = ?"
	}
	update := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.spec.name, strings.Join(sets, ", "))
	res, err := t.backend.db.Exec(update, append(args, id)...)
	if err != nil {
		return fmt.Errorf("updating %s %s: %w", t.spec.name, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating %s %s: %w", t.spec.name, id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes an entity by ID. Returns ErrNotFound if no row exists.
func (t *table) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.attached {
		return types.ErrCupboardDetached
	}

	res, err := t.backend.db.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.spec.name), id,
	)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", t.spec.name, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", t.spec.name, id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// List returns every entity in the table, ordered by id for
// determinism.
func (t *table) List() ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if !t.backend.attached {
		return nil, types.ErrCupboardDetached
	}

	rows, err := t.backend.db.Query(t.selectSQL() + " ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.spec.name, err)
	}
	defer rows.Close()

	var entities []any
	for rows.Next() {
		entity, err := t.spec.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", t.spec.name, err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.spec.name, err)
	}
	return entities, nil
}

// Clear removes every row from the table.
func (t *table) Clear() error {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.attached {
		return types.ErrCupboardDetached
	}

	if _, err := t.backend.db.Exec("DELETE FROM " + t.spec.name); err != nil {
		return fmt.Errorf("clearing %s: %w", t.spec.name, err)
	}
	return nil
}
