// Package store is a generic record store over delimited text files: one
// file per record type, a header row, then one row per record. Every
// mutation reads the whole file and rewrites it in place. That keeps the
// engine trivial at the cost of O(n) operations and no crash safety, which
// is the intended trade-off for a single-operator terminal.
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Store owns a base directory of table files. Tables are registered once,
// up front; nothing else may touch the files.
type Store struct {
	dir    string
	mu     sync.Mutex
	tables map[string]struct{}
}

// New creates the base directory when absent and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, tables: make(map[string]struct{})}, nil
}

// Register declares that T is persisted under the given storage name and
// returns the table to operate on. It creates the backing file with a
// header row when absent. Registering the same name twice fails.
func Register[T any](s *Store, name string, schema Schema[T]) (*Table[T], error) {
	s.mu.Lock()
	if _, taken := s.tables[name]; taken {
		s.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", name, ErrDuplicateTable)
	}
	s.tables[name] = struct{}{}
	s.mu.Unlock()

	t := &Table[T]{
		name:   name,
		path:   filepath.Join(s.dir, name+".csv"),
		schema: schema,
	}
	if err := t.init(); err != nil {
		// Release the name so a retry is not mistaken for a duplicate.
		s.mu.Lock()
		delete(s.tables, name)
		s.mu.Unlock()
		return nil, err
	}
	return t, nil
}

// Table gives typed access to one record type's rows. The zero value is not
// usable; every operation on it fails with ErrNotRegistered.
type Table[T any] struct {
	name   string
	path   string
	schema Schema[T]
	mu     sync.Mutex
}

// Name returns the storage name the table was registered under.
func (t *Table[T]) Name() string { return t.name }

func (t *Table[T]) init() error {
	_, err := os.Stat(t.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", t.path, err)
	}
	return t.writeAll(nil)
}

func (t *Table[T]) ready() error {
	if t == nil || t.path == "" {
		return ErrNotRegistered
	}
	return nil
}

// List reads the entire backing file and returns every record in storage
// order. Each call is a fresh parse, so the result always reflects the
// latest on-disk state.
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readAll()
}

// Get scans for the record with the given id.
func (t *Table[T]) Get(ctx context.Context, id int) (*T, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.readAll()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if *t.schema.id(&rows[i]) == id {
			rec := rows[i]
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("%s id %d: %w", t.name, id, ErrNotFound)
}

// Add assigns the next id (last row's id plus one, starting at 1), appends
// the record and rewrites the file. The record is returned with its id set.
func (t *Table[T]) Add(ctx context.Context, rec *T) (*T, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.readAll()
	if err != nil {
		return nil, err
	}
	next := 1
	if len(rows) > 0 {
		next = *t.schema.id(&rows[len(rows)-1]) + 1
	}
	*t.schema.id(rec) = next
	rows = append(rows, *rec)
	if err := t.writeAll(rows); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update applies mutate to the first record matching id and rewrites the
// file. The id itself cannot be changed; it is reasserted after mutation.
func (t *Table[T]) Update(ctx context.Context, id int, mutate func(*T)) (*T, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.readAll()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if *t.schema.id(&rows[i]) != id {
			continue
		}
		mutate(&rows[i])
		*t.schema.id(&rows[i]) = id
		if err := t.writeAll(rows); err != nil {
			return nil, err
		}
		rec := rows[i]
		return &rec, nil
	}
	return nil, fmt.Errorf("%s id %d: %w", t.name, id, ErrNotFound)
}

// Delete removes the record with the given id and reports whether a
// deletion occurred. The file is only rewritten when something was removed.
func (t *Table[T]) Delete(ctx context.Context, id int) (bool, error) {
	if err := t.ready(); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.readAll()
	if err != nil {
		return false, err
	}
	kept := rows[:0]
	for i := range rows {
		if *t.schema.id(&rows[i]) != id {
			kept = append(kept, rows[i])
		}
	}
	if len(kept) == len(rows) {
		return false, nil
	}
	if err := t.writeAll(kept); err != nil {
		return false, err
	}
	return true, nil
}

func (t *Table[T]) readAll() ([]T, error) {
	f, err := os.Open(t.path)
	if err != nil {
		// A missing file is an empty record set.
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", t.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(t.schema.columns) + 1

	raw, err := r.ReadAll()
	if err != nil {
		// Only malformed rows are a decode failure; an underlying reader
		// error is an I/O failure and surfaces as such.
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, &DecodeError{Table: t.name, Line: perr.Line, Column: "-", Err: err}
		}
		return nil, fmt.Errorf("read %s: %w", t.path, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	// First row is the header; rows follow in insertion order.
	rows := make([]T, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		line := i + 2
		var rec T
		id, err := strconv.Atoi(cells[0])
		if err != nil {
			return nil, &DecodeError{Table: t.name, Line: line, Column: "id", Err: err}
		}
		*t.schema.id(&rec) = id
		for j, col := range t.schema.columns {
			if err := col.decode(&rec, cells[j+1]); err != nil {
				return nil, &DecodeError{Table: t.name, Line: line, Column: col.Name, Err: err}
			}
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func (t *Table[T]) writeAll(rows []T) error {
	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", t.path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.schema.header()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	for i := range rows {
		if err := w.Write(t.schema.encode(&rows[i])); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", t.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", t.path, err)
	}
	return nil
}
