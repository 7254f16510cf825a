package store

import (
	"strconv"
	"time"
)

// Column maps one field of T to one cell of a persisted row. The pair of
// funcs is the whole (de)serialization contract: no runtime reflection is
// involved, the schema is built once at registration and reused.
type Column[T any] struct {
	Name   string
	encode func(*T) string
	decode func(*T, string) error
}

// Schema is the ordered column set of a record type. The id column always
// comes first; the remaining columns follow declaration order.
type Schema[T any] struct {
	id      func(*T) *int
	columns []Column[T]
}

func NewSchema[T any](id func(*T) *int, columns ...Column[T]) Schema[T] {
	return Schema[T]{id: id, columns: columns}
}

func (s Schema[T]) header() []string {
	h := make([]string, 0, len(s.columns)+1)
	h = append(h, "id")
	for _, c := range s.columns {
		h = append(h, c.Name)
	}
	return h
}

func (s Schema[T]) encode(rec *T) []string {
	row := make([]string, 0, len(s.columns)+1)
	row = append(row, strconv.Itoa(*s.id(rec)))
	for _, c := range s.columns {
		row = append(row, c.encode(rec))
	}
	return row
}

func IntColumn[T any](name string, field func(*T) *int) Column[T] {
	return Column[T]{
		Name:   name,
		encode: func(rec *T) string { return strconv.Itoa(*field(rec)) },
		decode: func(rec *T, raw string) error {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return err
			}
			*field(rec) = n
			return nil
		},
	}
}

func Int64Column[T any](name string, field func(*T) *int64) Column[T] {
	return Column[T]{
		Name:   name,
		encode: func(rec *T) string { return strconv.FormatInt(*field(rec), 10) },
		decode: func(rec *T, raw string) error {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return err
			}
			*field(rec) = n
			return nil
		},
	}
}

func Float64Column[T any](name string, field func(*T) *float64) Column[T] {
	return Column[T]{
		Name:   name,
		encode: func(rec *T) string { return strconv.FormatFloat(*field(rec), 'g', -1, 64) },
		decode: func(rec *T, raw string) error {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return err
			}
			*field(rec) = f
			return nil
		},
	}
}

func StringColumn[T any](name string, field func(*T) *string) Column[T] {
	return Column[T]{
		Name:   name,
		encode: func(rec *T) string { return *field(rec) },
		decode: func(rec *T, raw string) error {
			*field(rec) = raw
			return nil
		},
	}
}

// TimeColumn stores timestamps as RFC 3339 text in UTC. Nanosecond precision
// is kept so that a stored time round-trips exactly.
func TimeColumn[T any](name string, field func(*T) *time.Time) Column[T] {
	return Column[T]{
		Name:   name,
		encode: func(rec *T) string { return field(rec).UTC().Format(time.RFC3339Nano) },
		decode: func(rec *T, raw string) error {
			t, err := time.Parse(time.RFC3339Nano, raw)
			if err != nil {
				return err
			}
			*field(rec) = t.UTC()
			return nil
		},
	}
}

// OptionalStringColumn maps a *string field; an empty cell means absent.
func OptionalStringColumn[T any](name string, field func(*T) **string) Column[T] {
	return Column[T]{
		Name: name,
		encode: func(rec *T) string {
			if p := *field(rec); p != nil {
				return *p
			}
			return ""
		},
		decode: func(rec *T, raw string) error {
			if raw == "" {
				*field(rec) = nil
				return nil
			}
			v := raw
			*field(rec) = &v
			return nil
		},
	}
}
