package crud

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// DecodeFunc converts a raw payload or query value into the value stored in the column.
type DecodeFunc func(raw any) (any, error)

// Field describes one attribute of a resource.
type Field struct {
	// Name is the key used in payloads, filters and sort expressions.
	Name string
	// Column is the storage column the field maps to.
	Column string

	Updatable  bool
	Filterable bool
	Sortable   bool

	Decode DecodeFunc
}

// Schema is the set of fields a Resource exposes.
type Schema struct {
	fields      []Field
	byName      map[string]Field
	defaultSort []Order
}

// NewSchema builds a schema. defaultSort applies to list queries without a sort expression.
func NewSchema(defaultSort []Order, fields ...Field) Schema {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	return Schema{
		fields:      fields,
		byName:      byName,
		defaultSort: defaultSort,
	}
}

// Field looks a field up by name.
func (s Schema) Field(name string) (Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Updatable returns the names of the fields an update may set.
func (s Schema) Updatable() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		if f.Updatable {
			names = append(names, f.Name)
		}
	}
	return names
}

// DefaultSort returns the ordering used when a list query names none.
func (s Schema) DefaultSort() []Order {
	return append([]Order(nil), s.defaultSort...)
}

func (f Field) decode(raw any) (any, error) {
	if f.Decode == nil {
		return raw, nil
	}
	return f.Decode(raw)
}

// String decodes JSON strings and passes them through normalize.
func String(name string, normalize func(string) (string, error)) DecodeFunc {
	return func(raw any) (any, error) {
		s, ok := raw.(string)
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("expected a string, got %T", raw))
		}
		if normalize == nil {
			return s, nil
		}
		return normalize(s)
	}
}
