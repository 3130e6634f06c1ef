package store

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"slices"

	sq "github.com/Masterminds/squirrel"
)

// Op is a filter comparison.
type Op string

const (
	OpLt       Op = "lt"
	OpLe       Op = "le"
	OpEq       Op = "eq"
	OpNe       Op = "ne"
	OpGe       Op = "ge"
	OpGt       Op = "gt"
	OpContains Op = "contains"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// filters accumulates WHERE conditions for one table. The first build
// error sticks and is reported by the terminal call.
type filters struct {
	table Table
	where []sq.Sqlizer
	err   error
}

func (f filters) with(op Op, field string, value any) filters {
	if f.err != nil {
		return f
	}
	if !f.table.has(field) {
		f.err = fmt.Errorf("%w: %s.%s", ErrUnknownField, f.table.Name, field)
		return f
	}

	cond, err := condition(op, field, value)
	if err != nil {
		f.err = err
		return f
	}

	f.where = append(slices.Clip(f.where), cond)
	return f
}

func (f filters) truth(truth bool, fields ...string) filters {
	for _, field := range fields {
		f = f.with(OpEq, field, truth)
	}
	return f
}

func condition(op Op, field string, value any) (sq.Sqlizer, error) {
	if op == OpContains {
		values, err := listValues(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFilterValue, field, err)
		}
		if len(values) == 0 {
			// IN () is not valid SQL; an empty set matches nothing
			return sq.Expr("1 = 0"), nil
		}
		return sq.Eq{field: values}, nil
	}

	value, err := plainValue(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFilterValue, field, err)
	}

	switch op {
	case OpLt:
		return sq.Lt{field: value}, nil
	case OpLe:
		return sq.LtOrEq{field: value}, nil
	case OpEq:
		return sq.Eq{field: value}, nil
	case OpNe:
		return sq.NotEq{field: value}, nil
	case OpGe:
		return sq.GtOrEq{field: value}, nil
	case OpGt:
		return sq.Gt{field: value}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
}

// plainValue resolves driver.Valuer values up front. squirrel expands any
// array or slice into an IN list, which would split a uuid.UUID into its
// sixteen bytes.
func plainValue(v any) (any, error) {
	valuer, ok := v.(driver.Valuer)
	if !ok {
		return v, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}
	return valuer.Value()
}

func listValues(v any) ([]any, error) {
	if _, ok := v.(driver.Valuer); ok {
		return nil, fmt.Errorf("expected a slice, got %T", v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected a slice, got %T", v)
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, fmt.Errorf("expected a slice, got %T", v)
	}

	values := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		value, err := plainValue(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
