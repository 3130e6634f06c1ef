package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Querier is the part of *sqlx.DB the builders run against.
type Querier interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// Collection is a lazy, chainable SELECT over one table. Every builder
// method returns a new Collection; nothing touches the database until
// Collect, Count or Map is called.
type Collection[T any] struct {
	q       Querier
	filters filters
	orderBy []string
	limit   uint64
}

// NewCollection starts a collection of every row of table.
func NewCollection[T any](q Querier, table Table) *Collection[T] {
	return &Collection[T]{q: q, filters: filters{table: table}}
}

func (c *Collection[T]) clone() *Collection[T] {
	cp := *c
	cp.orderBy = slices.Clip(cp.orderBy)
	return &cp
}

// Filter keeps rows where field op value holds. OpContains expects a slice
// and matches rows whose field is one of its elements.
func (c *Collection[T]) Filter(op Op, field string, value any) *Collection[T] {
	cp := c.clone()
	cp.filters = cp.filters.with(op, field, value)
	return cp
}

// FilterTruth keeps rows where every named boolean field equals truth.
func (c *Collection[T]) FilterTruth(truth bool, fields ...string) *Collection[T] {
	cp := c.clone()
	cp.filters = cp.filters.truth(truth, fields...)
	return cp
}

// OrderBy appends an ordering on field.
func (c *Collection[T]) OrderBy(field string, ascending bool) *Collection[T] {
	cp := c.clone()
	if cp.filters.err != nil {
		return cp
	}
	if !cp.filters.table.has(field) {
		cp.filters.err = fmt.Errorf("%w: %s.%s", ErrUnknownField, cp.filters.table.Name, field)
		return cp
	}

	direction := " DESC"
	if ascending {
		direction = " ASC"
	}
	cp.orderBy = append(cp.orderBy, field+direction)
	return cp
}

// Limit caps the number of rows. Zero removes the cap.
func (c *Collection[T]) Limit(n uint64) *Collection[T] {
	cp := c.clone()
	cp.limit = n
	return cp
}

func (c *Collection[T]) selectBuilder(columns ...string) sq.SelectBuilder {
	builder := psql.Select(columns...).From(c.filters.table.Name)
	for _, cond := range c.filters.where {
		builder = builder.Where(cond)
	}
	return builder
}

// ToSQL renders the SELECT statement.
func (c *Collection[T]) ToSQL() (string, []any, error) {
	if c.filters.err != nil {
		return "", nil, c.filters.err
	}

	builder := c.selectBuilder(c.filters.table.Columns...)
	if len(c.orderBy) > 0 {
		builder = builder.OrderBy(c.orderBy...)
	}
	if c.limit > 0 {
		builder = builder.Limit(c.limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (c *Collection[T]) countSQL() (string, []any, error) {
	if c.filters.err != nil {
		return "", nil, c.filters.err
	}

	var builder sq.SelectBuilder
	if c.limit > 0 {
		limited := c.selectBuilder("1").Limit(c.limit)
		builder = psql.Select("COUNT(*)").FromSelect(limited, "limited")
	} else {
		builder = c.selectBuilder("COUNT(*)")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// Collect runs the query and scans every row.
func (c *Collection[T]) Collect(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.ToSQL()
	if err != nil {
		log.Err(err).Str("func", "*Collection.Collect").Str("table", c.filters.table.Name).Msg("failed to build query")
		return nil, err
	}

	results := make([]T, 0)
	if err = sqlx.SelectContext(ctx, c.q, &results, query, args...); err != nil {
		log.Err(err).Str("func", "*Collection.Collect").Str("table", c.filters.table.Name).Msg("failed to collect rows")
		return nil, translateError(err, ErrExecutingQuery)
	}

	return results, nil
}

// Count returns the number of rows the collection would yield.
func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.countSQL()
	if err != nil {
		log.Err(err).Str("func", "*Collection.Count").Str("table", c.filters.table.Name).Msg("failed to build query")
		return 0, err
	}

	var count int64
	if err = sqlx.GetContext(ctx, c.q, &count, query, args...); err != nil {
		log.Err(err).Str("func", "*Collection.Count").Str("table", c.filters.table.Name).Msg("failed to count rows")
		return 0, translateError(err, ErrExecutingQuery)
	}

	return count, nil
}

// Map collects c and converts every row with fn.
func Map[T, R any](ctx context.Context, c *Collection[T], fn func(T) R) ([]R, error) {
	rows, err := c.Collect(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]R, 0, len(rows))
	for _, row := range rows {
		results = append(results, fn(row))
	}
	return results, nil
}
