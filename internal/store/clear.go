package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
)

// JobQueue runs jobs in the background. Submit must not block.
type JobQueue interface {
	Submit(kind string, job func(context.Context) error) error
}

// Clear is a chainable DELETE over one table.
type Clear struct {
	q       Querier
	queue   JobQueue
	filters filters
}

// NewClear starts a deletion of every row of table. queue may be nil, in
// which case Start fails with [ErrNoQueue].
func NewClear(q Querier, table Table, queue JobQueue) *Clear {
	return &Clear{q: q, queue: queue, filters: filters{table: table}}
}

func (c *Clear) Filter(op Op, field string, value any) *Clear {
	cp := *c
	cp.filters = cp.filters.with(op, field, value)
	return &cp
}

func (c *Clear) FilterTruth(truth bool, fields ...string) *Clear {
	cp := *c
	cp.filters = cp.filters.truth(truth, fields...)
	return &cp
}

// ToSQL renders the DELETE statement.
func (c *Clear) ToSQL() (string, []any, error) {
	if c.filters.err != nil {
		return "", nil, c.filters.err
	}

	builder := psql.Delete(c.filters.table.Name)
	for _, cond := range c.filters.where {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// Exec deletes the matching rows and returns how many were removed.
func (c *Clear) Exec(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.ToSQL()
	if err != nil {
		log.Err(err).Str("func", "*Clear.Exec").Str("table", c.filters.table.Name).Msg("failed to build query")
		return 0, err
	}

	result, err := c.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*Clear.Exec").Str("table", c.filters.table.Name).Msg("failed to delete rows")
		return 0, translateError(err, ErrExecutingStatement)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*Clear.Exec").Str("table", c.filters.table.Name).Int64("removed", removed).Msg("rows deleted")
	return removed, nil
}

// Start hands the deletion to the background queue and returns at once.
// Build errors and a rejecting queue are reported here; failures of the
// deletion itself are only logged by the queue.
func (c *Clear) Start() error {
	if _, _, err := c.ToSQL(); err != nil {
		return err
	}
	if c.queue == nil {
		return ErrNoQueue
	}

	return c.queue.Submit("clear_"+c.filters.table.Name, func(ctx context.Context) error {
		_, err := c.Exec(ctx)
		return err
	})
}
