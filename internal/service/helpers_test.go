package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newSQLMock returns a querier for the collections and clears handed out by
// mocked repositories.
func newSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlx.NewDb(db, "pgx"), mock
}

type submittedJob struct {
	kind string
	run  func(context.Context) error
}

// recordingQueue keeps submitted jobs so tests can run them in place.
type recordingQueue struct {
	jobs []submittedJob
	err  error
}

func (q *recordingQueue) Submit(kind string, run func(context.Context) error) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, submittedJob{kind: kind, run: run})
	return nil
}

var _ store.JobQueue = (*recordingQueue)(nil)
