package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup or a partial update targets a
	// row that does not exist.
	ErrNotFound = errors.New("entry was not found")

	// ErrAlreadyExists is matched by every [*AlreadyExistsError].
	ErrAlreadyExists = errors.New("entry already exists")

	// ErrInvalidData is matched by every [*DataError].
	ErrInvalidData = errors.New("invalid data")

	// ErrUnknownField is returned by collection and clear builders when a
	// filter or ordering names a column the entity does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownOperator is returned when a filter uses an unsupported
	// comparison.
	ErrUnknownOperator = errors.New("unknown filter operator")

	// ErrInvalidFilterValue is returned when a contains filter is not
	// given a slice.
	ErrInvalidFilterValue = errors.New("invalid filter value")

	// ErrNoQueue is returned by [Clear.Start] when no background queue was
	// configured.
	ErrNoQueue = errors.New("background queue is not configured")

	// ErrContentNotFound is returned by file content stores when the blob
	// does not exist.
	ErrContentNotFound = errors.New("file content was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
