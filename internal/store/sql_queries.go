package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, flags, username, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, created_at, flags, username, password_hash;`
	getUserByID = `SELECT id, created_at, flags, username, password_hash
    FROM users
    WHERE id = $1;`
	getUserByUsername = `SELECT id, created_at, flags, username, password_hash
    FROM users
    WHERE username = $1;`
	deleteUser = `DELETE FROM users WHERE id = $1;`

	createDevice = `INSERT INTO devices (is_required_viewer, name, access, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, is_required_viewer, name, access, user_id;`
	getDeviceByID = `SELECT id, is_required_viewer, name, access, user_id
    FROM devices
    WHERE id = $1;`
	getDeviceByName = `SELECT id, is_required_viewer, name, access, user_id
    FROM devices
    WHERE user_id = $1 AND name = $2;`
	deleteDevice = `DELETE FROM devices WHERE id = $1;`

	createMessage = `INSERT INTO messages (id, expire_at, is_transient, text, title, user_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at, expire_at, is_transient, text, title, user_id;`
	getMessageByID = `SELECT id, created_at, expire_at, is_transient, text, title, user_id
    FROM messages
    WHERE id = $1;`
	deleteMessage = `DELETE FROM messages WHERE id = $1;`

	createFile = `INSERT INTO files (content_type, file_name, message_id, set_at)
    VALUES ($1, $2, $3, $4)
    RETURNING content_type, file_name, message_id, set_at;`
	getFile = `SELECT content_type, file_name, message_id, set_at
    FROM files
    WHERE message_id = $1 AND file_name = $2;`
	deleteFile = `DELETE FROM files WHERE message_id = $1 AND file_name = $2;`

	createView = `INSERT INTO views (device_id, message_id)
    VALUES ($1, $2)
    RETURNING created_at, device_id, message_id;`
	getView = `SELECT created_at, device_id, message_id
    FROM views
    WHERE device_id = $1 AND message_id = $2;`

	createMessageLink = `INSERT INTO message_links (token, message_id, access, resource, expires_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING token, message_id, access, resource, expires_at;`
	getMessageLink = `SELECT token, message_id, access, resource, expires_at
    FROM message_links
    WHERE message_id = $1 AND token = $2;`
	deleteMessageLink = `DELETE FROM message_links WHERE message_id = $1 AND token = $2;`

	upsertPermission = `INSERT INTO permissions (message_id, user_id, permissions)
    VALUES ($1, $2, $3)
    ON CONFLICT (message_id, user_id) DO UPDATE SET permissions = EXCLUDED.permissions
    RETURNING message_id, user_id, permissions;`
	getPermission = `SELECT message_id, user_id, permissions
    FROM permissions
    WHERE message_id = $1 AND user_id = $2;`
	deletePermission = `DELETE FROM permissions WHERE message_id = $1 AND user_id = $2;`
)

// buildUpdateQuery renders a partial UPDATE of table returning the full row.
func buildUpdateQuery(table Table, set map[string]any, where sq.Eq) (string, []any, error) {
	query, args, err := psql.Update(table.Name).
		SetMap(set).
		Where(where).
		Suffix("RETURNING " + table.columnList()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// getOne scans the single row of query into T. No row is [ErrNotFound].
func getOne[T any](ctx context.Context, db *DB, fn, query string, args ...any) (T, error) {
	var row T
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return row, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to get row")
		return row, translateError(err, ErrExecutingQuery)
	}
	return row, nil
}

// writeOne runs an INSERT or UPDATE ... RETURNING statement. An UPDATE
// matching nothing is [ErrNotFound].
func writeOne[T any](ctx context.Context, db *DB, fn, query string, args ...any) (T, error) {
	var row T
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return row, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to write row")
		return row, translateError(err, ErrExecutingStatement)
	}
	return row, nil
}

// deleteRows runs a DELETE and reports whether something was removed.
func deleteRows(ctx context.Context, db *DB, fn, query string, args ...any) (bool, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to delete row")
		return false, translateError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}
