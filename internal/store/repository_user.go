package store

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and removal against the "users"
// table.
type userRepository struct {
	db    *DB
	queue JobQueue
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection. queue runs the deletions started by ClearUsers.
func NewUserRepository(db *DB, queue JobQueue, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{db: db, queue: queue}
}

// GetUser returns the user with the given id or [ErrNotFound].
func (r *userRepository) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return getOne[models.User](ctx, r.db, "*userRepository.GetUser", getUserByID, userID)
}

// GetUserByUsername returns the user with the given username or [ErrNotFound].
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return getOne[models.User](ctx, r.db, "*userRepository.GetUserByUsername", getUserByUsername, username)
}

// SetUser persists a new user record and returns it with server-assigned
// fields (CreatedAt). A taken username is an [*AlreadyExistsError].
func (r *userRepository) SetUser(ctx context.Context, user models.User) (models.User, error) {
	return writeOne[models.User](ctx, r.db, "*userRepository.SetUser", createUser,
		user.ID, user.Flags, user.Username, user.PasswordHash)
}

// UpdateUser applies the set fields of patch. An empty patch returns the
// current row.
func (r *userRepository) UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (models.User, error) {
	set := make(map[string]any, 3)
	if username, ok := patch.Username.Get(); ok {
		set["username"] = username
	}
	if hash, ok := patch.PasswordHash.Get(); ok {
		set["password_hash"] = hash
	}
	if flags, ok := patch.Flags.Get(); ok {
		set["flags"] = flags
	}

	if len(set) == 0 {
		return r.GetUser(ctx, userID)
	}

	query, args, err := buildUpdateQuery(UsersTable, set, sq.Eq{"id": userID.String()})
	if err != nil {
		return models.User{}, err
	}
	return writeOne[models.User](ctx, r.db, "*userRepository.UpdateUser", query, args...)
}

// DeleteUser removes the user; owned rows go with it through cascades.
func (r *userRepository) DeleteUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	return deleteRows(ctx, r.db, "*userRepository.DeleteUser", deleteUser, userID)
}

func (r *userRepository) IterUsers() *Collection[models.User] {
	return NewCollection[models.User](r.db, UsersTable)
}

func (r *userRepository) ClearUsers() *Clear {
	return NewClear(r.db, UsersTable, r.queue)
}
