package store

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

type permissionRepository struct {
	db    *DB
	queue JobQueue
}

func NewPermissionRepository(db *DB, queue JobQueue, logger *logger.Logger) PermissionRepository {
	logger.Debug().Msg("creating permission repository")
	return &permissionRepository{db: db, queue: queue}
}

func (r *permissionRepository) GetPermission(ctx context.Context, messageID, userID uuid.UUID) (models.Permission, error) {
	return getOne[models.Permission](ctx, r.db, "*permissionRepository.GetPermission", getPermission, messageID, userID)
}

// SetPermission inserts the grant or replaces the bits of an existing one.
// A user id that does not exist is a [*DataError].
func (r *permissionRepository) SetPermission(ctx context.Context, permission models.Permission) (models.Permission, error) {
	return writeOne[models.Permission](ctx, r.db, "*permissionRepository.SetPermission", upsertPermission,
		permission.MessageID, permission.UserID, permission.Permissions)
}

func (r *permissionRepository) DeletePermission(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	return deleteRows(ctx, r.db, "*permissionRepository.DeletePermission", deletePermission, messageID, userID)
}

func (r *permissionRepository) IterPermissions() *Collection[models.Permission] {
	return NewCollection[models.Permission](r.db, PermissionsTable)
}

func (r *permissionRepository) IterPermissionsForMessage(messageID uuid.UUID) *Collection[models.Permission] {
	return r.IterPermissions().Filter(OpEq, "message_id", messageID)
}

func (r *permissionRepository) ClearPermissions() *Clear {
	return NewClear(r.db, PermissionsTable, r.queue)
}
