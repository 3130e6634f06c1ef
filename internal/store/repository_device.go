package store

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type deviceRepository struct {
	db    *DB
	queue JobQueue
}

func NewDeviceRepository(db *DB, queue JobQueue, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{db: db, queue: queue}
}

func (r *deviceRepository) GetDevice(ctx context.Context, deviceID int64) (models.Device, error) {
	return getOne[models.Device](ctx, r.db, "*deviceRepository.GetDevice", getDeviceByID, deviceID)
}

func (r *deviceRepository) GetDeviceByName(ctx context.Context, userID uuid.UUID, name string) (models.Device, error) {
	return getOne[models.Device](ctx, r.db, "*deviceRepository.GetDeviceByName", getDeviceByName, userID, name)
}

// SetDevice inserts a device. A name already used by the same user is an
// [*AlreadyExistsError].
func (r *deviceRepository) SetDevice(ctx context.Context, device models.Device) (models.Device, error) {
	return writeOne[models.Device](ctx, r.db, "*deviceRepository.SetDevice", createDevice,
		device.IsRequiredViewer, device.Name, device.Access, device.UserID)
}

// UpdateDevice applies the set fields of update. A null access clears it.
func (r *deviceRepository) UpdateDevice(ctx context.Context, deviceID int64, update models.DeviceUpdate) (models.Device, error) {
	set := make(map[string]any, 3)
	if name, ok := update.Name.Get(); ok {
		set["name"] = name
	}
	if required, ok := update.IsRequiredViewer.Get(); ok {
		set["is_required_viewer"] = required
	}
	if update.Access.IsSet() {
		set["access"] = update.Access.Ptr()
	}

	if len(set) == 0 {
		return r.GetDevice(ctx, deviceID)
	}

	query, args, err := buildUpdateQuery(DevicesTable, set, sq.Eq{"id": deviceID})
	if err != nil {
		return models.Device{}, err
	}
	return writeOne[models.Device](ctx, r.db, "*deviceRepository.UpdateDevice", query, args...)
}

func (r *deviceRepository) DeleteDevice(ctx context.Context, deviceID int64) (bool, error) {
	return deleteRows(ctx, r.db, "*deviceRepository.DeleteDevice", deleteDevice, deviceID)
}

func (r *deviceRepository) IterDevices() *Collection[models.Device] {
	return NewCollection[models.Device](r.db, DevicesTable)
}

func (r *deviceRepository) IterDevicesForUser(userID uuid.UUID) *Collection[models.Device] {
	return r.IterDevices().Filter(OpEq, "user_id", userID)
}

func (r *deviceRepository) ClearDevices() *Clear {
	return NewClear(r.db, DevicesTable, r.queue)
}
