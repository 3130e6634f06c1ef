package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	SetUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) (bool, error)
	IterUsers() *Collection[models.User]
	ClearUsers() *Clear
}

// DeviceRepository persists the named devices of users.
type DeviceRepository interface {
	GetDevice(ctx context.Context, deviceID int64) (models.Device, error)
	GetDeviceByName(ctx context.Context, userID uuid.UUID, name string) (models.Device, error)
	SetDevice(ctx context.Context, device models.Device) (models.Device, error)
	UpdateDevice(ctx context.Context, deviceID int64, update models.DeviceUpdate) (models.Device, error)
	DeleteDevice(ctx context.Context, deviceID int64) (bool, error)
	IterDevices() *Collection[models.Device]
	IterDevicesForUser(userID uuid.UUID) *Collection[models.Device]
	ClearDevices() *Clear
}

// MessageRepository persists messages.
type MessageRepository interface {
	GetMessage(ctx context.Context, messageID uuid.UUID) (models.Message, error)
	SetMessage(ctx context.Context, message models.Message) (models.Message, error)
	UpdateMessage(ctx context.Context, messageID uuid.UUID, patch models.MessagePatch) (models.Message, error)
	DeleteMessage(ctx context.Context, messageID uuid.UUID) (bool, error)
	IterMessages() *Collection[models.Message]
	IterMessagesForUser(userID uuid.UUID) *Collection[models.Message]
	ClearMessages() *Clear
}

// FileRepository persists file metadata. Content lives in a [FileContentStore].
type FileRepository interface {
	GetFile(ctx context.Context, messageID uuid.UUID, fileName string) (models.File, error)
	SetFile(ctx context.Context, file models.File) (models.File, error)
	DeleteFile(ctx context.Context, messageID uuid.UUID, fileName string) (bool, error)
	IterFiles() *Collection[models.File]
	IterFilesForMessage(messageID uuid.UUID) *Collection[models.File]
	ClearFiles() *Clear
}

// ViewRepository records which device has seen which message.
type ViewRepository interface {
	GetView(ctx context.Context, deviceID int64, messageID uuid.UUID) (models.View, error)
	SetView(ctx context.Context, view models.View) (models.View, error)
	IterViews() *Collection[models.View]
	IterViewsForMessage(messageID uuid.UUID) *Collection[models.View]
	ClearViews() *Clear
}

// MessageLinkRepository persists shareable message links.
type MessageLinkRepository interface {
	GetMessageLink(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error)
	SetMessageLink(ctx context.Context, link models.MessageLink) (models.MessageLink, error)
	DeleteMessageLink(ctx context.Context, messageID uuid.UUID, token string) (bool, error)
	IterMessageLinks() *Collection[models.MessageLink]
	IterMessageLinksForMessage(messageID uuid.UUID) *Collection[models.MessageLink]
	ClearMessageLinks() *Clear
}

// PermissionRepository persists per-message grants to other users.
type PermissionRepository interface {
	GetPermission(ctx context.Context, messageID, userID uuid.UUID) (models.Permission, error)
	// SetPermission inserts or replaces the grant.
	SetPermission(ctx context.Context, permission models.Permission) (models.Permission, error)
	DeletePermission(ctx context.Context, messageID, userID uuid.UUID) (bool, error)
	IterPermissions() *Collection[models.Permission]
	IterPermissionsForMessage(messageID uuid.UUID) *Collection[models.Permission]
	ClearPermissions() *Clear
}

// FileContentStore keeps the bytes of attached files, keyed by message id
// and file name.
type FileContentStore interface {
	Save(ctx context.Context, messageID uuid.UUID, fileName string, content io.Reader) error
	// Read returns [ErrContentNotFound] when nothing was saved under the key.
	Read(ctx context.Context, messageID uuid.UUID, fileName string) (io.ReadCloser, error)
	// Delete is a no-op for missing content.
	Delete(ctx context.Context, messageID uuid.UUID, fileName string) error
}
