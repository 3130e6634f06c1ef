package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
)

// Storages groups every repository and the file content store.
type Storages struct {
	Users        UserRepository
	Devices      DeviceRepository
	Messages     MessageRepository
	Files        FileRepository
	Views        ViewRepository
	MessageLinks MessageLinkRepository
	Permissions  PermissionRepository
	Contents     FileContentStore
}

// NewStorages builds the repositories over db and the content store chosen
// by cfg.Backend. queue runs background deletions.
func NewStorages(ctx context.Context, db *DB, queue JobQueue, cfg config.Files, log *logger.Logger) (*Storages, error) {
	var (
		contents FileContentStore
		err      error
	)
	switch cfg.Backend {
	case config.FilesBackendS3:
		contents, err = NewS3ContentStore(ctx, cfg.S3, log)
	default:
		contents, err = NewLocalContentStore(cfg.Dir, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating file content store: %w", err)
	}

	return &Storages{
		Users:        NewUserRepository(db, queue, log),
		Devices:      NewDeviceRepository(db, queue, log),
		Messages:     NewMessageRepository(db, queue, log),
		Files:        NewFileRepository(db, queue, log),
		Views:        NewViewRepository(db, queue, log),
		MessageLinks: NewMessageLinkRepository(db, queue, log),
		Permissions:  NewPermissionRepository(db, queue, log),
		Contents:     contents,
	}, nil
}
