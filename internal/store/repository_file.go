package store

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

type fileRepository struct {
	db    *DB
	queue JobQueue
}

func NewFileRepository(db *DB, queue JobQueue, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{db: db, queue: queue}
}

func (r *fileRepository) GetFile(ctx context.Context, messageID uuid.UUID, fileName string) (models.File, error) {
	return getOne[models.File](ctx, r.db, "*fileRepository.GetFile", getFile, messageID, fileName)
}

// SetFile inserts file metadata. A second file with the same name on the
// same message is an [*AlreadyExistsError].
func (r *fileRepository) SetFile(ctx context.Context, file models.File) (models.File, error) {
	return writeOne[models.File](ctx, r.db, "*fileRepository.SetFile", createFile,
		file.ContentType, file.FileName, file.MessageID, file.SetAt)
}

func (r *fileRepository) DeleteFile(ctx context.Context, messageID uuid.UUID, fileName string) (bool, error) {
	return deleteRows(ctx, r.db, "*fileRepository.DeleteFile", deleteFile, messageID, fileName)
}

func (r *fileRepository) IterFiles() *Collection[models.File] {
	return NewCollection[models.File](r.db, FilesTable)
}

func (r *fileRepository) IterFilesForMessage(messageID uuid.UUID) *Collection[models.File] {
	return r.IterFiles().Filter(OpEq, "message_id", messageID)
}

func (r *fileRepository) ClearFiles() *Clear {
	return NewClear(r.db, FilesTable, r.queue)
}
