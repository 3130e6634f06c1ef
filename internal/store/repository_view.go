package store

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

type viewRepository struct {
	db    *DB
	queue JobQueue
}

func NewViewRepository(db *DB, queue JobQueue, logger *logger.Logger) ViewRepository {
	logger.Debug().Msg("creating view repository")
	return &viewRepository{db: db, queue: queue}
}

func (r *viewRepository) GetView(ctx context.Context, deviceID int64, messageID uuid.UUID) (models.View, error) {
	return getOne[models.View](ctx, r.db, "*viewRepository.GetView", getView, deviceID, messageID)
}

// SetView records a view. Viewing the same message twice from one device
// is an [*AlreadyExistsError].
func (r *viewRepository) SetView(ctx context.Context, view models.View) (models.View, error) {
	return writeOne[models.View](ctx, r.db, "*viewRepository.SetView", createView, view.DeviceID, view.MessageID)
}

func (r *viewRepository) IterViews() *Collection[models.View] {
	return NewCollection[models.View](r.db, ViewsTable)
}

func (r *viewRepository) IterViewsForMessage(messageID uuid.UUID) *Collection[models.View] {
	return r.IterViews().Filter(OpEq, "message_id", messageID)
}

func (r *viewRepository) ClearViews() *Clear {
	return NewClear(r.db, ViewsTable, r.queue)
}
