package store

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type messageRepository struct {
	db    *DB
	queue JobQueue
}

func NewMessageRepository(db *DB, queue JobQueue, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{db: db, queue: queue}
}

func (r *messageRepository) GetMessage(ctx context.Context, messageID uuid.UUID) (models.Message, error) {
	return getOne[models.Message](ctx, r.db, "*messageRepository.GetMessage", getMessageByID, messageID)
}

// SetMessage inserts a message. The caller assigns the id.
func (r *messageRepository) SetMessage(ctx context.Context, message models.Message) (models.Message, error) {
	return writeOne[models.Message](ctx, r.db, "*messageRepository.SetMessage", createMessage,
		message.ID, message.ExpireAt, message.IsTransient, message.Text, message.Title, message.UserID)
}

// UpdateMessage applies the set fields of patch. Null text, title or expiry
// are stored as NULL.
func (r *messageRepository) UpdateMessage(ctx context.Context, messageID uuid.UUID, patch models.MessagePatch) (models.Message, error) {
	set := make(map[string]any, 4)
	if patch.ExpireAt.IsSet() {
		set["expire_at"] = patch.ExpireAt.Ptr()
	}
	if transient, ok := patch.IsTransient.Get(); ok {
		set["is_transient"] = transient
	}
	if patch.Text.IsSet() {
		set["text"] = patch.Text.Ptr()
	}
	if patch.Title.IsSet() {
		set["title"] = patch.Title.Ptr()
	}

	if len(set) == 0 {
		return r.GetMessage(ctx, messageID)
	}

	query, args, err := buildUpdateQuery(MessagesTable, set, sq.Eq{"id": messageID.String()})
	if err != nil {
		return models.Message{}, err
	}
	return writeOne[models.Message](ctx, r.db, "*messageRepository.UpdateMessage", query, args...)
}

func (r *messageRepository) DeleteMessage(ctx context.Context, messageID uuid.UUID) (bool, error) {
	return deleteRows(ctx, r.db, "*messageRepository.DeleteMessage", deleteMessage, messageID)
}

func (r *messageRepository) IterMessages() *Collection[models.Message] {
	return NewCollection[models.Message](r.db, MessagesTable)
}

func (r *messageRepository) IterMessagesForUser(userID uuid.UUID) *Collection[models.Message] {
	return r.IterMessages().Filter(OpEq, "user_id", userID)
}

func (r *messageRepository) ClearMessages() *Clear {
	return NewClear(r.db, MessagesTable, r.queue)
}
