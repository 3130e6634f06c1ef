package store

import (
	"context"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

type messageLinkRepository struct {
	db    *DB
	queue JobQueue
}

func NewMessageLinkRepository(db *DB, queue JobQueue, logger *logger.Logger) MessageLinkRepository {
	logger.Debug().Msg("creating message link repository")
	return &messageLinkRepository{db: db, queue: queue}
}

// GetMessageLink looks a link up by both message and token, so a token
// never resolves for another message.
func (r *messageLinkRepository) GetMessageLink(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error) {
	return getOne[models.MessageLink](ctx, r.db, "*messageLinkRepository.GetMessageLink", getMessageLink, messageID, token)
}

func (r *messageLinkRepository) SetMessageLink(ctx context.Context, link models.MessageLink) (models.MessageLink, error) {
	return writeOne[models.MessageLink](ctx, r.db, "*messageLinkRepository.SetMessageLink", createMessageLink,
		link.Token, link.MessageID, link.Access, link.Resource, link.ExpiresAt)
}

func (r *messageLinkRepository) DeleteMessageLink(ctx context.Context, messageID uuid.UUID, token string) (bool, error) {
	return deleteRows(ctx, r.db, "*messageLinkRepository.DeleteMessageLink", deleteMessageLink, messageID, token)
}

func (r *messageLinkRepository) IterMessageLinks() *Collection[models.MessageLink] {
	return NewCollection[models.MessageLink](r.db, MessageLinksTable)
}

func (r *messageLinkRepository) IterMessageLinksForMessage(messageID uuid.UUID) *Collection[models.MessageLink] {
	return r.IterMessageLinks().Filter(OpEq, "message_id", messageID)
}

func (r *messageLinkRepository) ClearMessageLinks() *Clear {
	return NewClear(r.db, MessageLinksTable, r.queue)
}
