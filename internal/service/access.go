package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

// messageAccess decides whether a user may act on a message.
type messageAccess struct {
	messages    store.MessageRepository
	permissions store.PermissionRepository
}

// ownedMessage returns the message when userID owns it. Other users get
// [ErrMessageNotFound] so the message's existence is not revealed.
func (a messageAccess) ownedMessage(ctx context.Context, userID, messageID uuid.UUID) (models.Message, error) {
	message, err := a.message(ctx, messageID)
	if err != nil {
		return models.Message{}, err
	}
	if message.UserID != userID {
		return models.Message{}, ErrMessageNotFound
	}
	return message, nil
}

// permittedMessage returns the message when userID owns it or was granted
// every bit of required. A missing message is [ErrMessageNotFound], a
// missing grant [ErrForbidden].
func (a messageAccess) permittedMessage(ctx context.Context, userID, messageID uuid.UUID, required models.Permissions) (models.Message, error) {
	message, err := a.message(ctx, messageID)
	if err != nil {
		return models.Message{}, err
	}
	if message.UserID == userID {
		return message, nil
	}

	permission, err := a.permissions.GetPermission(ctx, messageID, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Message{}, ErrForbidden
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "messageAccess.permittedMessage").Msg("failed to load permission")
		return models.Message{}, fmt.Errorf("error loading permission: %w", err)
	}

	if !permission.Permissions.Has(required) {
		return models.Message{}, ErrForbidden
	}
	return message, nil
}

func (a messageAccess) message(ctx context.Context, messageID uuid.UUID) (models.Message, error) {
	message, err := a.messages.GetMessage(ctx, messageID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Message{}, ErrMessageNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "messageAccess.message").Msg("failed to load message")
		return models.Message{}, fmt.Errorf("error loading message: %w", err)
	}
	return message, nil
}
