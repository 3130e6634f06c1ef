// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/internal/utils"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

// deleteMessagesJob is the queue kind of bulk message deletions.
const deleteMessagesJob = "delete_messages"

type messageService struct {
	messageAccess

	files    store.FileRepository
	contents store.FileContentStore
	queue    store.JobQueue
	ids      *utils.UUIDGenerator
	hostname string
	now      func() time.Time

	logger *logger.Logger
}

func NewMessageService(storages *store.Storages, queue store.JobQueue, hostname string, logger *logger.Logger) MessageService {
	return &messageService{
		messageAccess: messageAccess{messages: storages.Messages, permissions: storages.Permissions},
		files:         storages.Files,
		contents:      storages.Contents,
		queue:         queue,
		ids:           utils.NewUUIDGenerator(),
		hostname:      hostname,
		now:           time.Now,
		logger:        logger,
	}
}

func (m *messageService) ListMessages(ctx context.Context, userID uuid.UUID) ([]models.MessageResponse, error) {
	messages, err := m.messages.IterMessagesForUser(userID).OrderBy("created_at", true).Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return m.withFiles(ctx, messages...)
}

func (m *messageService) GetMessage(ctx context.Context, userID, messageID uuid.UUID) (models.MessageResponse, error) {
	message, err := m.permittedMessage(ctx, userID, messageID, models.PermissionRead)
	if err != nil {
		return models.MessageResponse{}, err
	}
	return m.single(ctx, message)
}

func (m *messageService) CreateMessage(ctx context.Context, userID uuid.UUID, message models.ReceivedMessage) (models.MessageResponse, error) {
	row := models.Message{
		ID:          m.ids.Generate(),
		IsTransient: message.Transient(),
		Text:        message.Text,
		Title:       message.Title,
		UserID:      userID,
	}
	if message.ExpireAfter != nil {
		expireAt := m.now().Add(message.ExpireAfter.Duration()).UTC()
		row.ExpireAt = &expireAt
	}

	created, err := m.messages.SetMessage(ctx, row)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.CreateMessage").Str("user_id", userID.String()).Msg("failed to create message")
		return models.MessageResponse{}, fmt.Errorf("error creating message: %w", err)
	}

	response := created.ToResponse()
	response.WithPaths(m.hostname)
	return response, nil
}

// UpdateMessage needs ownership or the edit permission. A null
// expire_after clears the expiry.
func (m *messageService) UpdateMessage(ctx context.Context, userID, messageID uuid.UUID, update models.MessageUpdate) (models.MessageResponse, error) {
	if _, err := m.permittedMessage(ctx, userID, messageID, models.PermissionEdit); err != nil {
		return models.MessageResponse{}, err
	}

	patch := models.MessagePatch{
		IsTransient: update.IsTransient,
		Text:        update.Text,
		Title:       update.Title,
	}
	if update.ExpireAfter.IsNull() {
		patch.ExpireAt = models.NullOf[time.Time]()
	} else if expireAfter, ok := update.ExpireAfter.Get(); ok {
		patch.ExpireAt = models.Some(m.now().Add(expireAfter.Duration()).UTC())
	}

	updated, err := m.messages.UpdateMessage(ctx, messageID, patch)
	if errors.Is(err, store.ErrNotFound) {
		return models.MessageResponse{}, ErrMessageNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.UpdateMessage").Str("message_id", messageID.String()).Msg("failed to update message")
		return models.MessageResponse{}, fmt.Errorf("error updating message: %w", err)
	}
	return m.single(ctx, updated)
}

// DeleteMessages schedules a job removing the messages of userID among
// messageIDs together with the content of their files. Ids of other users'
// messages are ignored.
func (m *messageService) DeleteMessages(ctx context.Context, userID uuid.UUID, messageIDs []uuid.UUID) error {
	if m.queue == nil {
		return store.ErrNoQueue
	}

	ids := append([]uuid.UUID(nil), messageIDs...)
	err := m.queue.Submit(deleteMessagesJob, func(ctx context.Context) error {
		return m.deleteMessages(ctx, userID, ids)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.DeleteMessages").Msg("failed to schedule message deletion")
		return fmt.Errorf("error scheduling message deletion: %w", err)
	}
	return nil
}

func (m *messageService) deleteMessages(ctx context.Context, userID uuid.UUID, messageIDs []uuid.UUID) error {
	log := logger.FromContext(ctx)

	owned, err := store.Map(ctx,
		m.messages.IterMessagesForUser(userID).Filter(store.OpContains, "id", messageIDs),
		func(message models.Message) uuid.UUID { return message.ID })
	if err != nil {
		return fmt.Errorf("error resolving owned messages: %w", err)
	}
	if len(owned) == 0 {
		return nil
	}

	files, err := m.files.IterFiles().Filter(store.OpContains, "message_id", owned).Collect(ctx)
	if err != nil {
		return fmt.Errorf("error listing files of deleted messages: %w", err)
	}

	removed, err := m.messages.ClearMessages().Filter(store.OpContains, "id", owned).Exec(ctx)
	if err != nil {
		return fmt.Errorf("error deleting messages: %w", err)
	}

	var contentErrs []error
	for _, file := range files {
		if err = m.contents.Delete(ctx, file.MessageID, file.FileName); err != nil {
			contentErrs = append(contentErrs, err)
		}
	}

	log.Info().Str("user_id", userID.String()).Int64("messages", removed).Int("files", len(files)).Msg("messages deleted")
	return errors.Join(contentErrs...)
}

// GetLinkedMessage serves a message through a link with read access. A link
// bound to a single file only opens that file.
func (m *messageService) GetLinkedMessage(ctx context.Context, link models.MessageLink) (models.MessageResponse, error) {
	if !link.Access.Has(models.PermissionRead) || link.Resource != nil {
		return models.MessageResponse{}, ErrForbidden
	}

	message, err := m.message(ctx, link.MessageID)
	if err != nil {
		return models.MessageResponse{}, err
	}
	return m.single(ctx, message)
}

func (m *messageService) single(ctx context.Context, message models.Message) (models.MessageResponse, error) {
	responses, err := m.withFiles(ctx, message)
	if err != nil {
		return models.MessageResponse{}, err
	}
	return responses[0], nil
}

// withFiles converts messages to responses with their files attached in
// one query.
func (m *messageService) withFiles(ctx context.Context, messages ...models.Message) ([]models.MessageResponse, error) {
	responses := make([]models.MessageResponse, 0, len(messages))
	if len(messages) == 0 {
		return responses, nil
	}

	ids := make([]uuid.UUID, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}

	files, err := m.files.IterFiles().
		Filter(store.OpContains, "message_id", ids).
		OrderBy("set_at", true).
		Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading message files: %w", err)
	}

	byMessage := make(map[uuid.UUID][]models.FileResponse, len(messages))
	for _, file := range files {
		byMessage[file.MessageID] = append(byMessage[file.MessageID], file.ToResponse())
	}

	for _, message := range messages {
		response := message.ToResponse()
		if attached, ok := byMessage[message.ID]; ok {
			response.Files = attached
		}
		response.WithPaths(m.hostname)
		responses = append(responses, response)
	}
	return responses, nil
}
