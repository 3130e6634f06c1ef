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

// DefaultLinkAccess is granted to links created without an explicit access.
const DefaultLinkAccess = models.PermissionRead | models.PermissionFiles

type linkService struct {
	messageAccess

	links    store.MessageLinkRepository
	newToken func() (string, error)
	now      func() time.Time

	logger *logger.Logger
}

func NewLinkService(storages *store.Storages, logger *logger.Logger) LinkService {
	return &linkService{
		messageAccess: messageAccess{messages: storages.Messages, permissions: storages.Permissions},
		links:         storages.MessageLinks,
		newToken:      utils.GenerateLinkToken,
		now:           time.Now,
		logger:        logger,
	}
}

func (l *linkService) ListLinks(ctx context.Context, userID, messageID uuid.UUID) ([]models.MessageLink, error) {
	if _, err := l.ownedMessage(ctx, userID, messageID); err != nil {
		return nil, err
	}

	links, err := l.links.IterMessageLinksForMessage(messageID).Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing links: %w", err)
	}
	return links, nil
}

func (l *linkService) CreateLink(ctx context.Context, userID, messageID uuid.UUID, link models.ReceivedMessageLink) (models.MessageLink, error) {
	log := logger.FromContext(ctx)

	if _, err := l.ownedMessage(ctx, userID, messageID); err != nil {
		return models.MessageLink{}, err
	}

	token, err := l.newToken()
	if err != nil {
		log.Err(err).Str("func", "*linkService.CreateLink").Msg("failed to generate link token")
		return models.MessageLink{}, err
	}

	row := models.MessageLink{
		Token:     token,
		MessageID: messageID,
		Access:    DefaultLinkAccess,
		Resource:  link.Resource,
	}
	if link.Access != nil {
		row.Access = *link.Access
	}
	if link.ExpiresAfter != nil {
		expiresAt := l.now().Add(link.ExpiresAfter.Duration()).UTC()
		row.ExpiresAt = &expiresAt
	}

	created, err := l.links.SetMessageLink(ctx, row)
	if errors.Is(err, store.ErrInvalidData) {
		return models.MessageLink{}, ErrMessageNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*linkService.CreateLink").Str("message_id", messageID.String()).Msg("failed to create link")
		return models.MessageLink{}, fmt.Errorf("error creating link: %w", err)
	}
	return created, nil
}

func (l *linkService) DeleteLink(ctx context.Context, userID, messageID uuid.UUID, token string) error {
	if _, err := l.ownedMessage(ctx, userID, messageID); err != nil {
		return err
	}

	deleted, err := l.links.DeleteMessageLink(ctx, messageID, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*linkService.DeleteLink").Str("message_id", messageID.String()).Msg("failed to delete link")
		return fmt.Errorf("error deleting link: %w", err)
	}
	if !deleted {
		return ErrLinkNotFound
	}
	return nil
}

// GetLink returns the stored link without checking its expiry; callers that
// authenticate with it go through a [LinkAuthenticator].
func (l *linkService) GetLink(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error) {
	if token == "" {
		return models.MessageLink{}, ErrMissingLink
	}

	link, err := l.links.GetMessageLink(ctx, messageID, token)
	if errors.Is(err, store.ErrNotFound) {
		return models.MessageLink{}, ErrLinkNotFound
	}
	if err != nil {
		return models.MessageLink{}, fmt.Errorf("error loading link: %w", err)
	}
	return link, nil
}
