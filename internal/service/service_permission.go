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

type permissionService struct {
	messageAccess

	logger *logger.Logger
}

func NewPermissionService(storages *store.Storages, logger *logger.Logger) PermissionService {
	return &permissionService{
		messageAccess: messageAccess{messages: storages.Messages, permissions: storages.Permissions},
		logger:        logger,
	}
}

func (p *permissionService) ListPermissions(ctx context.Context, userID, messageID uuid.UUID) ([]models.Permission, error) {
	if _, err := p.ownedMessage(ctx, userID, messageID); err != nil {
		return nil, err
	}

	permissions, err := p.permissions.IterPermissionsForMessage(messageID).Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing permissions: %w", err)
	}
	return permissions, nil
}

func (p *permissionService) GetPermission(ctx context.Context, userID, messageID, targetID uuid.UUID) (models.Permission, error) {
	if _, err := p.ownedMessage(ctx, userID, messageID); err != nil {
		return models.Permission{}, err
	}

	permission, err := p.permissions.GetPermission(ctx, messageID, targetID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Permission{}, ErrPermissionNotFound
	}
	if err != nil {
		return models.Permission{}, fmt.Errorf("error loading permission: %w", err)
	}
	return permission, nil
}

// SetPermission grants or replaces the permissions of targetID. The owner
// cannot be a target.
func (p *permissionService) SetPermission(ctx context.Context, userID, messageID, targetID uuid.UUID, permissions models.Permissions) (models.Permission, error) {
	message, err := p.ownedMessage(ctx, userID, messageID)
	if err != nil {
		return models.Permission{}, err
	}
	if targetID == message.UserID {
		return models.Permission{}, ErrSelfPermission
	}

	permission, err := p.permissions.SetPermission(ctx, models.Permission{
		MessageID:   messageID,
		UserID:      targetID,
		Permissions: permissions,
	})
	if errors.Is(err, store.ErrInvalidData) {
		return models.Permission{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*permissionService.SetPermission").Str("message_id", messageID.String()).Msg("failed to set permission")
		return models.Permission{}, fmt.Errorf("error setting permission: %w", err)
	}
	return permission, nil
}

func (p *permissionService) DeletePermission(ctx context.Context, userID, messageID, targetID uuid.UUID) error {
	if _, err := p.ownedMessage(ctx, userID, messageID); err != nil {
		return err
	}

	deleted, err := p.permissions.DeletePermission(ctx, messageID, targetID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*permissionService.DeletePermission").Str("message_id", messageID.String()).Msg("failed to delete permission")
		return fmt.Errorf("error deleting permission: %w", err)
	}
	if !deleted {
		return ErrPermissionNotFound
	}
	return nil
}
