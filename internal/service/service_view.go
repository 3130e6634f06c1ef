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

type viewService struct {
	messageAccess

	devices store.DeviceRepository
	views   store.ViewRepository

	logger *logger.Logger
}

func NewViewService(storages *store.Storages, logger *logger.Logger) ViewService {
	return &viewService{
		messageAccess: messageAccess{messages: storages.Messages, permissions: storages.Permissions},
		devices:       storages.Devices,
		views:         storages.Views,
		logger:        logger,
	}
}

// MarkViewed records that the named device of userID has seen the message.
// A second view from the same device is [ErrAlreadyViewed].
func (v *viewService) MarkViewed(ctx context.Context, userID, messageID uuid.UUID, deviceName string) error {
	log := logger.FromContext(ctx)

	if _, err := v.permittedMessage(ctx, userID, messageID, models.PermissionRead); err != nil {
		return err
	}

	device, err := v.devices.GetDeviceByName(ctx, userID, deviceName)
	if errors.Is(err, store.ErrNotFound) {
		return ErrDeviceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*viewService.MarkViewed").Str("device", deviceName).Msg("failed to load device")
		return fmt.Errorf("error loading device: %w", err)
	}

	_, err = v.views.SetView(ctx, models.View{DeviceID: device.ID, MessageID: messageID})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrAlreadyViewed
	case errors.Is(err, store.ErrInvalidData):
		// the message was deleted in between
		return ErrMessageNotFound
	case err != nil:
		log.Err(err).Str("func", "*viewService.MarkViewed").Str("message_id", messageID.String()).Msg("failed to record view")
		return fmt.Errorf("error recording view: %w", err)
	}
	return nil
}
