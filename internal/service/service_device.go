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

type deviceService struct {
	devices store.DeviceRepository

	logger *logger.Logger
}

func NewDeviceService(devices store.DeviceRepository, logger *logger.Logger) DeviceService {
	return &deviceService{devices: devices, logger: logger}
}

func (d *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]models.Device, error) {
	devices, err := d.devices.IterDevicesForUser(userID).OrderBy("id", true).Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}
	return devices, nil
}

func (d *deviceService) CreateDevice(ctx context.Context, userID uuid.UUID, device models.ReceivedDevice) (models.Device, error) {
	created, err := d.devices.SetDevice(ctx, models.Device{
		Name:             device.Name,
		IsRequiredViewer: device.IsRequiredViewer,
		Access:           device.Access,
		UserID:           userID,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return models.Device{}, ErrDeviceExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deviceService.CreateDevice").Str("name", device.Name).Msg("failed to create device")
		return models.Device{}, fmt.Errorf("error creating device: %w", err)
	}
	return created, nil
}

// UpdateDevice patches the device the user owns under name. Devices of
// other users are reported as missing.
func (d *deviceService) UpdateDevice(ctx context.Context, userID uuid.UUID, name string, update models.DeviceUpdate) (models.Device, error) {
	log := logger.FromContext(ctx)

	device, err := d.devices.GetDeviceByName(ctx, userID, name)
	if errors.Is(err, store.ErrNotFound) {
		return models.Device{}, ErrDeviceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*deviceService.UpdateDevice").Str("name", name).Msg("failed to load device")
		return models.Device{}, fmt.Errorf("error loading device: %w", err)
	}

	updated, err := d.devices.UpdateDevice(ctx, device.ID, update)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return models.Device{}, ErrDeviceExists
	case errors.Is(err, store.ErrNotFound):
		return models.Device{}, ErrDeviceNotFound
	case err != nil:
		log.Err(err).Str("func", "*deviceService.UpdateDevice").Int64("device_id", device.ID).Msg("failed to update device")
		return models.Device{}, fmt.Errorf("error updating device: %w", err)
	}
	return updated, nil
}

func (d *deviceService) DeleteDevices(ctx context.Context, userID uuid.UUID, names []string) error {
	err := d.devices.ClearDevices().
		Filter(store.OpEq, "user_id", userID).
		Filter(store.OpContains, "name", names).
		Start()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deviceService.DeleteDevices").Msg("failed to schedule device deletion")
		return fmt.Errorf("error scheduling device deletion: %w", err)
	}
	return nil
}
