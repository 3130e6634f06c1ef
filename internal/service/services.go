package service

import (
	"fmt"

	"github.com/MKhiriev/go-message-keeper/internal/adapter"
	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/crypto"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/store"
)

type Services struct {
	Authenticator     Authenticator
	LinkAuthenticator LinkAuthenticator
	UserService       UserService
	DeviceService     DeviceService
	MessageService    MessageService
	ViewService       ViewService
	LinkService       LinkService
	FileService       FileService
	PermissionService PermissionService
}

// NewServices wires every service over storages. In remote mode auth must
// be set and users are managed by the auth service; otherwise hasher is
// used to check passwords locally.
func NewServices(storages *store.Storages, queue store.JobQueue, hasher crypto.PasswordHasher, auth adapter.AuthAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hostname := cfg.App.PublicHostname

	services := &Services{
		DeviceService:     NewDeviceService(storages.Devices, logger),
		MessageService:    NewMessageService(storages, queue, hostname, logger),
		ViewService:       NewViewService(storages, logger),
		LinkService:       NewLinkService(storages, logger),
		FileService:       NewFileService(storages, hostname, logger),
		PermissionService: NewPermissionService(storages, logger),
	}

	switch cfg.Adapter.AuthMode {
	case config.AuthModeRemote:
		if auth == nil {
			return nil, fmt.Errorf("%w: remote auth mode without an auth adapter", adapter.ErrInvalidAuthAddress)
		}
		services.Authenticator = NewRemoteAuthenticator(auth)
		services.LinkAuthenticator = NewRemoteLinkAuthenticator(auth)
		services.UserService = NewRemoteUserService(auth)
	default:
		services.Authenticator = NewLocalAuthenticator(storages.Users, hasher)
		services.LinkAuthenticator = NewLocalLinkAuthenticator(storages.MessageLinks)
		services.UserService = NewUserService(storages, hasher, logger)
	}

	logger.Info().Str("auth_mode", cfg.Adapter.AuthMode).Msg("services created")
	return services, nil
}
