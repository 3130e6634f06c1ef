// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the message keeper: who may
// read, edit or share a message, how links and devices behave, and how
// users are authenticated locally or through the remote auth service.
//
// Services return the sentinel errors of errors.go (or wrap them); the HTTP
// layer maps those to statuses and never inspects storage errors itself.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Authenticator resolves Basic credentials to a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, creds models.Credentials) (models.AuthUser, error)
}

// LinkAuthenticator resolves a link token presented for a message.
type LinkAuthenticator interface {
	AuthenticateLink(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error)
}

// UserService manages accounts. The current user is always the principal
// produced by an [Authenticator].
type UserService interface {
	CreateUser(ctx context.Context, principal models.AuthUser, username string, user models.ReceivedUser) (models.AuthUser, error)
	UpdateUser(ctx context.Context, principal models.AuthUser, update models.UserUpdate) (models.AuthUser, error)
	DeleteUser(ctx context.Context, principal models.AuthUser) error
}

type DeviceService interface {
	ListDevices(ctx context.Context, userID uuid.UUID) ([]models.Device, error)
	CreateDevice(ctx context.Context, userID uuid.UUID, device models.ReceivedDevice) (models.Device, error)
	UpdateDevice(ctx context.Context, userID uuid.UUID, name string, update models.DeviceUpdate) (models.Device, error)
	// DeleteDevices removes the named devices in the background.
	DeleteDevices(ctx context.Context, userID uuid.UUID, names []string) error
}

// MessageService returns messages with their files attached and their
// links filled in.
type MessageService interface {
	ListMessages(ctx context.Context, userID uuid.UUID) ([]models.MessageResponse, error)
	GetMessage(ctx context.Context, userID, messageID uuid.UUID) (models.MessageResponse, error)
	CreateMessage(ctx context.Context, userID uuid.UUID, message models.ReceivedMessage) (models.MessageResponse, error)
	UpdateMessage(ctx context.Context, userID, messageID uuid.UUID, update models.MessageUpdate) (models.MessageResponse, error)
	// DeleteMessages removes the owned messages and their file contents in
	// the background.
	DeleteMessages(ctx context.Context, userID uuid.UUID, messageIDs []uuid.UUID) error
	GetLinkedMessage(ctx context.Context, link models.MessageLink) (models.MessageResponse, error)
}

type ViewService interface {
	MarkViewed(ctx context.Context, userID, messageID uuid.UUID, deviceName string) error
}

type LinkService interface {
	ListLinks(ctx context.Context, userID, messageID uuid.UUID) ([]models.MessageLink, error)
	CreateLink(ctx context.Context, userID, messageID uuid.UUID, link models.ReceivedMessageLink) (models.MessageLink, error)
	DeleteLink(ctx context.Context, userID, messageID uuid.UUID, token string) error
	// GetLink is the unauthenticated lookup served to other instances.
	GetLink(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error)
}

type FileService interface {
	ListFiles(ctx context.Context, userID, messageID uuid.UUID) ([]models.FileResponse, error)
	UploadFile(ctx context.Context, userID, messageID uuid.UUID, upload models.FileUpload) (models.FileResponse, error)
	DownloadFile(ctx context.Context, userID, messageID uuid.UUID, fileName string) (models.File, io.ReadCloser, error)
	DownloadLinkedFile(ctx context.Context, link models.MessageLink, fileName string) (models.File, io.ReadCloser, error)
	DeleteFile(ctx context.Context, userID, messageID uuid.UUID, fileName string) error
}

// PermissionService lets the owner of a message share it with other users.
type PermissionService interface {
	ListPermissions(ctx context.Context, userID, messageID uuid.UUID) ([]models.Permission, error)
	GetPermission(ctx context.Context, userID, messageID, targetID uuid.UUID) (models.Permission, error)
	SetPermission(ctx context.Context, userID, messageID, targetID uuid.UUID, permissions models.Permissions) (models.Permission, error)
	DeletePermission(ctx context.Context, userID, messageID, targetID uuid.UUID) error
}
