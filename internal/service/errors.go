package service

import "errors"

// Authentication and authorization.
var (
	ErrUnauthorized       = errors.New("incorrect username or password")
	ErrMissingLink        = errors.New("missing message link")
	ErrUnknownLink        = errors.New("unknown message link")
	ErrMissingPermissions = errors.New("missing permission(s) required to perform this action")
	ErrForbidden          = errors.New("action not permitted on this message")
)

// Missing resources.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrLinkNotFound       = errors.New("link not found")
	ErrPermissionNotFound = errors.New("permission not found")
)

// Conflicts.
var (
	ErrUserExists     = errors.New("user already exists")
	ErrDeviceExists   = errors.New("device already exists")
	ErrFileExists     = errors.New("file already exists")
	ErrAlreadyViewed  = errors.New("message already viewed by this device")
	ErrSelfPermission = errors.New("cannot set permissions for the message owner")
)
