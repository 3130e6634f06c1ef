package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageLink is a shareable token granting unauthenticated access to one
// message. Resource optionally narrows the link to a single file name.
type MessageLink struct {
	Token     string      `db:"token"`
	MessageID uuid.UUID   `db:"message_id"`
	Access    Permissions `db:"access"`
	Resource  *string     `db:"resource"`
	ExpiresAt *time.Time  `db:"expires_at"`
}

// TableName returns the name of the database table
// associated with the MessageLink model.
func (l MessageLink) TableName() string {
	return "message_links"
}

// IsExpired reports whether the link is no longer valid at now.
func (l MessageLink) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}

// AllowsResource reports whether the link may be used for the named file.
func (l MessageLink) AllowsResource(fileName string) bool {
	return l.Resource == nil || *l.Resource == fileName
}

func (l MessageLink) ToResponse() LinkResponse {
	return LinkResponse{
		Token:     l.Token,
		MessageID: l.MessageID,
		Access:    l.Access,
		Resource:  l.Resource,
		ExpiresAt: l.ExpiresAt,
	}
}

// LinkResponse is also the wire form read back by the remote link
// authenticator, hence ToLink.
type LinkResponse struct {
	Token     string      `json:"token"`
	MessageID uuid.UUID   `json:"message_id"`
	Access    Permissions `json:"access"`
	Resource  *string     `json:"resource"`
	ExpiresAt *time.Time  `json:"expires_at"`
}

func (l LinkResponse) ToLink() MessageLink {
	return MessageLink{
		Token:     l.Token,
		MessageID: l.MessageID,
		Access:    l.Access,
		Resource:  l.Resource,
		ExpiresAt: l.ExpiresAt,
	}
}

// ReceivedMessageLink is the body of POST /users/@me/messages/{id}/links.
// Access defaults to read and files.
type ReceivedMessageLink struct {
	ExpiresAfter *Timedelta   `json:"expires_after"`
	Access       *Permissions `json:"access"`
	Resource     *string      `json:"resource"`
}

// Permission grants another user access to a message.
type Permission struct {
	MessageID   uuid.UUID   `db:"message_id"`
	UserID      uuid.UUID   `db:"user_id"`
	Permissions Permissions `db:"permissions"`
}

// TableName returns the name of the database table
// associated with the Permission model.
func (p Permission) TableName() string {
	return "permissions"
}

func (p Permission) ToResponse() PermissionResponse {
	return PermissionResponse(p)
}

type PermissionResponse struct {
	MessageID   uuid.UUID   `json:"message_id"`
	UserID      uuid.UUID   `json:"user_id"`
	Permissions Permissions `json:"permissions"`
}

type ReceivedPermission struct {
	Permissions Permissions `json:"permissions"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
