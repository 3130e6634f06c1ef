package models

import (
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is the persisted message row.
//
// ExpireAt is advisory: nothing in this service purges expired messages.
type Message struct {
	ID          uuid.UUID  `db:"id"`
	CreatedAt   time.Time  `db:"created_at"`
	ExpireAt    *time.Time `db:"expire_at"`
	IsTransient bool       `db:"is_transient"`
	Text        *string    `db:"text"`
	Title       *string    `db:"title"`
	UserID      uuid.UUID  `db:"user_id"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

func (m Message) ToResponse() MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		ExpireAt:    m.ExpireAt,
		IsTransient: m.IsTransient,
		Text:        m.Text,
		Title:       m.Title,
		Files:       make([]FileResponse, 0),
	}
}

type MessageResponse struct {
	ID          uuid.UUID      `json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	ExpireAt    *time.Time     `json:"expire_at"`
	IsTransient bool           `json:"is_transient"`
	Text        *string        `json:"text"`
	Title       *string        `json:"title"`
	Link        string         `json:"link"`
	PublicLink  string         `json:"public_link"`
	Files       []FileResponse `json:"files"`
}

// Path is the owner-facing location of the message.
func (m *MessageResponse) Path() string {
	return "/users/@me/messages/" + m.ID.String()
}

// PublicPath is the link-authenticated location of the message.
func (m *MessageResponse) PublicPath() string {
	return "/messages/" + m.ID.String()
}

// WithPaths fills Link and PublicLink (and those of the attached files)
// relative to hostname.
func (m *MessageResponse) WithPaths(hostname string) {
	hostname = strings.TrimRight(hostname, "/")
	m.Link = hostname + m.Path()
	m.PublicLink = hostname + m.PublicPath()

	for i := range m.Files {
		m.Files[i].WithPaths(hostname)
	}
}

// ReceivedMessage is the body of POST /users/@me/messages.
type ReceivedMessage struct {
	ExpireAfter *Timedelta `json:"expire_after"`
	IsTransient *bool      `json:"is_transient"`
	Text        *string    `json:"text"`
	Title       *string    `json:"title"`
}

// Transient returns IsTransient, defaulting to true.
func (m ReceivedMessage) Transient() bool {
	if m.IsTransient == nil {
		return true
	}
	return *m.IsTransient
}

// MessageUpdate is the body of PATCH /users/@me/messages/{id}.
// A null expire_after clears the expiry.
type MessageUpdate struct {
	ExpireAfter Optional[Timedelta] `json:"expire_after"`
	IsTransient Optional[bool]      `json:"is_transient"`
	Text        Optional[string]    `json:"text"`
	Title       Optional[string]    `json:"title"`
}

// MessagePatch is the storage-level partial update of a message row.
type MessagePatch struct {
	ExpireAt    Optional[time.Time]
	IsTransient Optional[bool]
	Text        Optional[string]
	Title       Optional[string]
}

// IsEmpty reports whether no column would change.
func (p MessagePatch) IsEmpty() bool {
	return !p.ExpireAt.IsSet() && !p.IsTransient.IsSet() && !p.Text.IsSet() && !p.Title.IsSet()
}

// File is the metadata row of a file attached to a message. The content
// lives in a FileContentStore.
type File struct {
	ContentType string    `db:"content_type"`
	FileName    string    `db:"file_name"`
	MessageID   uuid.UUID `db:"message_id"`
	SetAt       time.Time `db:"set_at"`
}

// TableName returns the name of the database table
// associated with the File model.
func (f File) TableName() string {
	return "files"
}

func (f File) ToResponse() FileResponse {
	return FileResponse{
		ContentType: f.ContentType,
		FileName:    f.FileName,
		MessageID:   f.MessageID,
		SetAt:       f.SetAt,
	}
}

type FileResponse struct {
	ContentType string    `json:"content_type"`
	FileName    string    `json:"file_name"`
	MessageID   uuid.UUID `json:"message_id"`
	Link        string    `json:"link"`
	PublicLink  string    `json:"public_link"`
	SetAt       time.Time `json:"set_at"`
}

func (f *FileResponse) Path() string {
	return "/users/@me/messages/" + f.MessageID.String() + "/files/" + url.PathEscape(f.FileName)
}

func (f *FileResponse) PublicPath() string {
	return "/messages/" + f.MessageID.String() + "/files/" + url.PathEscape(f.FileName)
}

func (f *FileResponse) WithPaths(hostname string) {
	hostname = strings.TrimRight(hostname, "/")
	f.Link = hostname + f.Path()
	f.PublicLink = hostname + f.PublicPath()
}

// View records that a device has seen a message.
type View struct {
	DeviceID  int64     `db:"device_id"`
	MessageID uuid.UUID `db:"message_id"`
	CreatedAt time.Time `db:"created_at"`
}

// TableName returns the name of the database table
// associated with the View model.
func (v View) TableName() string {
	return "views"
}

// FileUpload is a file received by PUT /users/@me/messages/{id}/files/{name}.
// An empty ContentType is sniffed from the content.
type FileUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}
