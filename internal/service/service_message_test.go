package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/mock"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testHostname = "https://keeper.example.org"

var fileColumns = []string{"content_type", "file_name", "message_id", "set_at"}

type messageFixture struct {
	messages    *mock.MockMessageRepository
	permissions *mock.MockPermissionRepository
	files       *mock.MockFileRepository
	contents    *mock.MockFileContentStore
	db          *sqlx.DB
	sql         sqlmock.Sqlmock
	queue       *recordingQueue
	svc         *messageService
	now         time.Time
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &messageFixture{
		messages:    mock.NewMockMessageRepository(ctrl),
		permissions: mock.NewMockPermissionRepository(ctrl),
		files:       mock.NewMockFileRepository(ctrl),
		contents:    mock.NewMockFileContentStore(ctrl),
		queue:       &recordingQueue{},
		now:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.db, f.sql = newSQLMock(t)

	storages := &store.Storages{
		Messages:    f.messages,
		Permissions: f.permissions,
		Files:       f.files,
		Contents:    f.contents,
	}
	f.svc = NewMessageService(storages, f.queue, testHostname, logger.Nop()).(*messageService)
	f.svc.now = func() time.Time { return f.now }
	return f
}

// expectFiles makes the next IterFiles call return rows from sqlmock.
func (f *messageFixture) expectFiles(rows *sqlmock.Rows) {
	f.files.EXPECT().IterFiles().Return(store.NewCollection[models.File](f.db, store.FilesTable))
	f.sql.ExpectQuery(regexp.QuoteMeta("FROM files WHERE message_id IN")).WillReturnRows(rows)
}

func ptr[T any](v T) *T { return &v }

// ── GetMessage ──────────────────────────────────────────────────────────────

func TestMessageService_GetMessage_OwnerWithFiles(t *testing.T) {
	f := newMessageFixture(t)
	owner := uuid.New()
	message := models.Message{ID: uuid.New(), UserID: owner, Text: ptr("hi"), CreatedAt: f.now}

	f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil)
	f.expectFiles(sqlmock.NewRows(fileColumns).
		AddRow("text/plain", "a b.txt", message.ID.String(), f.now))

	got, err := f.svc.GetMessage(context.Background(), owner, message.ID)

	require.NoError(t, err)
	assert.Equal(t, testHostname+"/users/@me/messages/"+message.ID.String(), got.Link)
	assert.Equal(t, testHostname+"/messages/"+message.ID.String(), got.PublicLink)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "a b.txt", got.Files[0].FileName)
	assert.Equal(t, testHostname+"/messages/"+message.ID.String()+"/files/a%20b.txt", got.Files[0].PublicLink)
}

func TestMessageService_GetMessage_Access(t *testing.T) {
	owner, other := uuid.New(), uuid.New()
	messageID := uuid.New()
	message := models.Message{ID: messageID, UserID: owner}

	tests := []struct {
		name    string
		setup   func(f *messageFixture)
		wantErr error
	}{
		{
			name: "missing message",
			setup: func(f *messageFixture) {
				f.messages.EXPECT().GetMessage(gomock.Any(), messageID).Return(models.Message{}, store.ErrNotFound)
			},
			wantErr: ErrMessageNotFound,
		},
		{
			name: "no permission",
			setup: func(f *messageFixture) {
				f.messages.EXPECT().GetMessage(gomock.Any(), messageID).Return(message, nil)
				f.permissions.EXPECT().GetPermission(gomock.Any(), messageID, other).Return(models.Permission{}, store.ErrNotFound)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "permission without read",
			setup: func(f *messageFixture) {
				f.messages.EXPECT().GetMessage(gomock.Any(), messageID).Return(message, nil)
				f.permissions.EXPECT().GetPermission(gomock.Any(), messageID, other).
					Return(models.Permission{Permissions: models.PermissionEdit}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "read permission",
			setup: func(f *messageFixture) {
				f.messages.EXPECT().GetMessage(gomock.Any(), messageID).Return(message, nil)
				f.permissions.EXPECT().GetPermission(gomock.Any(), messageID, other).
					Return(models.Permission{Permissions: models.PermissionRead}, nil)
				f.expectFiles(sqlmock.NewRows(fileColumns))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMessageFixture(t)
			tt.setup(f)

			got, err := f.svc.GetMessage(context.Background(), other, messageID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, messageID, got.ID)
			assert.NotNil(t, got.Files)
		})
	}
}

// ── CreateMessage ───────────────────────────────────────────────────────────

func TestMessageService_CreateMessage(t *testing.T) {
	f := newMessageFixture(t)
	owner := uuid.New()
	expireAfter := models.Timedelta(90 * time.Minute)

	f.messages.EXPECT().SetMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, message models.Message) (models.Message, error) {
			assert.Equal(t, owner, message.UserID)
			assert.True(t, message.IsTransient)
			require.NotNil(t, message.ExpireAt)
			assert.Equal(t, f.now.Add(90*time.Minute), *message.ExpireAt)
			message.CreatedAt = f.now
			return message, nil
		})

	got, err := f.svc.CreateMessage(context.Background(), owner, models.ReceivedMessage{
		ExpireAfter: &expireAfter,
		Title:       ptr("title"),
	})

	require.NoError(t, err)
	assert.Empty(t, got.Files)
	assert.NotNil(t, got.Files)
	assert.Equal(t, testHostname+"/messages/"+got.ID.String(), got.PublicLink)
}

// ── UpdateMessage ───────────────────────────────────────────────────────────

func TestMessageService_UpdateMessage_NullExpiryClears(t *testing.T) {
	f := newMessageFixture(t)
	owner := uuid.New()
	message := models.Message{ID: uuid.New(), UserID: owner, ExpireAt: ptr(f.now)}

	f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil)
	f.messages.EXPECT().UpdateMessage(gomock.Any(), message.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, patch models.MessagePatch) (models.Message, error) {
			assert.True(t, patch.ExpireAt.IsNull())
			assert.True(t, patch.Text.IsNull())
			assert.False(t, patch.Title.IsSet())
			updated := message
			updated.ExpireAt = nil
			updated.Text = nil
			return updated, nil
		})
	f.expectFiles(sqlmock.NewRows(fileColumns))

	got, err := f.svc.UpdateMessage(context.Background(), owner, message.ID, models.MessageUpdate{
		ExpireAfter: models.NullOf[models.Timedelta](),
		Text:        models.NullOf[string](),
	})

	require.NoError(t, err)
	assert.Nil(t, got.ExpireAt)
}

func TestMessageService_UpdateMessage_NeedsEdit(t *testing.T) {
	f := newMessageFixture(t)
	other := uuid.New()
	message := models.Message{ID: uuid.New(), UserID: uuid.New()}

	f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil)
	f.permissions.EXPECT().GetPermission(gomock.Any(), message.ID, other).
		Return(models.Permission{Permissions: models.PermissionRead | models.PermissionFiles}, nil)

	_, err := f.svc.UpdateMessage(context.Background(), other, message.ID, models.MessageUpdate{Title: models.Some("x")})

	assert.ErrorIs(t, err, ErrForbidden)
}

// ── DeleteMessages ──────────────────────────────────────────────────────────

func TestMessageService_DeleteMessages_RemovesRowsAndContent(t *testing.T) {
	f := newMessageFixture(t)
	owner := uuid.New()
	owned := uuid.New()
	foreign := uuid.New()

	require.NoError(t, f.svc.DeleteMessages(context.Background(), owner, []uuid.UUID{owned, foreign}))
	require.Len(t, f.queue.jobs, 1)
	assert.Equal(t, deleteMessagesJob, f.queue.jobs[0].kind)

	f.messages.EXPECT().IterMessagesForUser(owner).
		Return(store.NewCollection[models.Message](f.db, store.MessagesTable).Filter(store.OpEq, "user_id", owner))
	f.sql.ExpectQuery(regexp.QuoteMeta("FROM messages WHERE user_id = $1 AND id IN ($2,$3)")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "expire_at", "is_transient", "text", "title", "user_id"}).
			AddRow(owned.String(), f.now, nil, true, nil, nil, owner.String()))
	f.files.EXPECT().IterFiles().Return(store.NewCollection[models.File](f.db, store.FilesTable))
	f.sql.ExpectQuery(regexp.QuoteMeta("FROM files WHERE message_id IN ($1)")).
		WithArgs(owned.String()).
		WillReturnRows(sqlmock.NewRows(fileColumns).AddRow("text/plain", "a.txt", owned.String(), f.now))
	f.messages.EXPECT().ClearMessages().Return(store.NewClear(f.db, store.MessagesTable, nil))
	f.sql.ExpectExec(regexp.QuoteMeta("DELETE FROM messages WHERE id IN ($1)")).
		WithArgs(owned.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.contents.EXPECT().Delete(gomock.Any(), owned, "a.txt").Return(nil)

	require.NoError(t, f.queue.jobs[0].run(context.Background()))
}

func TestMessageService_DeleteMessages_NothingOwned(t *testing.T) {
	f := newMessageFixture(t)
	owner := uuid.New()

	require.NoError(t, f.svc.DeleteMessages(context.Background(), owner, []uuid.UUID{uuid.New()}))

	f.messages.EXPECT().IterMessagesForUser(owner).
		Return(store.NewCollection[models.Message](f.db, store.MessagesTable).Filter(store.OpEq, "user_id", owner))
	f.sql.ExpectQuery(regexp.QuoteMeta("FROM messages")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	require.NoError(t, f.queue.jobs[0].run(context.Background()))
}

func TestMessageService_DeleteMessages_QueueRejects(t *testing.T) {
	f := newMessageFixture(t)
	queueErr := errors.New("queue is full")
	f.queue.err = queueErr

	err := f.svc.DeleteMessages(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})

	assert.ErrorIs(t, err, queueErr)
}

func TestMessageService_DeleteMessages_NoQueue(t *testing.T) {
	f := newMessageFixture(t)
	f.svc.queue = nil

	err := f.svc.DeleteMessages(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, store.ErrNoQueue)
}

// ── GetLinkedMessage ────────────────────────────────────────────────────────

func TestMessageService_GetLinkedMessage(t *testing.T) {
	t.Run("link without read", func(t *testing.T) {
		f := newMessageFixture(t)
		_, err := f.svc.GetLinkedMessage(context.Background(), models.MessageLink{Access: models.PermissionFiles})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("link bound to a file", func(t *testing.T) {
		f := newMessageFixture(t)
		link := models.MessageLink{MessageID: uuid.New(), Access: models.PermissionRead | models.PermissionFiles, Resource: ptr("a.txt")}

		_, err := f.svc.GetLinkedMessage(context.Background(), link)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("read link", func(t *testing.T) {
		f := newMessageFixture(t)
		message := models.Message{ID: uuid.New(), UserID: uuid.New()}

		f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil)
		f.expectFiles(sqlmock.NewRows(fileColumns))

		got, err := f.svc.GetLinkedMessage(context.Background(), models.MessageLink{MessageID: message.ID, Access: models.PermissionRead})
		require.NoError(t, err)
		assert.Equal(t, message.ID, got.ID)
	})
}
