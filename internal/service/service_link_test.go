package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/mock"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type linkFixture struct {
	messages *mock.MockMessageRepository
	links    *mock.MockMessageLinkRepository
	svc      *linkService
	now      time.Time
}

func newLinkFixture(t *testing.T) *linkFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &linkFixture{
		messages: mock.NewMockMessageRepository(ctrl),
		links:    mock.NewMockMessageLinkRepository(ctrl),
		now:      time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC),
	}
	f.svc = NewLinkService(&store.Storages{
		Messages:     f.messages,
		Permissions:  mock.NewMockPermissionRepository(ctrl),
		MessageLinks: f.links,
	}, logger.Nop()).(*linkService)
	f.svc.now = func() time.Time { return f.now }
	f.svc.newToken = func() (string, error) { return "token-1", nil }
	return f
}

func TestLinkService_CreateLink_Defaults(t *testing.T) {
	f := newLinkFixture(t)
	owner := uuid.New()
	message := models.Message{ID: uuid.New(), UserID: owner}
	expiresAfter := models.Timedelta(time.Hour)

	f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil)
	f.links.EXPECT().SetMessageLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, link models.MessageLink) (models.MessageLink, error) {
			return link, nil
		})

	got, err := f.svc.CreateLink(context.Background(), owner, message.ID, models.ReceivedMessageLink{ExpiresAfter: &expiresAfter})

	require.NoError(t, err)
	assert.Equal(t, "token-1", got.Token)
	assert.Equal(t, message.ID, got.MessageID)
	assert.Equal(t, models.PermissionRead|models.PermissionFiles, got.Access)
	require.NotNil(t, got.ExpiresAt)
	assert.Equal(t, f.now.Add(time.Hour), *got.ExpiresAt)
	assert.Nil(t, got.Resource)
}

func TestLinkService_CreateLink_ExplicitAccess(t *testing.T) {
	f := newLinkFixture(t)
	owner := uuid.New()
	message := models.Message{ID: uuid.New(), UserID: owner}
	access := models.PermissionRead

	f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil)
	f.links.EXPECT().SetMessageLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, link models.MessageLink) (models.MessageLink, error) {
			return link, nil
		})

	got, err := f.svc.CreateLink(context.Background(), owner, message.ID,
		models.ReceivedMessageLink{Access: &access, Resource: ptr("a.txt")})

	require.NoError(t, err)
	assert.Equal(t, models.PermissionRead, got.Access)
	assert.Nil(t, got.ExpiresAt)
	assert.Equal(t, "a.txt", *got.Resource)
}

func TestLinkService_NonOwnerSeesNotFound(t *testing.T) {
	f := newLinkFixture(t)
	message := models.Message{ID: uuid.New(), UserID: uuid.New()}

	f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil).Times(3)

	_, err := f.svc.ListLinks(context.Background(), uuid.New(), message.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	_, err = f.svc.CreateLink(context.Background(), uuid.New(), message.ID, models.ReceivedMessageLink{})
	assert.ErrorIs(t, err, ErrMessageNotFound)

	err = f.svc.DeleteLink(context.Background(), uuid.New(), message.ID, "token-1")
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestLinkService_DeleteLink(t *testing.T) {
	f := newLinkFixture(t)
	owner := uuid.New()
	message := models.Message{ID: uuid.New(), UserID: owner}

	f.messages.EXPECT().GetMessage(gomock.Any(), message.ID).Return(message, nil).Times(2)
	f.links.EXPECT().DeleteMessageLink(gomock.Any(), message.ID, "token-1").Return(true, nil)
	f.links.EXPECT().DeleteMessageLink(gomock.Any(), message.ID, "gone").Return(false, nil)

	assert.NoError(t, f.svc.DeleteLink(context.Background(), owner, message.ID, "token-1"))
	assert.ErrorIs(t, f.svc.DeleteLink(context.Background(), owner, message.ID, "gone"), ErrLinkNotFound)
}

func TestLinkService_GetLink(t *testing.T) {
	f := newLinkFixture(t)
	messageID := uuid.New()
	link := models.MessageLink{Token: "token-1", MessageID: messageID, Access: models.PermissionRead}

	f.links.EXPECT().GetMessageLink(gomock.Any(), messageID, "token-1").Return(link, nil)
	f.links.EXPECT().GetMessageLink(gomock.Any(), messageID, "other").Return(models.MessageLink{}, store.ErrNotFound)

	got, err := f.svc.GetLink(context.Background(), messageID, "token-1")
	require.NoError(t, err)
	assert.Equal(t, link, got)

	_, err = f.svc.GetLink(context.Background(), messageID, "other")
	assert.ErrorIs(t, err, ErrLinkNotFound)

	_, err = f.svc.GetLink(context.Background(), messageID, "")
	assert.ErrorIs(t, err, ErrMissingLink)
}
