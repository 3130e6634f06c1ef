package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/service"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const messagePath = "/users/@me/messages/0190a3b2-7c41-7d2e-9a1b-2f3c4d5e6f71"

func testMessage() models.MessageResponse {
	message := models.Message{
		ID:          testMessageID,
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		IsTransient: true,
		Title:       ptr("hello"),
		UserID:      testUser.ID,
	}.ToResponse()
	message.WithPaths("https://keeper.example.org")
	return message
}

func TestListMessages(t *testing.T) {
	router, m := newRouter(t)
	m.expectLogin()
	m.messages.EXPECT().ListMessages(gomock.Any(), testUser.ID).Return([]models.MessageResponse{testMessage()}, nil)

	rr := serve(router, authedRequest(http.MethodGet, "/users/@me/messages", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "https://keeper.example.org"+messagePath, got[0].Link)
	assert.Equal(t, "https://keeper.example.org/messages/"+testMessageID.String(), got[0].PublicLink)
	assert.Empty(t, got[0].Files)
}

func TestCreateMessage(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, m := newRouter(t)
		m.expectLogin()
		m.messages.EXPECT().
			CreateMessage(gomock.Any(), testUser.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, received models.ReceivedMessage) (models.MessageResponse, error) {
				require.NotNil(t, received.ExpireAfter)
				assert.Equal(t, time.Hour, received.ExpireAfter.Duration())
				assert.False(t, received.Transient())
				return testMessage(), nil
			})

		body := `{"title":"hello","expire_after":3600,"is_transient":false}`
		rr := serve(router, authedRequest(http.MethodPost, "/users/@me/messages", []byte(body)))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("expiry too short", func(t *testing.T) {
		router, m := newRouter(t)
		m.expectLogin()

		rr := serve(router, authedRequest(http.MethodPost, "/users/@me/messages", []byte(`{"expire_after":1}`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", err: service.ErrMessageNotFound, wantStatus: http.StatusNotFound},
		{name: "not permitted", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			m.expectLogin()
			m.messages.EXPECT().GetMessage(gomock.Any(), testUser.ID, testMessageID).Return(testMessage(), tt.err)

			rr := serve(router, authedRequest(http.MethodGet, messagePath, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestGetMessage_InvalidID(t *testing.T) {
	router, m := newRouter(t)
	m.expectLogin()

	rr := serve(router, authedRequest(http.MethodGet, "/users/@me/messages/42", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateMessage_NullExpiry(t *testing.T) {
	router, m := newRouter(t)
	m.expectLogin()
	m.messages.EXPECT().
		UpdateMessage(gomock.Any(), testUser.ID, testMessageID, gomock.Any()).
		DoAndReturn(func(_ any, _, _ uuid.UUID, update models.MessageUpdate) (models.MessageResponse, error) {
			assert.True(t, update.ExpireAfter.IsNull())
			assert.False(t, update.Title.IsSet())
			return testMessage(), nil
		})

	rr := serve(router, authedRequest(http.MethodPatch, messagePath, []byte(`{"expire_after":null}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteMessages(t *testing.T) {
	other := uuid.MustParse("0190a3b2-7c41-7d2e-9a1b-2f3c4d5e6f72")

	t.Run("accepted", func(t *testing.T) {
		router, m := newRouter(t)
		m.expectLogin()
		m.messages.EXPECT().DeleteMessages(gomock.Any(), testUser.ID, []uuid.UUID{testMessageID, other}).Return(nil)

		body := `["` + testMessageID.String() + `","` + other.String() + `"]`
		rr := serve(router, authedRequest(http.MethodDelete, "/users/@me/messages", []byte(body)))
		assert.Equal(t, http.StatusAccepted, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router, m := newRouter(t)
		m.expectLogin()

		rr := serve(router, authedRequest(http.MethodDelete, "/users/@me/messages", []byte(`["nope"]`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMarkViewed(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "viewed", wantStatus: http.StatusNoContent},
		{name: "unknown device", err: service.ErrDeviceNotFound, wantStatus: http.StatusNotFound},
		{name: "already viewed", err: service.ErrAlreadyViewed, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			m.expectLogin()
			m.views.EXPECT().MarkViewed(gomock.Any(), testUser.ID, testMessageID, "phone").Return(tt.err)

			rr := serve(router, authedRequest(http.MethodPut, messagePath+"/views/phone", nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
