package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-message-keeper/internal/service"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var otherUserID = uuid.MustParse("0190a3b2-7c41-7d2e-9a1b-2f3c4d5e6f80")

func TestSetPermission(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		err        error
		expectCall bool
		wantStatus int
	}{
		{name: "granted", target: otherUserID.String(), body: `{"permissions":3}`, expectCall: true, wantStatus: http.StatusOK},
		{name: "owner", target: otherUserID.String(), body: `{"permissions":3}`, expectCall: true, err: service.ErrSelfPermission, wantStatus: http.StatusBadRequest},
		{name: "unknown user", target: otherUserID.String(), body: `{"permissions":1}`, expectCall: true, err: service.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "user id not a uuid", target: "bob", body: `{"permissions":1}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			m.expectLogin()
			if tt.expectCall {
				m.permissions.EXPECT().
					SetPermission(gomock.Any(), testUser.ID, testMessageID, otherUserID, gomock.Any()).
					Return(models.Permission{MessageID: testMessageID, UserID: otherUserID, Permissions: 3}, tt.err)
			}

			rr := serve(router, authedRequest(http.MethodPut, messagePath+"/permissions/"+tt.target, []byte(tt.body)))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestListGetDeletePermissions(t *testing.T) {
	router, m := newRouter(t)
	m.auth.EXPECT().Authenticate(gomock.Any(), testCreds).Return(testUser, nil).Times(3)

	permission := models.Permission{MessageID: testMessageID, UserID: otherUserID, Permissions: models.PermissionRead}
	m.permissions.EXPECT().ListPermissions(gomock.Any(), testUser.ID, testMessageID).Return([]models.Permission{permission}, nil)
	m.permissions.EXPECT().GetPermission(gomock.Any(), testUser.ID, testMessageID, otherUserID).Return(models.Permission{}, service.ErrPermissionNotFound)
	m.permissions.EXPECT().DeletePermission(gomock.Any(), testUser.ID, testMessageID, otherUserID).Return(nil)

	rr := serve(router, authedRequest(http.MethodGet, messagePath+"/permissions", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"message_id":"`+testMessageID.String()+`","user_id":"`+otherUserID.String()+`","permissions":1}]`, rr.Body.String())

	rr = serve(router, authedRequest(http.MethodGet, messagePath+"/permissions/"+otherUserID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, authedRequest(http.MethodDelete, messagePath+"/permissions/"+otherUserID.String(), nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
