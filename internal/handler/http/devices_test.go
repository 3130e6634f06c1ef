package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-message-keeper/internal/service"
	"github.com/MKhiriev/go-message-keeper/internal/workers"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListDevices(t *testing.T) {
	router, m := newRouter(t)
	m.expectLogin()
	m.devices.EXPECT().ListDevices(gomock.Any(), testUser.ID).Return([]models.Device{
		{ID: 1, Name: "phone", IsRequiredViewer: true, UserID: testUser.ID},
		{ID: 2, Name: "laptop", Access: ptr(models.PermissionRead), UserID: testUser.ID},
	}, nil)

	rr := serve(router, authedRequest(http.MethodGet, "/users/@me/devices", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"phone","is_required_viewer":true,"access":null},
		{"id":2,"name":"laptop","is_required_viewer":false,"access":1}
	]`, rr.Body.String())
}

func TestCreateDevice(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		expectCall bool
		wantStatus int
	}{
		{name: "created", body: `{"name":"phone"}`, expectCall: true, wantStatus: http.StatusCreated},
		{name: "duplicate", body: `{"name":"phone"}`, expectCall: true, err: service.ErrDeviceExists, wantStatus: http.StatusConflict},
		{name: "name too short", body: `{"name":"p"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			m.expectLogin()
			if tt.expectCall {
				m.devices.EXPECT().
					CreateDevice(gomock.Any(), testUser.ID, models.ReceivedDevice{Name: "phone"}).
					Return(models.Device{ID: 7, Name: "phone", UserID: testUser.ID}, tt.err)
			}

			rr := serve(router, authedRequest(http.MethodPost, "/users/@me/devices", []byte(tt.body)))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateDevice(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router, m := newRouter(t)
		m.expectLogin()
		m.devices.EXPECT().
			UpdateDevice(gomock.Any(), testUser.ID, "phone", models.DeviceUpdate{IsRequiredViewer: models.Some(true)}).
			Return(models.Device{ID: 7, Name: "phone", IsRequiredViewer: true}, nil)

		rr := serve(router, authedRequest(http.MethodPatch, "/users/@me/devices/phone", []byte(`{"is_required_viewer":true}`)))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"is_required_viewer":true`)
	})

	t.Run("missing", func(t *testing.T) {
		router, m := newRouter(t)
		m.expectLogin()
		m.devices.EXPECT().UpdateDevice(gomock.Any(), testUser.ID, "tablet", gomock.Any()).
			Return(models.Device{}, service.ErrDeviceNotFound)

		rr := serve(router, authedRequest(http.MethodPatch, "/users/@me/devices/tablet", []byte(`{"name":"pad"}`)))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Device not found"}`, rr.Body.String())
	})
}

func TestDeleteDevices(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		expectCall bool
		wantStatus int
	}{
		{name: "accepted", body: `["phone","laptop"]`, expectCall: true, wantStatus: http.StatusAccepted},
		{name: "queue full", body: `["phone","laptop"]`, expectCall: true, err: workers.ErrQueueFull, wantStatus: http.StatusServiceUnavailable},
		{name: "empty list", body: `[]`, wantStatus: http.StatusBadRequest},
		{name: "not a list", body: `{"name":"phone"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			m.expectLogin()
			if tt.expectCall {
				m.devices.EXPECT().DeleteDevices(gomock.Any(), testUser.ID, []string{"phone", "laptop"}).Return(tt.err)
			}

			rr := serve(router, authedRequest(http.MethodDelete, "/users/@me/devices", []byte(tt.body)))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
