package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/mock"
	"github.com/MKhiriev/go-message-keeper/internal/service"
	"github.com/MKhiriev/go-message-keeper/internal/validators"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// newTestHandler returns a Handler with a nop logger. Middleware tests that
// never reach a service use it directly.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), maxUploadSize: defaultMaxUploadSize}
}

type testServices struct {
	auth        *mock.MockAuthenticator
	linkAuth    *mock.MockLinkAuthenticator
	users       *mock.MockUserService
	devices     *mock.MockDeviceService
	messages    *mock.MockMessageService
	views       *mock.MockViewService
	links       *mock.MockLinkService
	files       *mock.MockFileService
	permissions *mock.MockPermissionService
}

// newRouter wires a Handler over mock services and returns its router.
func newRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testServices{
		auth:        mock.NewMockAuthenticator(ctrl),
		linkAuth:    mock.NewMockLinkAuthenticator(ctrl),
		users:       mock.NewMockUserService(ctrl),
		devices:     mock.NewMockDeviceService(ctrl),
		messages:    mock.NewMockMessageService(ctrl),
		views:       mock.NewMockViewService(ctrl),
		links:       mock.NewMockLinkService(ctrl),
		files:       mock.NewMockFileService(ctrl),
		permissions: mock.NewMockPermissionService(ctrl),
	}

	h := &Handler{
		services: &service.Services{
			Authenticator:     m.auth,
			LinkAuthenticator: m.linkAuth,
			UserService:       m.users,
			DeviceService:     m.devices,
			MessageService:    m.messages,
			ViewService:       m.views,
			LinkService:       m.links,
			FileService:       m.files,
			PermissionService: m.permissions,
		},
		validator:      validators.NewRequestValidator(),
		maxUploadSize:  64,
		requestTimeout: 5 * time.Second,
		logger:         logger.Nop(),
	}
	return h.Init(), m
}

var (
	testUser = models.AuthUser{
		ID:        uuid.MustParse("0190a3b2-7c41-7d2e-9a1b-2f3c4d5e6f70"),
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Flags:     models.FlagCreateUser,
		Username:  "alice",
	}
	testCreds     = models.Credentials{Username: "alice", Password: "correct horse"}
	testMessageID = uuid.MustParse("0190a3b2-7c41-7d2e-9a1b-2f3c4d5e6f71")
)

// expectLogin makes the authenticator accept testCreds as testUser.
func (m *testServices) expectLogin() {
	m.auth.EXPECT().Authenticate(gomock.Any(), testCreds).Return(testUser, nil)
}

func newRequest(method, target string, body []byte) *http.Request {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	return httptest.NewRequest(method, target, reader)
}

func authedRequest(method, target string, body []byte) *http.Request {
	req := newRequest(method, target, body)
	req.SetBasicAuth(testCreds.Username, testCreds.Password)
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func ptr[T any](v T) *T {
	return &v
}
