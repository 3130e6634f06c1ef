package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/utils"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs the REST client of the auth service.
// It normalises the base URL from cfg.AuthAddress and loads the optional
// client certificate.
func NewHTTPAuthAdapter(cfg config.Adapter, logger *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.AuthAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAuthAddress, err)
	}

	client, err := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:  baseURL,
		Timeout:  cfg.RequestTimeout,
		CertFile: cfg.CertFile,
		KeyFile:  cfg.KeyFile,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("func", "NewHTTPAuthAdapter").Str("base_url", baseURL).Bool("client_cert", cfg.CertFile != "").Msg("remote auth configured")

	return &httpAuthAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAuthAdapter) GetCurrentUser(ctx context.Context, creds models.Credentials) (models.AuthUser, error) {
	var user models.AuthUser

	resp, err := h.authedRequest(ctx, creds).
		SetResult(&user).
		Get("/users/@me")
	if err = h.check(ctx, "GetCurrentUser", resp, err); err != nil {
		return models.AuthUser{}, err
	}

	return user, nil
}

func (h *httpAuthAdapter) CreateUser(ctx context.Context, creds models.Credentials, username string, body models.ReceivedUser) (models.AuthUser, error) {
	var user models.AuthUser

	resp, err := h.authedRequest(ctx, creds).
		SetHeader("Content-Type", "application/json").
		SetPathParam("username", username).
		SetBody(body).
		SetResult(&user).
		Post("/users/{username}")
	if err = h.check(ctx, "CreateUser", resp, err); err != nil {
		return models.AuthUser{}, err
	}

	return user, nil
}

func (h *httpAuthAdapter) UpdateUser(ctx context.Context, creds models.Credentials, update models.UserUpdate) (models.AuthUser, error) {
	if update.IsEmpty() {
		return models.AuthUser{}, ErrEmptyUpdate
	}

	var user models.AuthUser

	resp, err := h.authedRequest(ctx, creds).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&user).
		Patch("/users/@me")
	if err = h.check(ctx, "UpdateUser", resp, err); err != nil {
		return models.AuthUser{}, err
	}

	return user, nil
}

func (h *httpAuthAdapter) DeleteUser(ctx context.Context, creds models.Credentials) error {
	resp, err := h.authedRequest(ctx, creds).Delete("/users/@me")
	return h.check(ctx, "DeleteUser", resp, err)
}

func (h *httpAuthAdapter) GetMessageLink(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error) {
	var link models.LinkResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("message_id", messageID.String()).
		SetQueryParam("link", token).
		SetResult(&link).
		Get("/messages/{message_id}/links")
	if err = h.check(ctx, "GetMessageLink", resp, err); err != nil {
		return models.MessageLink{}, err
	}

	return link.ToLink(), nil
}

func (h *httpAuthAdapter) authedRequest(ctx context.Context, creds models.Credentials) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetBasicAuth(creds.Username, creds.Password)
}

// check folds the transport error and the response status into one error.
func (h *httpAuthAdapter) check(ctx context.Context, fn string, resp *resty.Response, err error) error {
	log := logger.FromContext(ctx)

	if err != nil {
		if resp != nil && resp.IsSuccess() {
			log.Err(err).Str("func", "*httpAuthAdapter."+fn).Msg("failed to decode auth service response")
			return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
		}
		log.Err(err).Str("func", "*httpAuthAdapter."+fn).Msg("auth service request failed")
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		if resp.StatusCode() >= http.StatusInternalServerError {
			log.Error().Str("func", "*httpAuthAdapter."+fn).Int("status", resp.StatusCode()).Msg("auth service failed")
		}
		return err
	}

	return nil
}
