package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUpstream           = errors.New("auth service error")
	ErrUnavailable        = errors.New("auth service unavailable")
	ErrEmptyUpdate        = errors.New("empty user update")
	ErrInvalidAuthAddress = errors.New("invalid auth service address")
	ErrDecodingResponse   = errors.New("failed to decode auth service response")
)

// UpstreamError is a non-2xx answer of the auth service.
type UpstreamError struct {
	Status          int
	Detail          string
	WWWAuthenticate string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("auth service responded %d: %s", e.Status, e.Detail)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// errorsEnvelope covers both error body shapes: {"errors":[{"detail":...}]}
// and {"detail":...}.
type errorsEnvelope struct {
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
	Detail string `json:"detail"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &UpstreamError{
		Status:          resp.StatusCode(),
		Detail:          parseDetail(resp.StatusCode(), resp.Body()),
		WWWAuthenticate: resp.Header().Get("WWW-Authenticate"),
	}
}

func parseDetail(status int, body []byte) string {
	var envelope errorsEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Errors) > 0 && strings.TrimSpace(envelope.Errors[0].Detail) != "" {
			return envelope.Errors[0].Detail
		}
		if strings.TrimSpace(envelope.Detail) != "" {
			return envelope.Detail
		}
	}

	if status >= http.StatusInternalServerError {
		return "Internal server error"
	}
	return "Unknown error"
}
