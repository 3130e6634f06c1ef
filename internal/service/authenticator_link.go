// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/adapter"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

// linkResolver looks a token up; it returns [ErrUnknownLink] for tokens it
// does not know.
type linkResolver func(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error)

type linkAuthenticator struct {
	resolve linkResolver
	now     func() time.Time
}

// NewLocalLinkAuthenticator resolves tokens in the message_links table.
func NewLocalLinkAuthenticator(links store.MessageLinkRepository) LinkAuthenticator {
	return &linkAuthenticator{
		resolve: func(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error) {
			link, err := links.GetMessageLink(ctx, messageID, token)
			if errors.Is(err, store.ErrNotFound) {
				return models.MessageLink{}, ErrUnknownLink
			}
			return link, err
		},
		now: time.Now,
	}
}

// NewRemoteLinkAuthenticator resolves tokens through the auth service.
func NewRemoteLinkAuthenticator(auth adapter.AuthAdapter) LinkAuthenticator {
	return &linkAuthenticator{
		resolve: func(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error) {
			link, err := auth.GetMessageLink(ctx, messageID, token)
			var upstream *adapter.UpstreamError
			if errors.As(err, &upstream) && upstream.Status == http.StatusNotFound {
				return models.MessageLink{}, ErrUnknownLink
			}
			return link, err
		},
		now: time.Now,
	}
}

// AuthenticateLink returns the link when token is a live link of messageID.
// A missing token is [ErrMissingLink]; an unknown, foreign or expired token
// is [ErrUnknownLink].
func (a *linkAuthenticator) AuthenticateLink(ctx context.Context, messageID uuid.UUID, token string) (models.MessageLink, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.MessageLink{}, ErrMissingLink
	}

	link, err := a.resolve(ctx, messageID, token)
	if errors.Is(err, ErrUnknownLink) {
		log.Debug().Str("message_id", messageID.String()).Msg("unknown message link")
		return models.MessageLink{}, err
	}
	if err != nil {
		log.Err(err).Str("message_id", messageID.String()).Msg("message link lookup failed")
		return models.MessageLink{}, fmt.Errorf("message link lookup failed: %w", err)
	}

	if link.MessageID != messageID {
		return models.MessageLink{}, ErrUnknownLink
	}
	if link.IsExpired(a.now()) {
		log.Debug().Str("message_id", messageID.String()).Msg("expired message link")
		return models.MessageLink{}, ErrUnknownLink
	}

	return link, nil
}
