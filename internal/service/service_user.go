package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-message-keeper/internal/crypto"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/internal/utils"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

type userService struct {
	users    store.UserRepository
	messages store.MessageRepository
	files    store.FileRepository
	contents store.FileContentStore
	hasher   crypto.PasswordHasher
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewUserService manages the accounts stored in this database. Deleting an
// account also removes the content of its files when storages carries the
// message, file and content stores.
func NewUserService(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		users:    storages.Users,
		messages: storages.Messages,
		files:    storages.Files,
		contents: storages.Contents,
		hasher:   hasher,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func (u *userService) CreateUser(ctx context.Context, principal models.AuthUser, username string, user models.ReceivedUser) (models.AuthUser, error) {
	log := logger.FromContext(ctx)

	if err := RequireFlags(principal, models.FlagCreateUser); err != nil {
		return models.AuthUser{}, err
	}

	hash, err := u.hasher.Hash(ctx, user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("failed to hash password")
		return models.AuthUser{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := u.users.SetUser(ctx, models.User{
		ID:           u.ids.Generate(),
		Flags:        user.Flags,
		Username:     username,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return models.AuthUser{}, ErrUserExists
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("username", username).Msg("failed to create user")
		return models.AuthUser{}, fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Str("user_id", created.ID.String()).Str("created_by", principal.ID.String()).Msg("user created")
	return created.ToAuthUser(), nil
}

func (u *userService) UpdateUser(ctx context.Context, principal models.AuthUser, update models.UserUpdate) (models.AuthUser, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return principal, nil
	}

	patch := models.UserPatch{Username: update.Username}
	if password, ok := update.Password.Get(); ok {
		hash, err := u.hasher.Hash(ctx, password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("failed to hash password")
			return models.AuthUser{}, fmt.Errorf("error hashing password: %w", err)
		}
		patch.PasswordHash = models.Some(hash)
	}

	updated, err := u.users.UpdateUser(ctx, principal.ID, patch)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return models.AuthUser{}, ErrUserExists
	case errors.Is(err, store.ErrNotFound):
		return models.AuthUser{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userService.UpdateUser").Str("user_id", principal.ID.String()).Msg("failed to update user")
		return models.AuthUser{}, fmt.Errorf("error updating user: %w", err)
	}

	return updated.ToAuthUser(), nil
}

// DeleteUser removes the account. Its rows cascade in the database; file
// contents are collected first and deleted once the row is gone.
func (u *userService) DeleteUser(ctx context.Context, principal models.AuthUser) error {
	log := logger.FromContext(ctx)

	files, err := u.ownedFiles(ctx, principal.ID)
	if err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Str("user_id", principal.ID.String()).Msg("failed to list files of user")
		return fmt.Errorf("error listing files of user: %w", err)
	}

	deleted, err := u.users.DeleteUser(ctx, principal.ID)
	if err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Str("user_id", principal.ID.String()).Msg("failed to delete user")
		return fmt.Errorf("error deleting user: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}

	// the account is gone either way, leftover content is only logged
	for _, file := range files {
		if err = u.contents.Delete(ctx, file.MessageID, file.FileName); err != nil {
			log.Err(err).Str("func", "*userService.DeleteUser").
				Str("message_id", file.MessageID.String()).Str("file_name", file.FileName).
				Msg("failed to delete file content")
		}
	}

	log.Info().Str("user_id", principal.ID.String()).Int("files", len(files)).Msg("user deleted")
	return nil
}

func (u *userService) ownedFiles(ctx context.Context, userID uuid.UUID) ([]models.File, error) {
	if u.messages == nil || u.files == nil || u.contents == nil {
		return nil, nil
	}

	owned, err := store.Map(ctx, u.messages.IterMessagesForUser(userID),
		func(message models.Message) uuid.UUID { return message.ID })
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, nil
	}
	return u.files.IterFiles().Filter(store.OpContains, "message_id", owned).Collect(ctx)
}
