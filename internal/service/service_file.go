package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
)

// sniffLen is the prefix http.DetectContentType looks at.
const sniffLen = 512

type fileService struct {
	messageAccess

	files    store.FileRepository
	contents store.FileContentStore
	hostname string

	logger *logger.Logger
}

func NewFileService(storages *store.Storages, hostname string, logger *logger.Logger) FileService {
	return &fileService{
		messageAccess: messageAccess{messages: storages.Messages, permissions: storages.Permissions},
		files:         storages.Files,
		contents:      storages.Contents,
		hostname:      hostname,
		logger:        logger,
	}
}

func (f *fileService) ListFiles(ctx context.Context, userID, messageID uuid.UUID) ([]models.FileResponse, error) {
	if _, err := f.permittedMessage(ctx, userID, messageID, models.PermissionRead); err != nil {
		return nil, err
	}

	files, err := store.Map(ctx,
		f.files.IterFilesForMessage(messageID).OrderBy("set_at", true),
		func(file models.File) models.FileResponse {
			response := file.ToResponse()
			response.WithPaths(f.hostname)
			return response
		})
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	return files, nil
}

// UploadFile stores a new file of the message. The metadata row is written
// first so a duplicate name never touches existing content; it is removed
// again when the content cannot be saved.
func (f *fileService) UploadFile(ctx context.Context, userID, messageID uuid.UUID, upload models.FileUpload) (models.FileResponse, error) {
	log := logger.FromContext(ctx)

	if _, err := f.permittedMessage(ctx, userID, messageID, models.PermissionFiles); err != nil {
		return models.FileResponse{}, err
	}

	content := bufio.NewReaderSize(upload.Content, sniffLen)
	contentType := upload.ContentType
	if contentType == "" {
		head, err := content.Peek(sniffLen)
		if err != nil && !errors.Is(err, io.EOF) {
			return models.FileResponse{}, fmt.Errorf("error reading upload: %w", err)
		}
		contentType = http.DetectContentType(head)
	}

	file, err := f.files.SetFile(ctx, models.File{
		ContentType: contentType,
		FileName:    upload.FileName,
		MessageID:   messageID,
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return models.FileResponse{}, ErrFileExists
	case errors.Is(err, store.ErrInvalidData):
		return models.FileResponse{}, ErrMessageNotFound
	case err != nil:
		log.Err(err).Str("func", "*fileService.UploadFile").Str("message_id", messageID.String()).Msg("failed to save file metadata")
		return models.FileResponse{}, fmt.Errorf("error saving file: %w", err)
	}

	if err = f.contents.Save(ctx, messageID, upload.FileName, content); err != nil {
		log.Err(err).Str("func", "*fileService.UploadFile").Str("message_id", messageID.String()).Msg("failed to save file content")
		if _, rmErr := f.files.DeleteFile(context.WithoutCancel(ctx), messageID, upload.FileName); rmErr != nil {
			log.Err(rmErr).Str("func", "*fileService.UploadFile").Msg("failed to remove orphaned file metadata")
		}
		return models.FileResponse{}, fmt.Errorf("error saving file content: %w", err)
	}

	response := file.ToResponse()
	response.WithPaths(f.hostname)
	return response, nil
}

func (f *fileService) DownloadFile(ctx context.Context, userID, messageID uuid.UUID, fileName string) (models.File, io.ReadCloser, error) {
	if _, err := f.permittedMessage(ctx, userID, messageID, models.PermissionRead); err != nil {
		return models.File{}, nil, err
	}
	return f.open(ctx, messageID, fileName)
}

// DownloadLinkedFile serves a file through a link with files access that is
// not bound to another resource.
func (f *fileService) DownloadLinkedFile(ctx context.Context, link models.MessageLink, fileName string) (models.File, io.ReadCloser, error) {
	if !link.Access.Has(models.PermissionFiles) || !link.AllowsResource(fileName) {
		return models.File{}, nil, ErrForbidden
	}
	return f.open(ctx, link.MessageID, fileName)
}

func (f *fileService) DeleteFile(ctx context.Context, userID, messageID uuid.UUID, fileName string) error {
	log := logger.FromContext(ctx)

	if _, err := f.permittedMessage(ctx, userID, messageID, models.PermissionFiles); err != nil {
		return err
	}

	deleted, err := f.files.DeleteFile(ctx, messageID, fileName)
	if err != nil {
		log.Err(err).Str("func", "*fileService.DeleteFile").Str("message_id", messageID.String()).Msg("failed to delete file metadata")
		return fmt.Errorf("error deleting file: %w", err)
	}
	if !deleted {
		return ErrFileNotFound
	}

	if err = f.contents.Delete(ctx, messageID, fileName); err != nil {
		log.Err(err).Str("func", "*fileService.DeleteFile").Str("message_id", messageID.String()).Msg("failed to delete file content")
		return fmt.Errorf("error deleting file content: %w", err)
	}
	return nil
}

func (f *fileService) open(ctx context.Context, messageID uuid.UUID, fileName string) (models.File, io.ReadCloser, error) {
	file, err := f.files.GetFile(ctx, messageID, fileName)
	if errors.Is(err, store.ErrNotFound) {
		return models.File{}, nil, ErrFileNotFound
	}
	if err != nil {
		return models.File{}, nil, fmt.Errorf("error loading file: %w", err)
	}

	content, err := f.contents.Read(ctx, messageID, fileName)
	if errors.Is(err, store.ErrContentNotFound) {
		logger.FromContext(ctx).Warn().Str("message_id", messageID.String()).Str("file", fileName).Msg("file metadata without content")
		return models.File{}, nil, ErrFileNotFound
	}
	if err != nil {
		return models.File{}, nil, fmt.Errorf("error reading file content: %w", err)
	}
	return file, content, nil
}
