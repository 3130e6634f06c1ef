package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/google/uuid"
)

// localContentStore keeps file content in a directory, one file per
// attachment named "<message_id>_<escaped file name>".
type localContentStore struct {
	dir string
}

// NewLocalContentStore creates dir when missing.
func NewLocalContentStore(dir string, logger *logger.Logger) (FileContentStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating files directory %s: %w", dir, err)
	}
	logger.Debug().Str("dir", dir).Msg("creating local file content store")
	return &localContentStore{dir: dir}, nil
}

func (s *localContentStore) path(messageID uuid.UUID, fileName string) string {
	return filepath.Join(s.dir, messageID.String()+"_"+url.PathEscape(fileName))
}

// Save writes to a temporary file first so readers never see partial content.
func (s *localContentStore) Save(ctx context.Context, messageID uuid.UUID, fileName string, content io.Reader) error {
	log := logger.FromContext(ctx)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*localContentStore.Save").Msg("failed to create temporary file")
		return fmt.Errorf("error saving file content: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, content); err != nil {
		_ = tmp.Close()
		log.Err(err).Str("func", "*localContentStore.Save").Msg("failed to write file content")
		return fmt.Errorf("error saving file content: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error saving file content: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path(messageID, fileName)); err != nil {
		log.Err(err).Str("func", "*localContentStore.Save").Msg("failed to move file content in place")
		return fmt.Errorf("error saving file content: %w", err)
	}

	return nil
}

func (s *localContentStore) Read(_ context.Context, messageID uuid.UUID, fileName string) (io.ReadCloser, error) {
	file, err := os.Open(s.path(messageID, fileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}
	return file, nil
}

func (s *localContentStore) Delete(_ context.Context, messageID uuid.UUID, fileName string) error {
	err := os.Remove(s.path(messageID, fileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting file content: %w", err)
	}
	return nil
}
