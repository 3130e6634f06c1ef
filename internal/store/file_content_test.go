package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalContentStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	contents, err := NewLocalContentStore(filepath.Join(dir, "files"), logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	messageID := uuid.New()

	require.NoError(t, contents.Save(ctx, messageID, "notes 1.txt", strings.NewReader("hello")))

	_, err = os.Stat(filepath.Join(dir, "files", messageID.String()+"_notes%201.txt"))
	require.NoError(t, err)

	reader, err := contents.Read(ctx, messageID, "notes 1.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "hello", string(data))

	require.NoError(t, contents.Delete(ctx, messageID, "notes 1.txt"))
	_, err = contents.Read(ctx, messageID, "notes 1.txt")
	assert.ErrorIs(t, err, ErrContentNotFound)

	// deleting twice is fine
	assert.NoError(t, contents.Delete(ctx, messageID, "notes 1.txt"))
}

func TestLocalContentStore_NameCannotEscapeDirectory(t *testing.T) {
	dir := t.TempDir()
	contents, err := NewLocalContentStore(dir, logger.Nop())
	require.NoError(t, err)

	messageID := uuid.New()
	require.NoError(t, contents.Save(context.Background(), messageID, "../evil", strings.NewReader("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, messageID.String()+"_..%2Fevil", entries[0].Name())
}

type fakeS3 struct {
	objects map[string][]byte
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3ContentStore_RoundTrip(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	contents := &s3ContentStore{client: fake, bucket: "messages"}

	ctx := context.Background()
	messageID := uuid.New()

	// a reader that is not seekable is buffered
	require.NoError(t, contents.Save(ctx, messageID, "a.txt", io.MultiReader(strings.NewReader("he"), strings.NewReader("llo"))))
	assert.Equal(t, []byte("hello"), fake.objects["messages/"+messageID.String()+"/a.txt"])

	reader, err := contents.Read(ctx, messageID, "a.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, contents.Delete(ctx, messageID, "a.txt"))
	_, err = contents.Read(ctx, messageID, "a.txt")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestS3ContentStore_SaveError(t *testing.T) {
	contents := &s3ContentStore{client: &fakeS3{err: errors.New("denied")}, bucket: "messages"}

	err := contents.Save(context.Background(), uuid.New(), "a.txt", strings.NewReader("x"))
	assert.ErrorContains(t, err, "denied")
}
