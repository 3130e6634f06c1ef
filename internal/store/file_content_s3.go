package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// s3API is the part of *s3.Client used by [s3ContentStore].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3ContentStore keeps file content in a bucket under "<message_id>/<file name>".
type s3ContentStore struct {
	client s3API
	bucket string
}

// NewS3ContentStore builds an S3 client from cfg. Static credentials are
// used when both keys are set, otherwise the default AWS chain applies.
func NewS3ContentStore(ctx context.Context, cfg config.S3, logger *logger.Logger) (FileContentStore, error) {
	opts := make([]func(*awsconfig.LoadOptions) error, 0, 2)
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 file content store")
	return &s3ContentStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *s3ContentStore) key(messageID uuid.UUID, fileName string) *string {
	return aws.String(messageID.String() + "/" + fileName)
}

func (s *s3ContentStore) Save(ctx context.Context, messageID uuid.UUID, fileName string, content io.Reader) error {
	// request signing needs a seekable body
	body, ok := content.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(content)
		if err != nil {
			return fmt.Errorf("error reading file content: %w", err)
		}
		body = bytes.NewReader(data)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(messageID, fileName),
		Body:   body,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ContentStore.Save").Str("bucket", s.bucket).Msg("failed to put object")
		return fmt.Errorf("error saving file content: %w", err)
	}
	return nil
}

func (s *s3ContentStore) Read(ctx context.Context, messageID uuid.UUID, fileName string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(messageID, fileName),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrContentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*s3ContentStore.Read").Str("bucket", s.bucket).Msg("failed to get object")
		return nil, fmt.Errorf("error reading file content: %w", err)
	}
	return out.Body, nil
}

func (s *s3ContentStore) Delete(ctx context.Context, messageID uuid.UUID, fileName string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(messageID, fileName),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ContentStore.Delete").Str("bucket", s.bucket).Msg("failed to delete object")
		return fmt.Errorf("error deleting file content: %w", err)
	}
	return nil
}
