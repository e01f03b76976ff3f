package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"car-rental/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrBucketNotConfigured = errors.New("storage: bucket not configured")

// S3API is the subset of *s3.Client used here
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Object describes a file to put into the bucket
type Object struct {
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

type S3Store struct {
	client    S3API
	bucket    string
	region    string
	endpoint  string
	publicURL string
	log       *zap.Logger
}

// NewS3Client builds an S3 client from static credentials when given, else from the
// default AWS credential chain. A custom endpoint switches to path-style addressing.
func NewS3Client(ctx context.Context, cfg utils.StorageConfig) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewS3Store(client S3API, cfg utils.StorageConfig, log *zap.Logger) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		log:       log.With(zap.String("storage", "s3")),
	}
}

// Put uploads obj and returns its public URL
func (s *S3Store) Put(ctx context.Context, obj Object) (string, error) {
	if s.bucket == "" {
		return "", ErrBucketNotConfigured
	}

	input := &s3.PutObjectInput{
		Bucket:   aws.String(s.bucket),
		Key:      aws.String(obj.Key),
		Body:     obj.Body,
		Metadata: obj.Metadata,
	}
	if obj.ContentType != "" {
		input.ContentType = aws.String(obj.ContentType)
	}
	if obj.Size > 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.log.Error("Failed to put object",
			zap.Error(err),
			zap.String("bucket", s.bucket),
			zap.String("key", obj.Key),
		)
		return "", fmt.Errorf("put object %s: %w", obj.Key, err)
	}

	s.log.Debug("Object stored",
		zap.String("key", obj.Key),
		zap.Int64("size", obj.Size),
	)

	return s.URL(obj.Key), nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	if s.bucket == "" {
		return ErrBucketNotConfigured
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

// URL returns the public location of key
func (s *S3Store) URL(key string) string {
	escaped := escapeKey(key)

	switch {
	case s.publicURL != "":
		return s.publicURL + "/" + escaped
	case s.endpoint != "":
		return s.endpoint + "/" + s.bucket + "/" + escaped
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
	}
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
