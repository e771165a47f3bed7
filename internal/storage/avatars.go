package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
)

// AvatarStore stores user avatar images in an S3-compatible object store.
type AvatarStore struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// NewAvatarStore builds an S3 client with static credentials. An empty
// endpoint targets AWS proper; a non-empty endpoint (e.g. minio) switches to
// path-style addressing.
func NewAvatarStore(ctx context.Context, region, endpoint, accessKey, secretKey, bucket string) (*AvatarStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &AvatarStore{
		client:   client,
		bucket:   bucket,
		region:   region,
		endpoint: endpoint,
	}, nil
}

// storageKey returns a date-partitioned object key for a new avatar.
func storageKey() string {
	d := time.Now()
	return fmt.Sprintf("avatars/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.New())
}

// Upload stores an avatar image and returns its public URL and object key.
func (s *AvatarStore) Upload(ctx context.Context, data []byte, contentType string) (string, string, error) {
	key := storageKey()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Log.Errorw("avatar upload failed", "bucket", s.bucket, "key", key, "error", err)
		return "", "", err
	}

	logger.Log.Infow("avatar uploaded", "bucket", s.bucket, "key", key, "size", len(data))
	return s.objectURL(key), key, nil
}

// Delete removes a previously uploaded avatar object.
func (s *AvatarStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Log.Errorw("avatar delete failed", "bucket", s.bucket, "key", key, "error", err)
		return err
	}

	logger.Log.Infow("avatar deleted", "bucket", s.bucket, "key", key)
	return nil
}

func (s *AvatarStore) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
