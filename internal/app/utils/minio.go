package utils

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const imagePrefix = "img/"

// ImageStore uploads ship photos to a MinIO bucket.
type ImageStore struct {
	client *minio.Client
	bucket string
}

// NewImageStore connects to MinIO and creates the bucket when missing.
func NewImageStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	found, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !found {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}
	return &ImageStore{client: client, bucket: bucket}, nil
}

// ObjectName builds a unique object name keeping the upload's extension.
func ObjectName(filename string) string {
	return imagePrefix + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

// UploadImage stores the reader under a fresh object name and returns it.
func (s *ImageStore) UploadImage(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	objectName := ObjectName(filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio put %s: %w", objectName, err)
	}
	return objectName, nil
}

func (s *ImageStore) RemoveImage(ctx context.Context, objectName string) error {
	if objectName == "" {
		return nil
	}
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
