package hosting

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"photoindex/internal/models"
)

// Store is the hosting collaborator backed by an S3-compatible object
// store. It only needs to put objects and answer existence checks; the
// public URLs are derived separately by URLs.
type Store struct {
	client *minio.Client
	bucket string
}

func NewStore(ctx context.Context, cfg models.HostingConfig) (*Store, error) {
	const op = "hosting.NewStore"

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", op, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%s: %v", op, err)
		}
	}

	return &Store{client: client, bucket: cfg.Bucket}, nil
}

// Upload puts the file at localPath into the bucket under objectName.
func (s *Store) Upload(ctx context.Context, localPath, objectName string) error {
	const op = "hosting.Upload"

	contentType := mime.TypeByExtension(filepath.Ext(objectName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.FPutObject(ctx, s.bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("%s: %s: %v", op, objectName, err)
	}
	return nil
}

// Exists reports whether objectName is already hosted.
func (s *Store) Exists(ctx context.Context, objectName string) (bool, error) {
	const op = "hosting.Exists"

	_, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("%s: %s: %v", op, objectName, err)
	}
	return true, nil
}
