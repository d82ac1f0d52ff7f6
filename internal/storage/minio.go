package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"levelhub/internal/config"
)

// MinioAvatarStorage implements AvatarStorage on a MinIO/S3 bucket.
type MinioAvatarStorage struct {
	cfg    *config.Config
	client *minio.Client
}

// NewMinioAvatarStorage builds the client from config and fails fast when
// the target bucket is missing.
func NewMinioAvatarStorage(ctx context.Context, cfg *config.Config) (*MinioAvatarStorage, error) {
	endpoint := cfg.S3Endpoint
	secure := strings.HasPrefix(endpoint, "https://")
	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.S3Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.S3Bucket)
	}

	return &MinioAvatarStorage{cfg: cfg, client: client}, nil
}

var _ AvatarStorage = (*MinioAvatarStorage)(nil)

// UploadURL generates a presigned PUT URL for an avatar upload under
// "avatars/<userID>/<uuid>.<ext>". The content type must be on the image
// allow-list and the declared length within the configured cap; the headers
// returned must accompany the PUT and are re-checked on confirmation.
func (s *MinioAvatarStorage) UploadURL(ctx context.Context, userID, contentType string, contentLength int64) (*UploadInfo, error) {
	if !allowedContentType(s.cfg.AvatarAllowedTypes, contentType) {
		return nil, ErrDisallowedType
	}
	if contentLength <= 0 || contentLength > s.cfg.AvatarMaxSizeBytes {
		return nil, ErrInvalidSize
	}

	key := path.Join("avatars", userID, uuid.NewString()+extensionFor(contentType))

	presigned, err := s.client.PresignedPutObject(ctx, s.cfg.S3Bucket, key, s.cfg.S3PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &UploadInfo{
		UploadURL: presigned.String(),
		Key:       key,
		Expires:   s.cfg.S3PresignTTL,
		RequiredHeaders: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}, nil
}

// ConfirmUpload verifies that the object exists under the caller's own key
// prefix and still satisfies the type and size constraints, then returns
// the public retrieval URL.
func (s *MinioAvatarStorage) ConfirmUpload(ctx context.Context, userID, key string) (string, error) {
	prefix := "avatars/" + userID + "/"
	if !strings.HasPrefix(key, prefix) {
		return "", ErrNotUploaded
	}

	info, err := s.client.StatObject(ctx, s.cfg.S3Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
			return "", ErrNotUploaded
		}
		return "", fmt.Errorf("stat object: %w", err)
	}

	if info.Size <= 0 || info.Size > s.cfg.AvatarMaxSizeBytes {
		return "", ErrInvalidSize
	}
	if ct := info.ContentType; ct != "" && !allowedContentType(s.cfg.AvatarAllowedTypes, ct) {
		return "", ErrDisallowedType
	}

	base := strings.TrimRight(s.cfg.S3PublicBaseURL, "/")
	return base + "/" + key, nil
}

func allowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}
	return false
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	return ""
}
