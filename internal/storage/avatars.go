package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrDisallowedType means the content type is outside the image
	// allow-list.
	ErrDisallowedType = errors.New("disallowed content type")
	// ErrInvalidSize means the declared or actual object size is zero or
	// over the configured cap.
	ErrInvalidSize = errors.New("invalid object size")
	// ErrNotUploaded means no object exists under the key being confirmed.
	ErrNotUploaded = errors.New("object not uploaded")
)

// UploadInfo is what the client needs to PUT the avatar straight to object
// storage without routing the bytes through this server.
type UploadInfo struct {
	UploadURL       string
	Key             string
	Expires         time.Duration
	RequiredHeaders map[string]string
}

// AvatarStorage issues presigned upload URLs and confirms completed
// uploads, returning the stable retrieval URL.
type AvatarStorage interface {
	UploadURL(ctx context.Context, userID, contentType string, contentLength int64) (*UploadInfo, error)
	ConfirmUpload(ctx context.Context, userID, key string) (publicURL string, err error)
}
