// Package storage uploads media files (pet photos, avatars, room images) to
// the application's Cloud Storage bucket and hands back public view URLs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader stores a media file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, kind string, data []byte, contentType string) (string, error)
}

// bucketUploader implements Uploader over a Cloud Storage bucket handle.
type bucketUploader struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewBucketUploader creates an Uploader writing into the named bucket.
func NewBucketUploader(bucket *gcs.BucketHandle, bucketName string) Uploader {
	if bucket == nil {
		log.Fatal("Storage bucket handle is not initialized for Uploader.")
	}
	return &bucketUploader{bucket: bucket, bucketName: bucketName}
}

// extFor maps the common image content types onto file extensions. Unknown
// types get no extension; the object is still served with its content type.
func extFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}

// Upload writes data under "<kind>/<uuid><ext>" and returns the public
// storage URL of the object.
func (u *bucketUploader) Upload(ctx context.Context, kind string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("upload data cannot be empty")
	}
	if kind == "" {
		kind = "misc"
	}

	objectName := fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), extFor(contentType))

	w := u.bucket.Object(objectName).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := w.Write(data); err != nil {
		w.Close() // Best effort; the write already failed.
		return "", fmt.Errorf("failed to write object '%s': %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object '%s': %w", objectName, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, objectName), nil
}
