package attachment

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
)

// GCSUploader stores attachment binaries in a Google Cloud Storage bucket
// and implements Uploader.
type GCSUploader struct {
	Client *gcs.Client
	Bucket string
}

func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSUploader{Client: client, Bucket: bucket}, nil
}

// Upload writes the object and returns its public URL. The write is
// bounded by the caller's context.
func (u *GCSUploader) Upload(ctx context.Context, data []byte, path string) (string, error) {
	w := u.Client.Bucket(u.Bucket).Object(path).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", path, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.Bucket, path), nil
}
