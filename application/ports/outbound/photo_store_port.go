package outbound

import "context"

type SavePhotoParams struct {
	FileName    string
	ContentType string
	Content     []byte
}

// PhotoStorePort stores profile photos and returns the location to persist on
// the user record: an /uploads path for the local store, a full URL for S3.
type PhotoStorePort interface {
	Save(ctx context.Context, params SavePhotoParams) (string, error)
	Delete(ctx context.Context, location string) error
}
