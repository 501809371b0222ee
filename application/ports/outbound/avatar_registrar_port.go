package outbound

import "context"

type RegisterAvatarParams struct {
	UserName string
	ImageURL string
}

type RegisterAvatarResult struct {
	ID  string
	URL string
}

// AvatarRegistrarPort registers a user photo as a named avatar with the
// external video API.
type AvatarRegistrarPort interface {
	Register(ctx context.Context, params RegisterAvatarParams) (*RegisterAvatarResult, error)
	Available() bool
}
