package inbound

import (
	"context"
	"errors"

	"github.com/Nikshey/TWINSKILL/domain"
)

var ErrNoPhoto = errors.New("no profile photo found")

type PhotoUpload struct {
	FileName    string
	ContentType string
	Content     []byte
}

type CreateAvatarParams struct {
	Email string
	// Photo is the freshly uploaded file, if any. When nil the user's stored
	// photo is used.
	Photo *PhotoUpload
	// PublicBaseURL turns stored /uploads paths into absolute URLs the
	// external API can fetch.
	PublicBaseURL string
}

type CreateAvatarResult struct {
	AvatarURL   string
	FaceDetails domain.FaceAnalysis
	Gender      domain.GenderLabel
}

type AvatarCreatorPort interface {
	Create(ctx context.Context, params CreateAvatarParams) (*CreateAvatarResult, error)
}
