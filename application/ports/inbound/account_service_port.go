package inbound

import (
	"context"
	"errors"
)

var (
	ErrInvalidEmailDomain = errors.New("only @gmail.com emails are allowed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrNoFaceInPhoto      = errors.New("uploaded photo must contain a recognizable face")
)

type RegisterParams struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Gender   string
	Photo    *PhotoUpload
}

type LoginParams struct {
	Email    string
	Password string
}

type Profile struct {
	Name      string
	Email     string
	Phone     string
	PhotoPath string
	AvatarURL string
	Gender    string
}

type LoginResult struct {
	Profile Profile
	Token   string
}

type ChangePasswordParams struct {
	Email           string
	CurrentPassword string
	NewPassword     string
}

type UpdatePhotoParams struct {
	Email string
	Photo PhotoUpload
}

type AccountServicePort interface {
	Register(ctx context.Context, params RegisterParams) (photoPath string, err error)
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)
	ChangePassword(ctx context.Context, params ChangePasswordParams) error
	UpdatePhoto(ctx context.Context, params UpdatePhotoParams) (photoPath string, err error)
	ResetPhoto(ctx context.Context, email string) error
	DeleteAccount(ctx context.Context, email string) error
}
