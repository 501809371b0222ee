package controllers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Nikshey/TWINSKILL/application/ports/inbound"
	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/infrastructure/gin_interface/dto"
	"github.com/Nikshey/TWINSKILL/middleware"
)

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var errNotAnImage = errors.New("only image files are allowed")

// readPhoto extracts an optional "photo" part from a multipart form and gives
// it a fresh collision-free name, keeping the original extension.
func readPhoto(c *gin.Context) (*inbound.PhotoUpload, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedPhotoExtensions[ext] {
		return nil, errNotAnImage
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &inbound.PhotoUpload{
		FileName:    uuid.NewString() + ext,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// actingEmail prefers the email pinned by a valid session token over whatever
// the request body claims.
func actingEmail(c *gin.Context, bodyEmail string) string {
	if email := c.GetString(middleware.ContextUserEmailKey); email != "" {
		return email
	}
	return bodyEmail
}

// publicBaseURL rebuilds the externally reachable origin of this request so
// stored /uploads paths can be turned into absolute URLs.
func publicBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// respondError maps the service error taxonomy onto HTTP statuses with the
// JSON message shape the frontend expects.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, outbound.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, outbound.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, inbound.ErrInvalidCredentials), errors.Is(err, inbound.ErrWrongPassword):
		status = http.StatusUnauthorized
	case errors.Is(err, inbound.ErrInvalidEmailDomain),
		errors.Is(err, inbound.ErrPasswordTooShort),
		errors.Is(err, inbound.ErrNoFaceInPhoto),
		errors.Is(err, inbound.ErrNoPhoto),
		errors.Is(err, errNotAnImage):
		status = http.StatusBadRequest
	}

	c.JSON(status, dto.MessageResponse{Message: err.Error()})
}
