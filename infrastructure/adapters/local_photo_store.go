package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/config"
)

// localPhotoStore writes uploads to a directory served by the router under
// /uploads.
type localPhotoStore struct {
	logger outbound.LoggerPort
	dir    string
}

func NewLocalPhotoStore(logger outbound.LoggerPort, uploadsConfig *config.UploadsConfig) (outbound.PhotoStorePort, error) {
	if err := os.MkdirAll(uploadsConfig.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &localPhotoStore{
		logger: logger,
		dir:    uploadsConfig.Dir,
	}, nil
}

func (s *localPhotoStore) Save(_ context.Context, params outbound.SavePhotoParams) (string, error) {
	// Base strips any path segments a client smuggled into the file name.
	name := filepath.Base(params.FileName)
	if err := os.WriteFile(filepath.Join(s.dir, name), params.Content, 0o644); err != nil {
		s.logger.ErrorWithFields(err, "Failed to write uploaded photo", map[string]interface{}{
			"fileName": name,
		})
		return "", err
	}

	return "/uploads/" + name, nil
}

func (s *localPhotoStore) Delete(_ context.Context, location string) error {
	name := filepath.Base(location)
	fullPath := filepath.Join(s.dir, name)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}
