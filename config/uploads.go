package config

import "os"

type UploadsConfig struct {
	Dir string
}

func GetUploadsConfig() *UploadsConfig {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "uploads"
	}

	return &UploadsConfig{
		Dir: dir,
	}
}
