package config

import (
	"fmt"
	"os"
)

type S3Config struct {
	BucketName string
	Region     string
}

// GetS3Config returns nil when PHOTO_BUCKET_NAME is unset, in which case
// uploads are written to local disk and served under /uploads.
func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("PHOTO_BUCKET_NAME")
	if bucketName == "" {
		return nil, nil
	}

	region := os.Getenv("REGION")
	if region == "" {
		return nil, fmt.Errorf("REGION must be set when PHOTO_BUCKET_NAME is set")
	}

	return &S3Config{
		BucketName: bucketName,
		Region:     region,
	}, nil
}
