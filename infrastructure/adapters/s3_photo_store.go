package adapters

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/config"
)

type s3PhotoStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3PhotoStore(s3Svc *s3.S3, s3Config *config.S3Config) outbound.PhotoStorePort {
	return &s3PhotoStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3PhotoStore) Save(ctx context.Context, params outbound.SavePhotoParams) (string, error) {
	key := "uploads/" + params.FileName

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(params.Content),
		ContentLength: aws.Int64(int64(len(params.Content))),
		ContentType:   aws.String(params.ContentType),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.s3Config.BucketName).
			Str("key", key).
			Msg("Failed to upload photo to S3")
		return "", err
	}

	photoURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Debug().
		Str("photoUrl", photoURL).
		Msg("Successfully uploaded photo to S3")

	return photoURL, nil
}

func (s *s3PhotoStore) Delete(ctx context.Context, location string) error {
	key, err := s.keyFromLocation(location)
	if err != nil {
		return err
	}

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	}

	if _, err := s.s3Svc.DeleteObjectWithContext(ctx, input); err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.s3Config.BucketName).
			Str("key", key).
			Msg("Failed to delete photo from S3")
		return err
	}

	return nil
}

func (s *s3PhotoStore) keyFromLocation(location string) (string, error) {
	parsed, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", fmt.Errorf("photo location %q carries no object key", location)
	}
	// Object keys are always uploads/<basename>, regardless of what the
	// stored location looks like.
	return "uploads/" + path.Base(key), nil
}
