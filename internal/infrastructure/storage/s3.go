package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mikiasgoitom/Studiofolio/internal/domain/contract"
)

// S3API is the part of the S3 client the store calls.
type S3API interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store removes media objects from the studio bucket.
type S3Store struct {
	bucket string
	client S3API
}

var _ contract.IObjectStorage = (*S3Store)(nil)

// NewS3Store loads the default AWS credential chain for region.
func NewS3Store(ctx context.Context, bucket, region string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return NewS3StoreWithClient(bucket, s3.NewFromConfig(cfg)), nil
}

func NewS3StoreWithClient(bucket string, client S3API) *S3Store {
	return &S3Store{bucket: bucket, client: client}
}

// DeleteObject removes key. S3 reports success for keys that do not exist.
func (s *S3Store) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q from %s: %w", key, s.bucket, err)
	}
	return nil
}
