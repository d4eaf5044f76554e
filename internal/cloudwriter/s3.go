package cloudwriter

import (
	"context"
	"fmt"
	"io"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader pushes a finished dataset file to object storage.
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader) error
}

// NewUploader picks the provider from config. Only S3 is supported today.
func NewUploader(cfg *models.CloudStorageConfig) (Uploader, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3Uploader(cfg.Region)
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.Provider)
	}
}

type S3Uploader struct {
	client *s3.Client
}

func NewS3Uploader(region string) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &S3Uploader{client: s3.NewFromConfig(cfg)}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, bucket, key string, body io.Reader) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return fmt.Errorf("unable to upload %s to S3: %w", key, err)
	}
	return nil
}
