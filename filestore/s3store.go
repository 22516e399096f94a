package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/wailsapp/mimetype"
)

type S3Store struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Store(region string, bucket string) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Upload puts the content into the S3 bucket under the given key and
// returns the object URL.
func (store *S3Store) Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error) {
	if mediaType == "" {
		mediaType = mimetype.Detect(content).String()
	}
	_, err := store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &store.bucket,
		Key:         &key,
		Body:        bytes.NewReader(content),
		ContentType: &mediaType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	objectURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", store.bucket, store.region, key)

	return objectURL, nil
}

func (store *S3Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := store.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &store.bucket,
		Key:    &key,
	})
	if err != nil {
		var responseError *awshttp.ResponseError
		if errors.As(err, &responseError) && responseError.ResponseError.HTTPStatusCode() == 404 {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}
	return true, nil
}

func (store *S3Store) Download(ctx context.Context, key string) ([]byte, error) {
	output, err := store.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &store.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download object: %w", err)
	}
	defer output.Body.Close()
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(output.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}
