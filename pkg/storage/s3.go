// Package storage uploads processed product images to an S3-compatible
// bucket (Cloudflare R2 in production).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type ObjectStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
	timeout   time.Duration
}

func New(ctx context.Context, accountID, accessKey, secretKey, bucket, publicURL string, timeout time.Duration) (*ObjectStorage, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID),
		}, nil
	})

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &ObjectStorage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		timeout:   timeout,
	}, nil
}

// UploadBuffer stores data under a generated key and returns its public URL.
func (s *ObjectStorage) UploadBuffer(ctx context.Context, data []byte, contentType string) (string, error) {
	ext := ".bin"
	switch contentType {
	case "image/webp":
		ext = ".webp"
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	}
	key := fmt.Sprintf("products/%s%s", uuid.NewString(), ext)

	uploadCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.PutObject(uploadCtx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

// Delete removes an object by its public URL. URLs outside our public host
// are rejected rather than guessed at.
func (s *ObjectStorage) Delete(ctx context.Context, fileURL string) error {
	if !strings.HasPrefix(fileURL, s.publicURL+"/") {
		return fmt.Errorf("url %q does not belong to this bucket", fileURL)
	}
	key := strings.TrimPrefix(fileURL, s.publicURL+"/")
	if key == "" {
		return fmt.Errorf("empty object key")
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
