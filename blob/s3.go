// ABOUTME: S3-backed object store for uploaded images and PDF documents.
// ABOUTME: Supports custom endpoints with path-style addressing (MinIO and similar).
package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 writes objects to an S3-compatible bucket and returns public URLs
// rooted at a configured base.
type S3 struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// S3Config holds the inputs for the S3 object store.
type S3Config struct {
	Bucket        string
	Region        string
	Endpoint      string // optional; enables path-style addressing when set
	PublicBaseURL string // base for returned URLs, e.g. https://cdn.example.com
}

// NewS3 creates an S3 object store. If cfg.Endpoint is non-empty, path-style
// addressing is enabled.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3{
		client:        s3.NewFromConfig(awsCfg, s3opts...),
		bucket:        cfg.Bucket,
		publicBaseURL: base,
	}, nil
}

// Put uploads body under key and returns the object's public URL.
func (s *S3) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return s.publicBaseURL + "/" + key, nil
}
