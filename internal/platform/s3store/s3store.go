package s3store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type Config struct {
	Bucket string
	// Endpoint overrides the S3 endpoint (MinIO, LocalStack); path-style addressing is used when set.
	Endpoint      string
	PublicBaseURL string
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Store struct {
	log           *logger.Logger
	client        putObjectAPI
	bucket        string
	region        string
	endpoint      string
	publicBaseURL string
}

func New(ctx context.Context, log *logger.Logger, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("missing env var INHALER_S3_BUCKET")
	}
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	st := newStore(log, client, cfg, awsCfg.Region)
	st.log.Info("Object storage initialized", "bucket", st.bucket, "region", st.region, "endpoint", st.endpoint)
	return st, nil
}

func newStore(log *logger.Logger, client putObjectAPI, cfg Config, region string) *Store {
	return &Store{
		log:           log.With("service", "S3Store"),
		client:        client,
		bucket:        strings.TrimSpace(cfg.Bucket),
		region:        region,
		endpoint:      strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"),
		publicBaseURL: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
	}
}

func (s *Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
		ACL:    types.ObjectCannedACLPrivate,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("s3 put object %s: %w", key, err)
	}
	s.log.Debug("Uploaded object", "bucket", s.bucket, "key", key)
	return s.PublicURL(key), nil
}

func (s *Store) PublicURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	switch {
	case s.publicBaseURL != "":
		return fmt.Sprintf("%s/%s", s.publicBaseURL, escaped)
	case s.endpoint != "":
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, escaped)
	case s.region != "":
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
	default:
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, escaped)
	}
}

func (s *Store) Close() error { return nil }
