package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/observability"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/gcp"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/s3store"
)

// Uploader stores a file and returns the URL it can be fetched from.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// Store is an Uploader that owns a client connection.
type Store interface {
	Uploader
	Close() error
}

const videoPrefix = "inhaler_videos"

// VideoKey builds a collision-free object key that keeps the original extension.
func VideoKey(filename string, now time.Time) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(filename)))
	if len(ext) > 8 || strings.ContainsAny(ext, "/\\?#") {
		ext = ""
	}
	return fmt.Sprintf("%s/%s/%s%s", videoPrefix, now.UTC().Format("2006/01"), uuid.New().String(), ext)
}

// New opens the backend selected by cfg.Mode.
func New(ctx context.Context, log *logger.Logger, cfg Config) (Store, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	log.Info("Object storage provider selected", "mode", cfg.Mode, "mode_source", cfg.ModeSource())

	switch cfg.Mode {
	case ModeS3:
		st, err := s3store.New(ctx, log, s3store.Config{
			Bucket:        cfg.S3Bucket,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return metered{Store: st, backend: string(cfg.Mode)}, nil
	default:
		bs, err := gcp.NewBucketService(ctx, log, gcp.BucketConfig{
			Name:          cfg.GCSBucket,
			CDNDomain:     cfg.CDNDomain,
			Emulator:      cfg.IsEmulatorMode(),
			EmulatorHost:  cfg.EmulatorHost,
			PublicBaseURL: cfg.PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return metered{Store: bs, backend: string(cfg.Mode)}, nil
	}
}

type metered struct {
	Store
	backend string
}

func (m metered) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	url, err := m.Store.Upload(ctx, key, contentType, r)
	observability.Current().IncUpload(m.backend, err)
	return url, err
}
