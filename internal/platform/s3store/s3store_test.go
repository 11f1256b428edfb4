package s3store

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type fakePut struct {
	in   *s3.PutObjectInput
	body string
	err  error
}

func (f *fakePut) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	raw, _ := io.ReadAll(in.Body)
	f.body = string(raw)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestUploadPutsObjectAndReturnsURL(t *testing.T) {
	fake := &fakePut{}
	st := newStore(logger.Nop(), fake, Config{Bucket: "videos"}, "eu-west-1")

	got, err := st.Upload(context.Background(), "/inhaler_videos/a.mp4", "video/mp4", strings.NewReader("frames"))
	require.NoError(t, err)
	assert.Equal(t, "https://videos.s3.eu-west-1.amazonaws.com/inhaler_videos/a.mp4", got)
	assert.Equal(t, "videos", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "inhaler_videos/a.mp4", aws.ToString(fake.in.Key))
	assert.Equal(t, "video/mp4", aws.ToString(fake.in.ContentType))
	assert.Equal(t, "frames", fake.body)
}

func TestUploadWrapsError(t *testing.T) {
	cause := errors.New("access denied")
	st := newStore(logger.Nop(), &fakePut{err: cause}, Config{Bucket: "videos"}, "")

	_, err := st.Upload(context.Background(), "a.mp4", "", strings.NewReader("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestPublicURLPrecedence(t *testing.T) {
	st := newStore(logger.Nop(), &fakePut{}, Config{Bucket: "b", Endpoint: "http://minio:9000/", PublicBaseURL: "https://cdn.example.com/"}, "us-east-1")
	assert.Equal(t, "https://cdn.example.com/k/a%20b.mp4", st.PublicURL("k/a b.mp4"))

	st = newStore(logger.Nop(), &fakePut{}, Config{Bucket: "b", Endpoint: "http://minio:9000"}, "us-east-1")
	assert.Equal(t, "http://minio:9000/b/k.mp4", st.PublicURL("k.mp4"))

	st = newStore(logger.Nop(), &fakePut{}, Config{Bucket: "b"}, "")
	assert.Equal(t, "https://b.s3.amazonaws.com/k.mp4", st.PublicURL("k.mp4"))
}
