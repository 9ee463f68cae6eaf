// Package storage converts data-URI media payloads into publicly resolvable
// object-store URLs.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/clubgrid/clubgrid-backend/internal/config"
)

// ErrUploadFailed is the generic error surfaced on any storage-layer failure.
// Callers get no retry and no partial-upload cleanup.
var ErrUploadFailed = errors.New("upload failed")

type objectPutter interface {
	PutObjectWithContext(aws.Context, *s3.PutObjectInput, ...request.Option) (*s3.PutObjectOutput, error)
}

// Uploader stores decoded media in an S3 bucket and returns public URLs.
type Uploader struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
	now           func() time.Time
}

func NewUploader(cfg *config.Config) (*Uploader, error) {
	awsCfg := aws.NewConfig().WithRegion(cfg.S3Region)
	if cfg.S3AccessKey != "" {
		awsCfg = awsCfg.WithCredentials(credentials.NewStaticCredentials(cfg.S3AccessKey, cfg.S3SecretKey, ""))
	}
	if cfg.S3Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.S3Endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &Uploader{
		client:        s3.New(sess),
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.S3PublicBaseURL, "/"),
		now:           time.Now,
	}, nil
}

// Upload decodes a data URI and stores it under a prefix/timestamp key. A
// malformed payload yields ("", nil): not a file, not an error.
func (u *Uploader) Upload(ctx context.Context, prefix, dataURI string) (string, error) {
	file := ParseDataURI(dataURI)
	if file == nil {
		return "", nil
	}

	key := fmt.Sprintf("%s/%d.%s", prefix, u.now().UnixNano(), file.Ext())

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Bytes),
		ContentType: aws.String(file.MIME),
	})
	if err != nil {
		slog.Error("object upload failed", "bucket", u.bucket, "key", key, "error", err)
		return "", ErrUploadFailed
	}

	return u.publicBaseURL + "/" + key, nil
}
