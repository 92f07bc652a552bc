package publish

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
)

const UploadTimeout = 10 * time.Second

// Uploader puts rendered files into one bucket. Every batch shares a run id
// so the frames of one render stay together.
type Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string
	runID  string
}

// New creates an uploader backed by a real S3 session.
func New(cfg *Config) (*Uploader, error) {
	s3Config := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Endpoint)
		s3Config.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("create S3 session: %w", err)
	}
	return NewWithClient(s3.New(sess), cfg.Bucket, cfg.Prefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client s3iface.S3API, bucket, prefix string) *Uploader {
	return &Uploader{client: client, bucket: bucket, prefix: prefix, runID: uuid.NewString()}
}

// Key returns the object key for a local file: <prefix>/<run id>/<base name>.
func (u *Uploader) Key(file string) string {
	return path.Join(u.prefix, u.runID, filepath.Base(file))
}

// Upload puts one file and returns its key.
func (u *Uploader) Upload(ctx context.Context, file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	key := u.Key(file)
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err = u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(file)),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to s3://%s/%s: %w", file, u.bucket, key, err)
	}
	log.Printf("Uploaded %s to s3://%s/%s (%d bytes)", file, u.bucket, key, len(data))
	return key, nil
}

// UploadAll uploads files in order and stops at the first failure.
func (u *Uploader) UploadAll(ctx context.Context, files []string) ([]string, error) {
	keys := make([]string, 0, len(files))
	for _, f := range files {
		k, err := u.Upload(ctx, f)
		if err != nil {
			return keys, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func contentType(file string) string {
	if ct := mime.TypeByExtension(filepath.Ext(file)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
