package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/artifexgroup/artifex-site-backend/errs"
)

// UploadResult is the metadata tuple handed to the catalog after a successful
// upload. The catalog only ever stores this, never the bytes themselves.
type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

// Storage wraps an S3 client for image uploads and best-effort deletions.
type Storage struct {
	s3     *s3.Client
	bucket string
	region string
}

// NewStorage creates an S3 storage client from static credentials. Returns
// (nil, nil) when the bucket or credentials are not configured, allowing the
// server to start without object storage in local development.
func NewStorage(region, accessKey, secretKey, bucket string) (*Storage, error) {
	if bucket == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}
	if region == "" {
		region = "us-east-1"
	}

	client := s3.New(s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	})

	return &Storage{
		s3:     client,
		bucket: bucket,
		region: region,
	}, nil
}

// Upload stores an image under a timestamped key and returns its public URL
// plus the file metadata the catalog persists.
func (st *Storage) Upload(ctx context.Context, fileName, contentType string, body io.Reader, size int64) (*UploadResult, error) {
	key := fmt.Sprintf("projects/%d-%s", time.Now().UnixMilli(), sanitizeFileName(fileName))

	_, err := st.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(st.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, errs.NewStorageUploadError(key, err)
	}

	return &UploadResult{
		URL:      fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", st.bucket, st.region, key),
		Key:      key,
		FileName: fileName,
		FileSize: size,
		MimeType: contentType,
	}, nil
}

// Delete removes a stored object identified by its key or public URL. Callers
// doing post-deletion cleanup treat failures as non-fatal.
func (st *Storage) Delete(ctx context.Context, keyOrURL string) error {
	key := KeyFromURL(keyOrURL)
	if key == "" {
		return nil
	}

	_, err := st.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(st.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errs.NewStorageDeleteError(key, err)
	}
	return nil
}

// KeyFromURL extracts the object key from a public S3 URL. A value that does
// not look like an S3 URL is assumed to already be a key.
func KeyFromURL(keyOrURL string) string {
	if !strings.Contains(keyOrURL, ".amazonaws.com/") {
		return keyOrURL
	}
	parts := strings.SplitN(keyOrURL, ".amazonaws.com/", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// sanitizeFileName strips path separators and spaces so the original file
// name can be embedded in an object key.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return strings.ReplaceAll(name, " ", "-")
}
