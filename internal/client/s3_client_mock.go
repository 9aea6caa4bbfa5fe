package client

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MockS3Client implements S3ClientInterface for testing without AWS
// credentials
type MockS3Client struct {
	Bucket   string
	Region   string
	Endpoint string

	// Optional function overrides for custom test behavior
	GenerateFileKeyFunc            func(fileName string) string
	GeneratePresignedUploadURLFunc func(ctx context.Context, fileName, contentType string) (string, string, error)
	DeleteFileFunc                 func(ctx context.Context, key string) error
	GetFileURLFunc                 func(key string) string

	DeletedKeys []string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket: "test-bucket",
		Region: "us-east-1",
	}
}

// GenerateFileKey generates a unique file key
func (m *MockS3Client) GenerateFileKey(fileName string) string {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(fileName)
	}

	now := time.Now()
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("media/%s/%s/%s_%d%s",
		now.Format("2006"), now.Format("01"), uuid.New().String(), now.Unix(), ext)
}

// GeneratePresignedUploadURL generates a mock presigned URL
func (m *MockS3Client) GeneratePresignedUploadURL(ctx context.Context, fileName, contentType string) (string, string, error) {
	if m.GeneratePresignedUploadURLFunc != nil {
		return m.GeneratePresignedUploadURLFunc(ctx, fileName, contentType)
	}

	fileKey := m.GenerateFileKey(fileName)
	presignedURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Expires=300&X-Amz-Signature=mocksignature123",
		m.Bucket, m.Region, fileKey)

	return presignedURL, fileKey, nil
}

// DeleteFile records the deleted key and succeeds
func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	m.DeletedKeys = append(m.DeletedKeys, key)
	return nil
}

// GetFileURL returns the public URL for a file
func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	if m.Endpoint != "" && !strings.Contains(m.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("%s/%s/%s", m.Endpoint, m.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

// Ensure MockS3Client implements S3ClientInterface
var _ S3ClientInterface = (*MockS3Client)(nil)
