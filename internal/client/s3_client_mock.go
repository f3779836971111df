package client

import (
	"context"
	"io"
)

// MockObjectStorage is a mock implementation of ObjectStorage for tests
type MockObjectStorage struct {
	UploadImageFunc func(ctx context.Context, folder, fileName, contentType string, body io.Reader) (string, error)
	DeleteFileFunc  func(ctx context.Context, key string) error
	FileURLFunc     func(key string) string
}

func (m *MockObjectStorage) UploadImage(ctx context.Context, folder, fileName, contentType string, body io.Reader) (string, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, folder, fileName, contentType, body)
	}
	return "https://cdn.example.com/" + folder + "/mock.png", nil
}

func (m *MockObjectStorage) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockObjectStorage) FileURL(key string) string {
	if m.FileURLFunc != nil {
		return m.FileURLFunc(key)
	}
	return "https://cdn.example.com/" + key
}
