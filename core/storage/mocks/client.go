package mocks

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Get(0).(minio.ObjectInfo), args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadSeekCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	if obj, ok := args.Get(0).(io.ReadSeekCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListObjects returns the configured channel. The return value may also be a
// func with the ListObjects signature, called to build a fresh channel per call.
func (m *Client) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	args := m.Called(ctx, bucketName, opts)
	switch v := args.Get(0).(type) {
	case <-chan minio.ObjectInfo:
		return v
	case func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo:
		return v(ctx, bucketName, opts)
	}
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

// Object is an in-memory object body that records how it was used.
type Object struct {
	*bytes.Reader
	size   int
	closed atomic.Bool
}

// NewObject returns an Object serving data.
func NewObject(data []byte) *Object {
	return &Object{Reader: bytes.NewReader(data), size: len(data)}
}

// Close marks the object as closed.
func (o *Object) Close() error {
	o.closed.Store(true)
	return nil
}

// Closed reports whether Close was called.
func (o *Object) Closed() bool { return o.closed.Load() }

// Consumed reports how many bytes have been read.
func (o *Object) Consumed() int { return o.size - o.Reader.Len() }
