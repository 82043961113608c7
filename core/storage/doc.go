// Package storage provides an object-storage serving root.
//
// It wraps the MinIO Go client behind a small read-only Client interface and
// exposes a bucket (optionally narrowed to a key prefix) as an http.FileSystem,
// so the static file handler can serve it exactly like a local directory.
// This works against both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions in unit tests (see core/storage/mocks).
//
// # Key Mapping
//
//   - "/a/b.txt" maps to the object "<prefix>/a/b.txt".
//   - "/a" is a directory when objects exist under "<prefix>/a/".
//   - Anything else is reported as fs.ErrNotExist.
//
// Object bodies are streamed: Open only fetches metadata, and the download
// starts on the first Read and ends when the file is closed.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
//	root := storage.NewFileSystem(ctx, client, cfg.Storage.Bucket, cfg.Storage.Prefix, cfg.Storage.Timeout())
package storage
