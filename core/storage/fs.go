package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// FileSystem serves objects of a bucket as an http.FileSystem.
type FileSystem struct {
	ctx     context.Context
	client  Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewFileSystem creates a FileSystem rooted at prefix inside bucket.
// ctx bounds the lifetime of every storage call; timeout bounds each Open.
func NewFileSystem(ctx context.Context, client Client, bucket, prefix string, timeout time.Duration) *FileSystem {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FileSystem{
		ctx:     ctx,
		client:  client,
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		timeout: timeout,
	}
}

// Open implements http.FileSystem. Object bodies are streamed from storage
// as they are read; only the metadata lookup is bounded by the timeout.
func (f *FileSystem) Open(name string) (http.File, error) {
	ctx, cancel := context.WithTimeout(f.ctx, f.timeout)
	defer cancel()

	rel := strings.TrimPrefix(path.Clean("/"+name), "/")
	if rel == "" {
		return f.openDir(ctx, name, f.prefix, true)
	}

	key := rel
	if f.prefix != "" {
		key = f.prefix + "/" + rel
	}

	info, err := f.client.StatObject(ctx, f.bucket, key, minio.StatObjectOptions{})
	switch {
	case err == nil:
		return f.openObject(name, key, info)
	case !IsNotFound(err):
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}

	return f.openDir(ctx, name, key, false)
}

func (f *FileSystem) openObject(name, key string, info minio.ObjectInfo) (http.File, error) {
	// The download outlives Open; it ends when the file is closed.
	ctx, cancel := context.WithCancel(f.ctx)
	obj, err := f.client.GetObject(ctx, f.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		cancel()
		if IsNotFound(err) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}

	return &file{
		ReadSeekCloser: obj,
		cancel:         cancel,
		info: fileInfo{
			name:    path.Base(key),
			size:    info.Size,
			modTime: info.LastModified,
		},
	}, nil
}

// openDir lists the immediate children of key. Only the root may be empty.
func (f *FileSystem) openDir(ctx context.Context, name, key string, root bool) (http.File, error) {
	dirPrefix := ""
	if key != "" {
		dirPrefix = key + "/"
	}

	var entries []fs.FileInfo
	for obj := range f.client.ListObjects(ctx, f.bucket, minio.ListObjectsOptions{Prefix: dirPrefix}) {
		if obj.Err != nil {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: obj.Err}
		}
		child := strings.TrimPrefix(obj.Key, dirPrefix)
		isDir := strings.HasSuffix(child, "/")
		child = strings.TrimSuffix(child, "/")
		// Folder marker objects list as the directory itself.
		if child == "" {
			continue
		}
		entries = append(entries, fileInfo{
			name:    child,
			size:    obj.Size,
			modTime: obj.LastModified,
			dir:     isDir,
		})
	}

	if len(entries) == 0 && !root {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	dirName := path.Base(path.Clean("/" + name))
	return &file{
		ReadSeekCloser: emptyBody{bytes.NewReader(nil)},
		info:           fileInfo{name: dirName, dir: true},
		entries:        entries,
	}, nil
}

// file is an http.File for a streamed object or a listed directory.
type file struct {
	io.ReadSeekCloser
	cancel  context.CancelFunc
	info    fileInfo
	entries []fs.FileInfo
	pos     int
}

func (f *file) Close() error {
	err := f.ReadSeekCloser.Close()
	if f.cancel != nil {
		f.cancel()
	}
	return err
}

func (f *file) Stat() (fs.FileInfo, error) { return f.info, nil }

func (f *file) Readdir(count int) ([]fs.FileInfo, error) {
	if !f.info.dir {
		return nil, &fs.PathError{Op: "readdir", Path: f.info.name, Err: errors.New("not a directory")}
	}
	remaining := f.entries[f.pos:]
	if count <= 0 {
		f.pos = len(f.entries)
		return remaining, nil
	}
	if len(remaining) == 0 {
		return nil, io.EOF
	}
	if count > len(remaining) {
		count = len(remaining)
	}
	f.pos += count
	return remaining[:count], nil
}

// emptyBody is the content of a directory.
type emptyBody struct{ *bytes.Reader }

func (emptyBody) Close() error { return nil }

type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) ModTime() time.Time { return fi.modTime }
func (fi fileInfo) IsDir() bool        { return fi.dir }
func (fi fileInfo) Sys() any           { return nil }

func (fi fileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}
