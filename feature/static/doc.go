// Package static serves the files of the serving root over HTTP.
//
// All HTTP file semantics are delegated to Fiber's filesystem middleware; this
// package only configures it and answers what it passes on.
//
// # Behavior
//
//   - GET/HEAD of a file: 200 with the file body and a MIME type from the built-in table.
//   - GET/HEAD of a directory: its index.html if present, otherwise an HTML
//     listing of its immediate children (403 when browsing is disabled).
//   - GET/HEAD of a missing path: 404 "File not found".
//   - Any other method: 501 "Unsupported method".
//
// The serving root is any http.FileSystem: http.Dir for a local directory or
// storage.FileSystem for a bucket.
package static
