// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// static file handler.
//
// # Components
//
//   - RayID: Assigns a unique Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs every request with method, path, status and latency
//     through Zap, tagged with the RayID.
//
// Both are registered globally by the server package before any feature is loaded.
package middleware
