// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every route registered after it.
//   - rayid: tags each request with a unique id, stored in locals and echoed in the
//     X-Ray-ID response header for tracing.
package middleware
