// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Fraud prediction
//   - Health checks
//   - Machine-readable API description and interactive docs
//   - Prometheus metrics
package http
