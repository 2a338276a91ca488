// Package server exposes seat-map conversion over an HTTP API built on
// echo: POST /api/seatmap converts a raw XML body, GET /api/health reports
// liveness.
package server
