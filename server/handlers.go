package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thomasbreydo/seatmap-parser/formatter"
	"github.com/thomasbreydo/seatmap-parser/seatmap"
)

// Error kinds reported to API clients.
const (
	KindUnsupportedFormat = "unsupported_format"
	KindMalformedDocument = "malformed_document"
	KindInvalidXML        = "invalid_xml"
)

type errorResponse struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// handleHealth reports liveness for load balancers and monitoring.
func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// handleConvert parses a raw XML seat-map body and returns the normalized
// seat map as JSON. Any extraction failure yields a 400 with a typed error
// body and no partial output.
func handleConvert(c echo.Context) error {
	m, err := seatmap.Decode(c.Request().Body)
	if err != nil {
		reqID := requestID(c)
		log.Printf("[%s] seat-map conversion failed: %v", reqID, err)
		return c.JSON(http.StatusBadRequest, errorResponse{
			Kind:      errorKind(err),
			Message:   err.Error(),
			RequestID: reqID,
		})
	}

	pretty := c.QueryParam("pretty") == "true"
	buf, err := formatter.BuildJSON(m, pretty)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, buf)
}

// errorKind maps a decode error to its API error kind.
func errorKind(err error) string {
	var unsupported *seatmap.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return KindUnsupportedFormat
	}
	var malformed *seatmap.MalformedDocumentError
	if errors.As(err, &malformed) {
		return KindMalformedDocument
	}
	return KindInvalidXML
}
