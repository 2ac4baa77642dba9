// Package contenttype classifies media types found in HTTP responses and in
// parameter schemas.
package contenttype

import (
	"mime"
	"slices"
	"strings"
)

// Category represents a broad content-type classification.
type Category string

const (
	JSON   Category = "json"
	XML    Category = "xml"
	HTML   Category = "html"
	Text   Category = "text"
	Binary Category = "binary"
)

// Raster media types that are passed to a tool as datasets.
const (
	TIFF = "image/tiff"
	JPEG = "image/jpeg"
	PNG  = "image/png"
)

var datasetMediaTypes = []string{TIFF, JPEG, PNG}

// Normalize strips parameters (charset, profile, ...) and lowercases a media
// type. Malformed values are trimmed and lowercased as-is.
func Normalize(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// Classify returns the broad content category for a content-type value.
// Returns Binary for empty content-type strings.
func Classify(contentType string) Category {
	if contentType == "" {
		return Binary
	}

	mediaType := Normalize(contentType)

	// application/json, application/problem+json, application/geo+json, ...
	if strings.Contains(mediaType, "json") {
		return JSON
	}

	if mediaType == "text/html" || mediaType == "application/xhtml+xml" {
		return HTML
	}

	if strings.Contains(mediaType, "xml") {
		return XML
	}

	if strings.HasPrefix(mediaType, "text/") {
		return Text
	}

	return Binary
}

// IsDataset reports whether a contentMediaType names one of the raster
// payload types (TIFF, JPEG, PNG).
func IsDataset(contentType string) bool {
	if contentType == "" {
		return false
	}
	return slices.Contains(datasetMediaTypes, Normalize(contentType))
}
