package contenttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        Category
	}{
		{"application/json", "application/json", JSON},
		{"problem json", "application/problem+json", JSON},
		{"geojson", "application/geo+json", JSON},
		{"json with charset", "application/json; charset=utf-8", JSON},

		{"text/html", "text/html", HTML},
		{"html with charset", "text/html; charset=utf-8", HTML},
		{"xhtml", "application/xhtml+xml", HTML},

		{"application/xml", "application/xml", XML},
		{"text/xml", "text/xml", XML},

		{"text/plain", "text/plain", Text},
		{"text/csv", "text/csv", Text},

		{"image/png", "image/png", Binary},
		{"octet-stream", "application/octet-stream", Binary},

		{"empty", "", Binary},
		{"uppercase", "Application/JSON", JSON},
		{"malformed", "Text/Plain;;;", Text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.contentType))
		})
	}
}

func TestIsDataset(t *testing.T) {
	tests := []struct {
		mediaType string
		want      bool
	}{
		{"image/tiff", true},
		{"image/jpeg", true},
		{"image/png", true},
		{"IMAGE/PNG", true},
		{"image/tiff; application=geotiff", true},
		{"image/gif", false},
		{"application/geo+json", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDataset(tt.mediaType))
		})
	}
}
