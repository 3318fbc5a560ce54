// Package media stores uploaded tenant images and serves them back by ID.
package media

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MaxBytes limits a single upload to 5mb.
const MaxBytes = 5 * 1024 * 1024

var allowedMediaTypes = []string{"image/png", "image/jpeg", "image/jpg"}

// AllowedMediaType reports whether the sniffed content type may be stored.
func AllowedMediaType(contentType string) bool {
	for _, allowed := range allowedMediaTypes {
		if allowed == contentType {
			return true
		}
	}
	return false
}

type Image struct {
	ID        string
	Key       string
	MediaType string
	Bytes     []byte
	CreatedAt time.Time
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
var dashRuns = regexp.MustCompile(`-+`)

// SanitizeFilename reduces a user-supplied filename to a safe storage
// character set: alphanumerics, dots, hyphens and underscores, with hyphen
// runs collapsed and trimmed.
func SanitizeFilename(filename string) string {
	s := unsafeChars.ReplaceAllString(filename, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Key builds a collision-resistant storage key for an upload.
func Key(filename string, now time.Time) string {
	return fmt.Sprintf("uploads/%d-%s", now.UnixMilli(), SanitizeFilename(filename))
}
