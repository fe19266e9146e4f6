// ABOUTME: Uploaded file domain model for the local file storage endpoint
// ABOUTME: Carries the metadata returned to callers after a validated write

package domain

import "time"

// UploadedFile represents a file stored by the upload endpoint.
type UploadedFile struct {
	// ID is the stored filename: a UUID plus the original extension
	ID string

	// OriginalName is the filename supplied by the uploader
	OriginalName string

	// Size is the stored size in bytes
	Size int64

	// ContentType is the declared MIME type, validated against the allowlist
	ContentType string

	// URL is the locally served path, e.g. "/uploads/<id>"
	URL string

	// UploadedAt records when the file was written
	UploadedAt time.Time
}
