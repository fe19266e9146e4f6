// ABOUTME: Response DTOs for file upload API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// UploadedFileResponse represents a stored file in API responses
type UploadedFileResponse struct {
	ID           string    `json:"id" doc:"Unique identifier of the stored file"`
	OriginalName string    `json:"originalName,omitempty" doc:"Filename as provided by the client"`
	Size         int64     `json:"size,omitempty" doc:"File size in bytes"`
	ContentType  string    `json:"type,omitempty" doc:"MIME type of the file"`
	URL          string    `json:"url" doc:"Path where the file can be retrieved"`
	UploadedAt   time.Time `json:"uploadedAt" doc:"When the file was uploaded"`
}

// UploadResponse represents the response for a successful upload
type UploadResponse struct {
	Success bool                 `json:"success" doc:"Whether the upload was stored"`
	File    UploadedFileResponse `json:"file" doc:"Metadata of the stored file"`
}

// UploadListResponse represents the response for listing uploaded files
type UploadListResponse struct {
	Files []UploadedFileResponse `json:"files" doc:"Stored files"`
}
