// ABOUTME: Mappers for converting uploaded file domain models to API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"mediasearch-app-api/api/dto/responses"
	"mediasearch-app-api/core/domain"
)

// ToUploadedFileResponse converts a domain UploadedFile to its response DTO
func ToUploadedFileResponse(file *domain.UploadedFile) *responses.UploadedFileResponse {
	if file == nil {
		return nil
	}

	return &responses.UploadedFileResponse{
		ID:           file.ID,
		OriginalName: file.OriginalName,
		Size:         file.Size,
		ContentType:  file.ContentType,
		URL:          file.URL,
		UploadedAt:   file.UploadedAt,
	}
}

// ToUploadedFileResponses converts multiple domain UploadedFiles to DTOs
func ToUploadedFileResponses(files []domain.UploadedFile) []responses.UploadedFileResponse {
	out := make([]responses.UploadedFileResponse, 0, len(files))

	for i := range files {
		if response := ToUploadedFileResponse(&files[i]); response != nil {
			out = append(out, *response)
		}
	}

	return out
}
