// ABOUTME: Upload handler for storing and listing user-provided media files
// ABOUTME: Accepts multipart uploads and exposes the stored file inventory

package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"mediasearch-app-api/api/dto/mappers"
	"mediasearch-app-api/api/dto/responses"
	"mediasearch-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// UploadService defines the upload operations the handler depends on
type UploadService interface {
	Store(ctx context.Context, originalName, contentType string, size int64, r io.Reader) (*domain.UploadedFile, error)
	List(ctx context.Context) ([]domain.UploadedFile, error)
}

// UploadHandler handles file upload requests
type UploadHandler struct {
	uploadService UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// RegisterRoutes registers upload routes
func (h *UploadHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "uploadFile",
		Method:        http.MethodPost,
		Path:          "/upload",
		Summary:       "Upload a media file",
		Description:   "Stores a file from a multipart form. Accepts PDF, EPUB, JPEG, PNG, MP4, ZIP, and plain text up to 100 MB",
		Tags:          []string{"Uploads"},
		DefaultStatus: http.StatusCreated,
	}, h.Upload)

	huma.Register(api, huma.Operation{
		OperationID: "listUploads",
		Method:      http.MethodGet,
		Path:        "/uploads",
		Summary:     "List uploaded files",
		Tags:        []string{"Uploads"},
	}, h.List)
}

// UploadInput defines the multipart form input for a file upload
type UploadInput struct {
	RawBody multipart.Form
}

// UploadOutput defines the response for a successful upload
type UploadOutput struct {
	Body responses.UploadResponse
}

// Upload handles the POST /upload endpoint
func (h *UploadHandler) Upload(ctx context.Context, input *UploadInput) (*UploadOutput, error) {
	files := input.RawBody.File["file"]
	if len(files) == 0 {
		return nil, huma.Error400BadRequest("No file provided in 'file' form field")
	}

	header := files[0]
	f, err := header.Open()
	if err != nil {
		return nil, huma.Error400BadRequest("Could not read uploaded file")
	}
	defer f.Close()

	stored, err := h.uploadService.Store(ctx, header.Filename, header.Header.Get("Content-Type"), header.Size, f)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &UploadOutput{}
	output.Body.Success = true
	output.Body.File = *mappers.ToUploadedFileResponse(stored)
	return output, nil
}

// ListUploadsOutput defines the response for listing uploaded files
type ListUploadsOutput struct {
	Body responses.UploadListResponse
}

// List handles the GET /uploads endpoint
func (h *UploadHandler) List(ctx context.Context, input *struct{}) (*ListUploadsOutput, error) {
	files, err := h.uploadService.List(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &ListUploadsOutput{}
	output.Body.Files = mappers.ToUploadedFileResponses(files)
	return output, nil
}
