// ABOUTME: Upload service performs validated writes of user files to local storage
// ABOUTME: Records file metadata in the cache so listings can carry original names

package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mediasearch-app-api/core/domain"
	coreerrors "mediasearch-app-api/core/errors"
	"mediasearch-app-api/core/interfaces"
)

// MaxUploadSize is the largest accepted file, 100 MB.
const MaxUploadSize = 100 << 20

// allowedContentTypes is the upload MIME allowlist.
var allowedContentTypes = map[string]bool{
	"application/pdf":      true,
	"application/epub+zip": true,
	"image/jpeg":           true,
	"image/png":            true,
	"video/mp4":            true,
	"application/zip":      true,
	"text/plain":           true,
}

// UploadService stores uploaded files under a local directory.
type UploadService struct {
	deps interfaces.Dependencies
	dir  string
}

// NewUploadService creates a new upload service writing into dir.
func NewUploadService(deps interfaces.Dependencies, dir string) *UploadService {
	return &UploadService{deps: deps, dir: dir}
}

// Store validates and writes one uploaded file. The declared content type
// must be on the allowlist and the declared size within the limit; the
// stored name is a UUID with the original extension so uploads never collide.
func (s *UploadService) Store(ctx context.Context, originalName, contentType string, size int64, r io.Reader) (*domain.UploadedFile, error) {
	if !allowedContentTypes[contentType] {
		return nil, &coreerrors.ValidationError{
			Field:   "file",
			Message: "invalid file type. Only PDF, EPUB, JPEG, PNG, MP4, ZIP, and TXT files are allowed",
		}
	}

	if size > MaxUploadSize {
		return nil, &coreerrors.ValidationError{
			Field:   "file",
			Message: "file size exceeds maximum limit of 100MB",
		}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	storedName := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(r, MaxUploadSize+1))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err == nil && written > MaxUploadSize {
		err = &coreerrors.ValidationError{
			Field:   "file",
			Message: "file size exceeds maximum limit of 100MB",
		}
	}
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	file := &domain.UploadedFile{
		ID:           storedName,
		OriginalName: originalName,
		Size:         written,
		ContentType:  contentType,
		URL:          "/uploads/" + storedName,
		UploadedAt:   time.Now().UTC(),
	}

	// Metadata caching is best effort; the file itself is the source of truth
	s.cacheMetadata(ctx, file)

	return file, nil
}

// List returns the stored files, enriched with cached metadata when present.
// A missing upload directory is an empty listing, not an error.
func (s *UploadService) List(ctx context.Context) ([]domain.UploadedFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.UploadedFile{}, nil
		}
		return nil, fmt.Errorf("failed to read upload directory: %w", err)
	}

	files := make([]domain.UploadedFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if cached := s.cachedMetadata(ctx, entry.Name()); cached != nil {
			files = append(files, *cached)
			continue
		}

		files = append(files, domain.UploadedFile{
			ID:  entry.Name(),
			URL: "/uploads/" + entry.Name(),
		})
	}

	return files, nil
}

func (s *UploadService) cacheMetadata(ctx context.Context, file *domain.UploadedFile) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(file)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, "upload:"+file.ID, data, 0); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Failed to cache upload metadata", map[string]interface{}{
			"id":    file.ID,
			"error": err.Error(),
		})
	}
}

func (s *UploadService) cachedMetadata(ctx context.Context, id string) *domain.UploadedFile {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, "upload:"+id)
	if err != nil || data == nil {
		return nil
	}

	var file domain.UploadedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil
	}

	return &file
}
