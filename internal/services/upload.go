package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/config"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/logger"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"github.com/google/uuid"
)

// UploadStore is the local blob store for card images. Files are keyed by a
// generated name; entities reference the key, never the bytes.
type UploadStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewUploadStore(cfg *config.UploadConfig) (*UploadStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, err
	}
	return &UploadStore{
		dir:      cfg.Dir,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		maxBytes: cfg.MaxSizeMB << 20,
	}, nil
}

// Dir returns the directory backing the store.
func (s *UploadStore) Dir() string { return s.dir }

// MaxBytes returns the per-file size limit.
func (s *UploadStore) MaxBytes() int64 { return s.maxBytes }

// Save stores an uploaded file under a generated name and returns the key.
// Oversized files fail with PayloadTooLarge.
func (s *UploadStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxBytes {
		return "", response.NewPayloadTooLarge("uploaded file too large")
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// Remove deletes a stored file best-effort. Failures are logged and never
// propagate; callers use this to clean up superseded images after commit.
func (s *UploadStore) Remove(name string) {
	if name == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Str("file", name).Msg("failed to remove upload")
	}
}

// URLFor resolves a stored key to the absolute URL it is served under.
// An empty key resolves to an empty URL.
func (s *UploadStore) URLFor(name string) string {
	if name == "" {
		return ""
	}
	return s.baseURL + "/uploads/" + name
}
