package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultFolder = "general"

// FileStore owns the lifecycle of uploaded assets on local disk. Files live
// under Root, namespaced by folder, and are addressed publicly either as
// "{BaseURL}/uploads/<folder>/<name>" or root-relative "/uploads/<folder>/<name>".
type FileStore struct {
	Root    string // directory the "uploads" tree is rooted at, e.g. "uploads"
	BaseURL string // optional absolute base for public URLs
}

func NewFileStore(root, baseURL string) *FileStore {
	if root == "" {
		root = "uploads"
	}
	return &FileStore{
		Root:    root,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Store persists the file bytes under the given folder with a
// collision-resistant generated name and returns the public URL.
// The extension is preserved from the original name, defaulting to .png.
func (s *FileStore) Store(data []byte, originalName, folder string) (string, error) {
	if folder == "" {
		folder = defaultFolder
	}

	targetDir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".png"
	}
	uniqueName := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	if err := os.WriteFile(filepath.Join(targetDir, uniqueName), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.publicURL(fmt.Sprintf("uploads/%s/%s", folder, uniqueName)), nil
}

// Delete removes the asset behind a public URL or stored relative path.
// A missing file is not an error so retried deletes stay idempotent.
func (s *FileStore) Delete(fileURL string) error {
	rel := relativeUploadPath(fileURL)
	if rel == "" {
		return nil
	}

	fullPath := filepath.Join(s.Root, strings.TrimPrefix(rel, "uploads/"))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Replace stores the new file into the folder inferred from the old URL and
// then deletes the old asset. The new URL is returned even when deleting the
// old file fails, so the fresh reference is never lost; callers decide
// whether the leftover matters.
func (s *FileStore) Replace(oldURL string, data []byte, originalName string) (string, error) {
	folder := defaultFolder
	if rel := relativeUploadPath(oldURL); rel != "" {
		if parts := strings.Split(rel, "/"); len(parts) > 1 {
			folder = parts[1]
		}
	}

	newURL, err := s.Store(data, originalName, folder)
	if err != nil {
		return "", err
	}

	if err := s.Delete(oldURL); err != nil {
		return newURL, err
	}
	return newURL, nil
}

func (s *FileStore) publicURL(relativePath string) string {
	normalized := strings.TrimLeft(strings.ReplaceAll(relativePath, "\\", "/"), "/")
	if s.BaseURL != "" {
		return s.BaseURL + "/" + normalized
	}
	return "/" + normalized
}

// relativeUploadPath resolves a public URL or stored path back to the
// "uploads/..." relative path, or "" when there is nothing to resolve.
func relativeUploadPath(fileURL string) string {
	if fileURL == "" {
		return ""
	}

	if idx := strings.Index(fileURL, "/uploads/"); idx != -1 {
		return fileURL[idx+1:]
	}
	if strings.HasPrefix(fileURL, "uploads/") {
		return fileURL
	}
	if strings.HasPrefix(fileURL, "/") {
		return "uploads" + fileURL
	}
	return "uploads/" + fileURL
}
