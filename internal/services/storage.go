package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageService holds uploads in a scratch directory just long enough for
// text extraction. Documents themselves live on the file-hosting service the
// frontend uploads to; nothing here is kept.
type StorageService interface {
	SaveScratch(file *multipart.FileHeader) (string, error)
	Remove(path string) error
	EnsureScratchDir() error
}

type storageService struct {
	scratchDir string
}

func NewStorageService(scratchDir string) StorageService {
	return &storageService{
		scratchDir: scratchDir,
	}
}

func (s *storageService) EnsureScratchDir() error {
	if err := os.MkdirAll(s.scratchDir, 0755); err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return nil
}

// SaveScratch writes the upload to the scratch directory and returns its path.
func (s *storageService) SaveScratch(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", fmt.Errorf("invalid file extension: %s", ext)
	}

	filePath := filepath.Join(s.scratchDir, uuid.New().String()+ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

func (s *storageService) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove scratch file: %w", err)
	}
	return nil
}
