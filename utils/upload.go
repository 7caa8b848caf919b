package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxUploadSize caps uploaded files at 10 MiB.
const MaxUploadSize = 10 << 20

var allowedUploadExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
	".dcm":  true,
}

// FileStore saves uploaded files under a local directory.
type FileStore struct {
	Dir string
}

// Save validates the upload and writes it to disk under a generated
// filename. It returns the stored filename.
func (s *FileStore) Save(header *multipart.FileHeader) (string, error) {
	if header.Size > MaxUploadSize {
		return "", ValidationError("file exceeds the 10MB size limit")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExtensions[ext] {
		return "", ValidationError("only image, PDF and DICOM files are allowed")
	}

	src, err := header.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", errors.Wrap(err, "failed to create stored file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxUploadSize)); err != nil {
		return "", errors.Wrap(err, "failed to write stored file")
	}
	return filename, nil
}

// Remove deletes a previously stored file. Missing files are not an error.
func (s *FileStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.Dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove stored file")
	}
	return nil
}
