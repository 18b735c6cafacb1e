package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/retrofmt/go-t64/internal/codec"
)

// ReadImageFile reads a whole image file into memory.
func ReadImageFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return data, nil
}

// WriteImageFile writes a whole image buffer to path. The data goes to a
// uniquely named temp file in the target directory first and is renamed
// into place, so an interrupted write never leaves a half-written image
// behind.
func WriteImageFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move image file into place: %w", err)
	}
	return nil
}

// WritePRGFile writes a program file: the 16-bit load address followed
// by the payload.
func WritePRGFile(path string, loadAddr uint16, payload []byte) error {
	buf := make([]byte, 2+len(payload))
	codec.PutUint16(buf, 0, loadAddr)
	copy(buf[2:], payload)

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write program file: %w", err)
	}
	return nil
}

// BackupFile renames an existing file to path + ".bak". A missing file
// is not an error, there is simply nothing to back up.
func BackupFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat file for backup: %w", err)
	}
	if err := os.Rename(path, path+".bak"); err != nil {
		return fmt.Errorf("failed to back up file: %w", err)
	}
	return nil
}
