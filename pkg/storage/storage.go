// Package storage is the file I/O collaborator for the pipeline: it reads
// the source corpus and writes the final report. The core pipeline never
// touches the filesystem itself.
package storage

import (
	"fmt"
	"os"
)

type Storage struct{}

// ReadFile returns the full contents of the source file. A failure here is
// fatal to the run: no output is produced.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// SaveFile writes content to filePath, replacing any existing file.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
