package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileSource reads BAI2 files that an upstream transport (the bank
// SFTP job) has already dropped on local disk. Given a file path it reads
// that file; given a directory it picks the newest settlement file in it.
type LocalFileSource struct {
	Path string
}

// NewLocalFileSource creates a source for a file or directory path.
func NewLocalFileSource(path string) *LocalFileSource {
	return &LocalFileSource{Path: path}
}

// settlement file extensions the bank drop uses.
var baiExtensions = map[string]bool{".bai": true, ".bai2": true, ".txt": true}

// Fetch returns the base name and full content of the settlement file.
func (s *LocalFileSource) Fetch(ctx context.Context) (string, []byte, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	path := s.Path
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("stat input path %s: %w", path, err)
	}
	if info.IsDir() {
		path, err = newestSettlementFile(path)
		if err != nil {
			return "", nil, err
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read settlement file %s: %w", path, err)
	}
	return filepath.Base(path), content, nil
}

// newestSettlementFile returns the most recently modified BAI file in dir.
func newestSettlementFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("list input directory %s: %w", dir, err)
	}

	var newest string
	var newestMod int64
	for _, entry := range entries {
		if entry.IsDir() || !baiExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().UnixNano() > newestMod {
			newest = filepath.Join(dir, entry.Name())
			newestMod = info.ModTime().UnixNano()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no settlement files (*.bai, *.bai2, *.txt) in %s", dir)
	}
	return newest, nil
}
