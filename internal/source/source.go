// Package source enumerates hand-history inputs and turns them into
// named line sequences. A path may be a single log file, a .zip
// export bundle, or a directory searched recursively. Individual logs
// may be gzip- or zstd-compressed. Character encoding is resolved
// here so the parser only ever sees text.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// File is one named sequence of raw text lines.
type File struct {
	Name  string
	Lines []string
}

// Read resolves a path into hand-history files. Unreadable members
// inside an otherwise readable input are skipped with a warning; an
// unreadable root path is an error.
func Read(path string, logger zerolog.Logger) ([]File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		return readDir(path, logger)
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return readZip(path, logger)
	}

	file, err := readLogFile(path)
	if err != nil {
		return nil, err
	}
	return []File{file}, nil
}

// readDir walks a directory tree collecting every .txt log, including
// compressed ones.
func readDir(root string, logger zerolog.Logger) ([]File, error) {
	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLogName(d.Name()) {
			return nil
		}
		file, err := readLogFile(path)
		if err != nil {
			logger.Warn().Str("file", path).Err(err).Msg("skipping unreadable file")
			return nil
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

// readLogFile reads one log from disk, decompressing by extension.
func readLogFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	data, err = decompress(filepath.Ext(path), data)
	if err != nil {
		return File{}, fmt.Errorf("decompress %s: %w", path, err)
	}
	return File{Name: filepath.Base(path), Lines: decodeLines(data)}, nil
}

// isLogName reports whether a file name looks like a hand-history
// log: .txt, optionally with a compression suffix.
func isLogName(name string) bool {
	lower := strings.ToLower(name)
	lower = strings.TrimSuffix(lower, ".gz")
	lower = strings.TrimSuffix(lower, ".zst")
	return strings.HasSuffix(lower, ".txt") || strings.HasSuffix(lower, ".log")
}
