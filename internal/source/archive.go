package source

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
)

// readZip extracts every .txt member of a PokerCraft export bundle.
// Members that fail to read are skipped so one bad entry does not
// lose the rest of the bundle.
func readZip(path string, logger zerolog.Logger) ([]File, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer archive.Close()

	var files []File
	for _, member := range archive.File {
		if !isLogName(member.Name) || strings.HasSuffix(member.Name, "/") {
			continue
		}
		data, err := readZipMember(member)
		if err == nil {
			data, err = decompress(filepath.Ext(member.Name), data)
		}
		if err != nil {
			logger.Warn().Str("member", member.Name).Err(err).Msg("skipping unreadable zip member")
			continue
		}
		files = append(files, File{Name: member.Name, Lines: decodeLines(data)})
	}
	return files, nil
}

func readZipMember(member *zip.File) ([]byte, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// decompress expands gzip or zstd payloads by extension; anything
// else passes through untouched.
func decompress(ext string, data []byte) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".zst":
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	default:
		return data, nil
	}
}
