package dly

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/couchcryptid/ghcn-daily-etl/internal/domain"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// FileSource reads one GHCN-Daily .dly file.
// It implements pipeline.Extractor.
type FileSource struct {
	path   string
	layout domain.Layout
}

// NewFileSource creates a source for the file at path using the standard layout.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, layout: domain.GHCNLayout()}
}

// WithLayout returns a copy of the source that decodes with layout.
func (s *FileSource) WithLayout(layout domain.Layout) *FileSource {
	return &FileSource{path: s.path, layout: layout}
}

// Name returns the file's base name.
func (s *FileSource) Name() string {
	return filepath.Base(s.path)
}

// Extract decodes the whole file. The file is Latin-1; it is converted to
// UTF-8 before fields are sliced by character. The handle is closed before
// Extract returns.
func (s *FileSource) Extract(ctx context.Context) (domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.layout.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Name(), err)
	}
	defer f.Close()

	table, err := s.layout.Decode(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	return table, nil
}
