package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-json"
)

// Sentinel errors returned by repositories. Callers match them with errors.Is.
var (
	ErrUnknown  = errors.New("unknown error")
	ErrNoData   = errors.New("catalog has no data")
	ErrDecoding = errors.New("catalog could not be decoded")
	ErrNoFile   = errors.New("catalog file not found")
)

//go:embed patterns.json
var embeddedPatterns []byte

// Repository provides the patterns of the catalog.
type Repository interface {
	Patterns(ctx context.Context) ([]Pattern, error)
}

// FileRepository reads the catalog from a JSON file on disk.
type FileRepository struct {
	Path string
}

// Patterns reads and decodes the file on every call.
func (r FileRepository) Patterns(ctx context.Context) ([]Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNoFile, r.Path)
	case err != nil:
		return nil, fmt.Errorf("%w: read %s: %v", ErrNoData, r.Path, err)
	}

	return decode(data)
}

// EmbeddedRepository serves the catalog bundled with the binary.
type EmbeddedRepository struct{}

func (EmbeddedRepository) Patterns(ctx context.Context) ([]Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return decode(embeddedPatterns)
}

// NewRepository returns a FileRepository for path, or the embedded catalog
// when path is empty.
func NewRepository(path string) Repository {
	if path == "" {
		return EmbeddedRepository{}
	}
	return FileRepository{Path: path}
}

func decode(data []byte) ([]Pattern, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoData
	}

	var patterns []Pattern
	if err := json.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return patterns, nil
}
