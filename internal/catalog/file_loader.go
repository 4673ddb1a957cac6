package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"ethnic-elite/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading a products JSON file from the
// local file system.
type fileLoader struct {
	path   string
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader. The file must
// contain a JSON array of products; a ".gz" suffix enables gzip
// decompression.
func NewFileLoader(path string, logger zerolog.Logger) Loader {
	return &fileLoader{
		path:   path,
		logger: logger.With().Str("component", "catalog-file-loader").Logger(),
	}
}

// Load reads and validates the products file.
func (l *fileLoader) Load(ctx context.Context) ([]model.Product, error) {
	l.logger.Info().Str("file", l.path).Msg("loading product catalogue")

	file, err := os.Open(l.path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", l.path, err)
	}
	defer file.Close()

	products, err := decodeProducts(file, strings.HasSuffix(l.path, ".gz"))
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to decode catalogue file")
		return nil, fmt.Errorf("failed to decode catalogue file %s: %w", l.path, err)
	}

	if err := validateProducts(products); err != nil {
		return nil, fmt.Errorf("catalogue file %s: %w", l.path, err)
	}

	l.logger.Info().
		Str("file", l.path).
		Int("products", len(products)).
		Msg("product catalogue loaded")

	return products, nil
}

// decodeProducts decodes a JSON product array, optionally gunzipping the
// stream first.
func decodeProducts(r io.Reader, gzipped bool) ([]model.Product, error) {
	if gzipped {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("invalid product JSON: %w", err)
	}
	return products, nil
}
