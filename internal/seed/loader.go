package seed

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// fileLoader implements Loader for seed files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a seed file. The format follows the extension: .json, .yaml or
// .yml, each optionally followed by .gz.
func (l *fileLoader) Load(ctx context.Context, path string) (*Catalog, error) {
	l.logger.Info().Str("file", path).Msg("loading seed file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer file.Close()

	catalog, err := decode(ctx, file, path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode seed file")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("products", len(catalog.Products)).
		Int("orders", len(catalog.Orders)).
		Msg("seed file loaded successfully")

	return catalog, nil
}

// decode reads a whole seed document from r. name selects compression and format.
func decode(ctx context.Context, r io.Reader, name string) (*Catalog, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
		name = strings.TrimSuffix(name, ".gz")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file %s: %w", name, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse yaml seed %s: %w", name, err)
		}
	case ".json":
	default:
		return nil, fmt.Errorf("unsupported seed file format %q for %s", ext, name)
	}

	var catalog Catalog
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", name, err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", name, err)
	}

	return &catalog, nil
}

// yamlToJSON re-encodes a YAML document as JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(doc)
}

// LoadAll loads every path concurrently and merges the results in the order
// the paths were given.
func LoadAll(ctx context.Context, loader Loader, paths []string) (*Catalog, error) {
	results := make([]*Catalog, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			c, err := loader.Load(gctx, path)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(results...), nil
}
