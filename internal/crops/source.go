package crops

import (
	"context"
	"fmt"
	"os"
)

// Source supplies the crop dataset at startup.
type Source interface {
	// Load reads the full dataset.
	Load(ctx context.Context) (Dataset, error)

	// Name returns the source name for logging.
	Name() string
}

// EmbeddedSource loads the reference table compiled into the binary.
type EmbeddedSource struct{}

// Load returns the built-in dataset.
func (EmbeddedSource) Load(_ context.Context) (Dataset, error) {
	return EmbeddedDataset()
}

// Name returns "embedded".
func (EmbeddedSource) Name() string {
	return "embedded"
}

// FileSource loads a YAML dataset from disk. The file uses the same schema
// as the embedded table.
type FileSource struct {
	Path string
}

// Load reads and decodes the file.
func (s FileSource) Load(_ context.Context) (Dataset, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read crop dataset: %w", err)
	}
	return ParseDataset(data)
}

// Name returns "file".
func (s FileSource) Name() string {
	return "file"
}

// LoadResolver loads a dataset from src once and builds a resolver over it.
// The resolver never calls back into the source.
func LoadResolver(ctx context.Context, src Source) (*Resolver, error) {
	ds, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load crops from %s: %w", src.Name(), err)
	}
	table, err := NewTable(ds)
	if err != nil {
		return nil, fmt.Errorf("build crop table from %s: %w", src.Name(), err)
	}
	return NewResolver(table), nil
}

// Ensure sources implement the Source interface.
var (
	_ Source = EmbeddedSource{}
	_ Source = FileSource{}
)
