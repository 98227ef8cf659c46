package crops

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// embeddedData is the built-in reference table.
//
//go:embed data/crops.yaml
var embeddedData []byte

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
	defaultErr      error
)

// ParseDataset decodes a YAML crop dataset.
func ParseDataset(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode crop dataset: %w", err)
	}
	return ds, nil
}

// EmbeddedDataset returns the built-in reference dataset.
func EmbeddedDataset() (Dataset, error) {
	return ParseDataset(embeddedData)
}

// DefaultResolver returns the process-wide resolver over the built-in
// reference table. The table is built on first use, exactly once.
func DefaultResolver() (*Resolver, error) {
	defaultOnce.Do(func() {
		ds, err := EmbeddedDataset()
		if err != nil {
			defaultErr = err
			return
		}
		table, err := NewTable(ds)
		if err != nil {
			defaultErr = fmt.Errorf("build default crop table: %w", err)
			return
		}
		defaultResolver = NewResolver(table)
	})
	return defaultResolver, defaultErr
}

// DefaultTable returns the built-in reference table.
func DefaultTable() (*Table, error) {
	r, err := DefaultResolver()
	if err != nil {
		return nil, err
	}
	return r.Table(), nil
}
