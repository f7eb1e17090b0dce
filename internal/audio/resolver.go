package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

// FSResolver looks assets up in a stack of file systems, first match wins.
// Loaded bytes are cached per file name.
type FSResolver struct {
	layers []fs.FS
	cache  sync.Map
}

// NewFSResolver creates a resolver over layers; nil layers are skipped.
func NewFSResolver(layers ...fs.FS) *FSResolver {
	resolver := &FSResolver{}
	for _, layer := range layers {
		if layer != nil {
			resolver.layers = append(resolver.layers, layer)
		}
	}
	return resolver
}

// Resolve returns the bytes of name.format.
func (resolver *FSResolver) Resolve(name, format string) ([]byte, error) {
	fileName := name + "." + format
	if name == "" || format == "" || strings.Contains(fileName, "/") || !fs.ValidPath(fileName) {
		return nil, fmt.Errorf("%w: %q", ErrResourceNotFound, fileName)
	}

	if cached, ok := resolver.cache.Load(fileName); ok {
		return cached.([]byte), nil
	}

	for _, layer := range resolver.layers {
		data, err := fs.ReadFile(layer, fileName)
		if err == nil {
			resolver.cache.Store(fileName, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", fileName, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, fileName)
}
