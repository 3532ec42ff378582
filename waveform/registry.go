// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Format pairs a container reader with the sample convention it implies.
type Format struct {
	Kind   ContainerKind
	Opener Opener
}

// Registry maps format keys (e.g. "wav", "aiff") to container readers.
type Registry struct {
	formats map[string]Format

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
		mtx:     &sync.Mutex{},
	}
}

// Register adds or replaces the reader for a format key. Keys are case
// insensitive.
func (r *Registry) Register(key string, kind ContainerKind, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.formats[strings.ToLower(key)] = Format{Kind: kind, Opener: o}
}

func (r *Registry) Get(key string) (Format, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.formats[strings.ToLower(key)]
	return f, ok
}

// ForPath looks up the format by the extension of path.
func (r *Registry) ForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, ok := r.Get(ext)
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return f, nil
}

// NewDecoder builds a decoder for path using the format registered for its
// extension. opts.Kind is taken from the registered format.
func (r *Registry) NewDecoder(path string, opts Options) (*Decoder, error) {
	f, err := r.ForPath(path)
	if err != nil {
		return nil, err
	}
	opts.Kind = f.Kind
	return NewDecoder(path, f.Opener, opts), nil
}
