package store

import (
	"bytes"
	"context"
	_ "embed"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/rigcheck/rigcheck/pkg/build"
	"github.com/rigcheck/rigcheck/pkg/catalog"
	"github.com/rigcheck/rigcheck/pkg/errors"
	"github.com/rigcheck/rigcheck/pkg/validation"
)

var (
	//go:embed data/catalog.yaml
	defaultData []byte

	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Store holds fully resolved builds in memory. It is safe for concurrent
// use; nothing mutates it after construction.
type Store struct {
	items  catalog.Index
	builds map[string]*build.Build
	ids    []string
}

// New validates doc and resolves every reference in it.
func New(doc *Document) (*Store, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "store document is nil")
	}
	if err := validation.Struct(doc); err != nil {
		return nil, err
	}

	r := newResolver()
	builds, err := r.resolve(doc)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(builds))
	for id := range builds {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	slog.Debug("store loaded",
		"items", len(r.items),
		"builds", len(ids),
	)

	return &Store{items: r.items, builds: builds, ids: ids}, nil
}

// Load decodes a YAML document from r and builds a Store from it. Unknown
// fields are rejected.
func Load(r io.Reader) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.New(errors.ErrCodeInvalidRequest, "store document is empty")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse store document", err)
	}
	return New(&doc)
}

// LoadFile reads the YAML document at path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("failed to open store file %q", path), err,
			map[string]any{"path": path})
	}
	defer f.Close()

	return Load(f)
}

// Default returns the store built from the embedded sample data. The data
// is parsed once and shared for the lifetime of the process.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Load(bytes.NewReader(defaultData))
	})
	return defaultStore, defaultErr
}

// Open returns the store at path, or the embedded store when path is empty.
func Open(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// FindBuild returns the build with the given id.
func (s *Store) FindBuild(_ context.Context, id string) (*build.Build, bool) {
	b, ok := s.builds[id]
	return b, ok
}

// IDs returns all build ids in ascending order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Items returns the catalog items of the store.
func (s *Store) Items() catalog.Index {
	return s.items
}

// Suggest returns the known build id closest to id by edit distance, if
// one is close enough to be a plausible typo.
func (s *Store) Suggest(id string) (string, bool) {
	best, bestDist := "", -1
	for _, candidate := range s.ids {
		d := levenshtein.ComputeDistance(id, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance(id) {
		return "", false
	}
	return best, true
}

// maxSuggestDistance allows roughly one edit per three characters, and at
// least two.
func maxSuggestDistance(id string) int {
	return max(2, len(id)/3)
}
