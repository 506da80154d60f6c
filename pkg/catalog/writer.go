/*
Copyright 2026 The kiwigo Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrDuplicateKey is returned by Writer.write when ValidateDuplicate is set
// and a write would silently overwrite an existing, differently-valued
// entry.
var ErrDuplicateKey = errors.New("catalog: key already bound to a different value")

// Writer persists new entries to a resource directory: one file per
// namespace (the key's first dotted segment), plus an aggregator file that
// imports and re-exports every namespace.
type Writer struct {
	Dir               string
	Ext               string
	ValidateDuplicate bool
}

// NewWriter builds a Writer rooted at dir, using ext for generated file
// names (".ts" or ".js").
func NewWriter(dir, ext string, validateDuplicate bool) *Writer {
	return &Writer{Dir: dir, Ext: ext, ValidateDuplicate: validateDuplicate}
}

// Batch stages writes for one source file and commits them only once the
// caller confirms the rewritten source bytes were themselves durably
// written, so a crash between the two never leaves a catalog key with no
// source reference, or vice versa.
type Batch struct {
	writer  *Writer
	store   *Store
	pending []pendingEntry
}

type pendingEntry struct {
	key   string
	value string
}

// NewBatch opens a batch against store.
func (w *Writer) NewBatch(store *Store) *Batch {
	return &Batch{writer: w, store: store}
}

// Stage queues one key/value pair. The Store's mirror already reflects the
// pair (the synthesizer reserves it eagerly); Stage only queues the disk
// write.
func (b *Batch) Stage(key, value string) {
	b.pending = append(b.pending, pendingEntry{key: key, value: value})
}

// Empty reports whether any entry is queued.
func (b *Batch) Empty() bool {
	return len(b.pending) == 0
}

// Commit persists every staged entry to its namespace file, updating the
// aggregator as needed.
func (b *Batch) Commit() error {
	for _, pe := range b.pending {
		if err := b.writer.write(b.store, pe.key, pe.value); err != nil {
			return err
		}
	}
	b.pending = nil
	return nil
}

// splitNamespace splits a dotted key into its leading namespace segment
// and the remaining fullKey.
func splitNamespace(key string) (ns string, fullKey string, err error) {
	idx := strings.IndexByte(key, '.')
	if idx < 0 {
		return "", "", errors.Errorf("catalog: key %q has no namespace segment", key)
	}
	return key[:idx], key[idx+1:], nil
}

func (w *Writer) write(store *Store, key, value string) error {
	ns, fullKey, err := splitNamespace(key)
	if err != nil {
		return err
	}
	path := strings.Split(fullKey, ".")
	nsPath := filepath.Join(w.Dir, ns+w.Ext)

	data, err := os.ReadFile(nsPath)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(w.Dir, 0o755); err != nil {
			return errors.Wrapf(err, "catalog: create directory %q", w.Dir)
		}
		root := NewNode()
		root.Set(path, value)
		if err := os.WriteFile(nsPath, RenderNamespace(root), 0o644); err != nil {
			return errors.Wrapf(err, "catalog: write namespace %q", ns)
		}
		if err := w.ensureAggregator(ns); err != nil {
			return err
		}
	case err != nil:
		return errors.Wrapf(err, "catalog: read namespace %q", ns)
	default:
		root, err := ParseDefaultExport(data)
		if err != nil {
			return errors.Wrapf(err, "catalog: parse namespace %q", ns)
		}
		if existing, ok := root.Get(path); ok && existing.IsLeaf {
			if w.ValidateDuplicate && existing.Value != value {
				return errors.Wrapf(ErrDuplicateKey, "key %q", key)
			}
		}
		root.Set(path, value)
		if err := os.WriteFile(nsPath, RenderNamespace(root), 0o644); err != nil {
			return errors.Wrapf(err, "catalog: write namespace %q", ns)
		}
	}

	store.Reserve(key, value)
	return nil
}

func (w *Writer) ensureAggregator(ns string) error {
	aggPath := filepath.Join(w.Dir, "index"+w.Ext)
	data, err := os.ReadFile(aggPath)
	if os.IsNotExist(err) {
		return os.WriteFile(aggPath, NewAggregator(ns), 0o644)
	}
	if err != nil {
		return errors.Wrap(err, "catalog: read aggregator")
	}
	patched, err := PatchAggregator(data, ns)
	if err != nil {
		return err
	}
	return os.WriteFile(aggPath, patched, 0o644)
}
