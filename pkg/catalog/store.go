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

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Store is the in-memory mirror of every namespace file reachable from a
// resource directory's aggregator file. Lookups are served from the
// mirror; Writer is the only thing that mutates it.
type Store struct {
	Dir string
	Ext string

	order  []string
	values map[string]string
}

// Load reads dir's aggregator file (named "index"+ext) and every namespace
// file it imports, building the flattened mirror. A missing aggregator is
// not an error: it means the resource directory is still empty.
func Load(dir, ext string) (*Store, error) {
	s := &Store{Dir: dir, Ext: ext, values: map[string]string{}}

	aggPath := filepath.Join(dir, "index"+ext)
	data, err := os.ReadFile(aggPath)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "catalog: read aggregator")
	}

	for _, ns := range AggregatorNamespaces(data) {
		nsPath := filepath.Join(dir, ns+ext)
		nsData, err := os.ReadFile(nsPath)
		if err != nil {
			klog.Warningf("catalog: skipping namespace %q: %v", ns, err)
			continue
		}
		root, err := ParseDefaultExport(nsData)
		if err != nil {
			klog.Warningf("catalog: skipping namespace %q: %v", ns, err)
			continue
		}
		var kvs []KV
		root.Flatten(ns, &kvs)
		for _, kv := range kvs {
			s.set(kv.Key, kv.Value)
		}
	}
	return s, nil
}

// LookupByValue performs a stable, insertion-order scan for the first key
// bound to v.
func (s *Store) LookupByValue(v string) (string, bool) {
	for _, k := range s.order {
		if s.values[k] == v {
			return k, true
		}
	}
	return "", false
}

// LookupByKey returns the value bound to the dotted key, if any.
func (s *Store) LookupByKey(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns every known key, in insertion order.
func (s *Store) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Reserve records key/value in the mirror without touching disk. The
// Writer calls this too, after it durably persists the same pair, so the
// mirror and disk never observe each other out of order within a run.
func (s *Store) Reserve(key, value string) {
	s.set(key, value)
}

func (s *Store) set(key, value string) {
	if _, exists := s.values[key]; !exists {
		s.order = append(s.order, key)
	}
	s.values[key] = value
}
