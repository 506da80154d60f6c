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

// Package walker enumerates candidate source files under a target,
// honoring ignore lists, an extension allow-list, and a catalog directory
// exclusion.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options configures Walk.
type Options struct {
	// IgnoreDirs is a list of filepath.Match patterns tested against a
	// directory's base name; a match prunes that whole subtree.
	IgnoreDirs []string
	// IgnoreFiles is a list of filepath.Match patterns tested against a
	// file's base name.
	IgnoreFiles []string
	// Extensions is the allow-list, including the leading dot (".ts").
	Extensions []string
	// CatalogDir, if non-empty, is resolved to an absolute path and any
	// file beneath it is excluded.
	CatalogDir string
}

// Walk resolves target (a single directory, or a comma-separated explicit
// file list) into a sorted-by-discovery list of absolute file paths
// matching opts. I/O errors on individual entries are swallowed; the
// offending entry is simply skipped.
func Walk(target string, opts Options) ([]string, error) {
	tokens := splitTarget(target)
	if len(tokens) == 0 {
		return nil, nil
	}

	catalogAbs := ""
	if opts.CatalogDir != "" {
		if abs, err := filepath.Abs(opts.CatalogDir); err == nil {
			catalogAbs = abs
		}
	}

	if info, err := os.Stat(tokens[0]); err == nil && info.IsDir() {
		return walkDir(tokens[0], opts, catalogAbs)
	}

	var out []string
	for _, t := range tokens {
		abs, err := filepath.Abs(t)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err != nil {
			continue
		}
		if underCatalogDir(abs, catalogAbs) {
			continue
		}
		if !hasAllowedExt(abs, opts.Extensions) {
			continue
		}
		out = append(out, abs)
	}
	return out, nil
}

func splitTarget(target string) []string {
	var out []string
	for _, t := range strings.Split(target, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func walkDir(root string, opts Options, catalogAbs string) ([]string, error) {
	var out []string
	err := filepath.Walk(root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != root && matchesAny(opts.IgnoreDirs, info.Name()) {
				return filepath.SkipDir
			}
			abs, aerr := filepath.Abs(path)
			if aerr == nil && underCatalogDir(abs, catalogAbs) {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesAny(opts.IgnoreFiles, info.Name()) {
			return nil
		}
		abs, aerr := filepath.Abs(path)
		if aerr != nil {
			return nil
		}
		if underCatalogDir(abs, catalogAbs) {
			return nil
		}
		if !hasAllowedExt(abs, opts.Extensions) {
			return nil
		}
		out = append(out, abs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func underCatalogDir(abs, catalogAbs string) bool {
	if catalogAbs == "" {
		return false
	}
	return abs == catalogAbs || strings.HasPrefix(abs, catalogAbs+string(filepath.Separator))
}

func hasAllowedExt(abs string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(abs))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
