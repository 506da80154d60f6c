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

package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalkDirFiltersExtensionsAndIgnores(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "a.ts"), "")
	writeFile(t, filepath.Join(root, "src", "a.css"), "")
	writeFile(t, filepath.Join(root, "node_modules", "x.ts"), "")
	writeFile(t, filepath.Join(root, "src", "i18n", "common.ts"), "")

	out, err := Walk(root, Options{
		Extensions: []string{".ts", ".tsx", ".js", ".jsx", ".vue"},
		IgnoreDirs: []string{"node_modules"},
		CatalogDir: filepath.Join(root, "src", "i18n"),
	})
	require.NoError(t, err)

	var base []string
	for _, p := range out {
		base = append(base, filepath.Base(p))
	}
	assert.ElementsMatch(t, []string{"a.ts"}, base)
}

func TestWalkExplicitFileList(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a.ts")
	b := filepath.Join(root, "b.ts")
	writeFile(t, a, "")
	writeFile(t, b, "")
	missing := filepath.Join(root, "missing.ts")

	out, err := Walk(a+","+b+","+missing, Options{Extensions: []string{".ts"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, out)
}

func TestWalkIgnoreFilePattern(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.test.ts"), "")
	writeFile(t, filepath.Join(root, "a.ts"), "")

	out, err := Walk(root, Options{Extensions: []string{".ts"}, IgnoreFiles: []string{"*.test.ts"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a.ts", filepath.Base(out[0]))
}
