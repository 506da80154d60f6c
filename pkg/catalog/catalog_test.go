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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeSetGetFlatten(t *testing.T) {
	root := NewNode()
	root.Set([]string{"pages", "user", "submit"}, "提交")
	root.Set([]string{"common", "cancel"}, "取消")

	n, ok := root.Get([]string{"pages", "user", "submit"})
	require.True(t, ok)
	assert.Equal(t, "提交", n.Value)

	var kvs []KV
	root.Flatten("", &kvs)
	require.Len(t, kvs, 2)
	assert.Equal(t, "pages.user.submit", kvs[0].Key)
	assert.Equal(t, "common.cancel", kvs[1].Key)
}

func TestParseDefaultExportAndRenderRoundTrip(t *testing.T) {
	src := []byte("export default {\n  tiJiao: '提交',\n  nested: {\n    a: '换行\\n结束',\n  },\n};\n")
	root, err := ParseDefaultExport(src)
	require.NoError(t, err)

	n, ok := root.Get([]string{"tiJiao"})
	require.True(t, ok)
	assert.Equal(t, "提交", n.Value)

	nested, ok := root.Get([]string{"nested", "a"})
	require.True(t, ok)
	assert.Equal(t, "换行\n结束", nested.Value)

	out := RenderNamespace(root)
	assert.Contains(t, string(out), "export default {")
	assert.Contains(t, string(out), "tiJiao: '提交',")
	assert.Contains(t, string(out), `\n`)
}

func TestNewAndPatchAggregator(t *testing.T) {
	fresh := NewAggregator("common")
	assert.Contains(t, string(fresh), "import common from './common'")
	assert.Contains(t, string(fresh), "common,")

	patched, err := PatchAggregator(fresh, "pages")
	require.NoError(t, err)
	assert.Contains(t, string(patched), "import pages from './pages'")
	assert.Contains(t, string(patched), "pages,")
	assert.Contains(t, string(patched), "common,")

	again, err := PatchAggregator(patched, "pages")
	require.NoError(t, err)
	assert.Equal(t, string(patched), string(again))
}

func TestPatchAggregatorObjectAssignForm(t *testing.T) {
	src := []byte("import common from './common'\n\nexport default Object.assign({}, {\n  common,\n})\n")
	patched, err := PatchAggregator(src, "pages")
	require.NoError(t, err)
	assert.Contains(t, string(patched), "import pages from './pages'")
	assert.Contains(t, string(patched), "pages,")
}

func TestWriterCreatesNamespaceAndAggregator(t *testing.T) {
	dir := t.TempDir()
	store, err := Load(dir, ".ts")
	require.NoError(t, err)

	w := NewWriter(dir, ".ts", true)
	b := w.NewBatch(store)
	b.Stage("common.tiJiao", "提交")
	require.NoError(t, b.Commit())

	data, err := os.ReadFile(filepath.Join(dir, "common.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "tiJiao: '提交'")

	agg, err := os.ReadFile(filepath.Join(dir, "index.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(agg), "import common from './common'")

	v, ok := store.LookupByKey("common.tiJiao")
	require.True(t, ok)
	assert.Equal(t, "提交", v)
}

func TestWriterDuplicateValidation(t *testing.T) {
	dir := t.TempDir()
	store, err := Load(dir, ".ts")
	require.NoError(t, err)

	w := NewWriter(dir, ".ts", true)
	b := w.NewBatch(store)
	b.Stage("common.tiJiao", "提交")
	require.NoError(t, b.Commit())

	b2 := w.NewBatch(store)
	b2.Stage("common.tiJiao", "不同的文本")
	err = b2.Commit()
	require.Error(t, err)
}

func TestStoreLookupByValueStableOrder(t *testing.T) {
	dir := t.TempDir()
	store, err := Load(dir, ".ts")
	require.NoError(t, err)

	w := NewWriter(dir, ".ts", false)
	b := w.NewBatch(store)
	b.Stage("common.a", "你好")
	b.Stage("common.b", "你好")
	require.NoError(t, b.Commit())

	key, ok := store.LookupByValue("你好")
	require.True(t, ok)
	assert.Equal(t, "common.a", key)
}
