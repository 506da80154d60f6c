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

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwigo/extract/pkg/span"
)

func TestApplyPlainStringLiteral(t *testing.T) {
	src := []byte(`const msg = "提交";`)
	rec := span.Record{Text: "提交", Range: span.Range{Start: 12, End: 20}, IsString: true}
	res, err := Apply(src, []Edit{{Record: rec, Key: "common.submit", NeedWrite: true}}, Options{LookupSymbol: "I18N"})
	require.NoError(t, err)
	assert.Equal(t, `const msg = I18N.common.submit;`, string(res.Src))
	assert.Equal(t, "提交", res.CatalogValues["common.submit"])
}

func TestApplyAttributeAssignmentWrapsMarkup(t *testing.T) {
	src := []byte(`<input placeholder="请输入用户名" />`)
	rec := span.Record{Text: "请输入用户名", Range: span.Range{Start: 19, End: 39}, IsString: true}
	res, err := Apply(src, []Edit{{Record: rec, Key: "common.placeholder", NeedWrite: true}}, Options{LookupSymbol: "I18N", IsMarkupFile: true})
	require.NoError(t, err)
	assert.Equal(t, `<input placeholder={{I18N.common.placeholder}} />`, string(res.Src))
}

func TestApplyNonStringMarkupText(t *testing.T) {
	src := []byte(`<button>确定</button>`)
	rec := span.Record{Text: "确定", Range: span.Range{Start: 8, End: 14}, IsString: false}
	res, err := Apply(src, []Edit{{Record: rec, Key: "common.ok", NeedWrite: true}}, Options{LookupSymbol: "I18N", IsMarkupFile: true})
	require.NoError(t, err)
	assert.Equal(t, `<button>{{I18N.common.ok}}</button>`, string(res.Src))
}

func TestApplyTemplateLiteralWithInterpolation(t *testing.T) {
	src := []byte("const m = `你有${n}条消息`;")
	start := len("const m = ")
	end := len(src) - 1
	rec := span.Record{Text: "你有${n}条消息", Range: span.Range{Start: start, End: end}, IsString: true}
	res, err := Apply(src, []Edit{{Record: rec, Key: "common.msgCount", NeedWrite: true}}, Options{LookupSymbol: "I18N"})
	require.NoError(t, err)
	assert.Equal(t, "const m = I18N.template(I18N.common.msgCount, { val1: n });", string(res.Src))
	assert.Equal(t, "你有{val1}条消息", res.CatalogValues["common.msgCount"])
}

func TestApplyComponentMustacheInterior(t *testing.T) {
	src := []byte(`<span>{{ '你好' }}</span>`)
	rec := span.Record{Text: "你好", Range: span.Range{Start: 9, End: 17}, IsString: true}
	res, err := Apply(src, []Edit{{Record: rec, Key: "common.hello", NeedWrite: true}}, Options{LookupSymbol: "I18N", IsMarkupFile: true})
	require.NoError(t, err)
	assert.Equal(t, `<span>{{I18N.common.hello}}</span>`, string(res.Src))
}

func TestHasImportDetectsDefaultNamedNamespace(t *testing.T) {
	assert.True(t, HasImport([]byte(`import I18N from './i18n'`), "I18N"))
	assert.True(t, HasImport([]byte(`import { foo, I18N } from './i18n'`), "I18N"))
	assert.True(t, HasImport([]byte(`import * as I18N from './i18n'`), "I18N"))
	assert.False(t, HasImport([]byte(`import Other from './i18n'`), "I18N"))
	assert.False(t, HasImport([]byte(`const s = "import I18N from x"`), "I18N"))
}

func TestInjectImportAtScriptInsertionPoint(t *testing.T) {
	src := []byte("// license header\nconst a = 1;\n")
	at := ScriptInsertionPoint(src)
	out := InjectImport(src, at, "I18N", "@/i18n")
	assert.Equal(t, "// license header\nimport I18N from '@/i18n';\nconst a = 1;\n", string(out))
}
