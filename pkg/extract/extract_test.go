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

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	assert.Equal(t, DialectHTML, Dispatch("a/b.html"))
	assert.Equal(t, DialectComponent, Dispatch("a/b.vue"))
	assert.Equal(t, DialectScript, Dispatch("a/b.js"))
	assert.Equal(t, DialectScript, Dispatch("a/b.jsx"))
	assert.Equal(t, DialectTypedScript, Dispatch("a/b.ts"))
	assert.Equal(t, DialectTypedScript, Dispatch("a/b.tsx"))
}

func TestTypedScriptPlainString(t *testing.T) {
	recs, err := TypedScript([]byte(`const msg = "提交";`), 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "提交", recs[0].Text)
	assert.True(t, recs[0].IsString)
}

func TestTypedScriptTemplateLiteral(t *testing.T) {
	src := []byte("const m = `你有${n}条消息`;")
	recs, err := TypedScript(src, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "你有${n}条消息", recs[0].Text)
	assert.True(t, recs[0].IsString)
}

func TestHTMLAttribute(t *testing.T) {
	src := []byte(`<input placeholder="请输入用户名" />`)
	recs, err := HTML(src)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "请输入用户名", recs[0].Text)
	assert.True(t, recs[0].IsString)
}

func TestHTMLTextNode(t *testing.T) {
	src := []byte(`<button>确定</button>`)
	recs, err := HTML(src)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "确定", recs[0].Text)
	assert.False(t, recs[0].IsString)
}

func TestHTMLInterpolation(t *testing.T) {
	src := []byte(`<span>{{ '你好' }}</span>`)
	recs, err := HTML(src)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "你好", recs[0].Text)
	assert.True(t, recs[0].IsString)
}

func TestComponentV2TextAndScript(t *testing.T) {
	src := []byte(`<template>
  <button>确定</button>
</template>
<script>
export default {
  data() {
    return { msg: "取消" }
  }
}
</script>`)
	recs, err := Component(src, Vue2)
	require.NoError(t, err)

	var texts []string
	for _, r := range recs {
		texts = append(texts, r.Text)
	}
	assert.Contains(t, texts, "确定")
	assert.Contains(t, texts, "取消")
}

func TestComponentV2BoundAttribute(t *testing.T) {
	src := []byte(`<template>
  <input :placeholder="'请输入用户名'" />
</template>
<script>
export default {}
</script>`)
	recs, err := Component(src, Vue2)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "请输入用户名", recs[0].Text)
	assert.True(t, recs[0].IsString)
}

func TestComponentV3FallsBackOnMissingTemplate(t *testing.T) {
	src := []byte(`<script>
export default { data() { return { msg: "取消" } } }
</script>`)
	recs, err := Component(src, Vue3)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "取消", recs[0].Text)
}

func TestComponentV3Interpolation(t *testing.T) {
	src := []byte(`<template>
  <span>{{ '你好' }}</span>
</template>
<script setup>
const a = 1
</script>`)
	recs, err := Component(src, Vue3)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "你好", recs[0].Text)
	assert.True(t, recs[0].IsString)
}
