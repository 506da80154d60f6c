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

package translator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareFragmentKeepsHanAndLettersTruncates(t *testing.T) {
	assert.Equal(t, "提交订单a", PrepareFragment("提交订单ab!!"))
	assert.Equal(t, emptyFragmentSentinel, PrepareFragment("123!!!"))
}

func TestPinyinTranslateBatch(t *testing.T) {
	p := Pinyin{}
	out, err := p.TranslateBatch(context.Background(), []string{"提交", "取消"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "ti jiao", out[0])
	assert.Equal(t, "qu xiao", out[1])
}

func TestPinyinCommonGreetingAndConfirmation(t *testing.T) {
	out, err := Pinyin{}.TranslateBatch(context.Background(), []string{"你好", "确认"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "ni hao", out[0])
	assert.Equal(t, "que ren", out[1])
}

func TestPinyinUnknownCharacterFallsBack(t *testing.T) {
	out, err := Pinyin{}.TranslateBatch(context.Background(), []string{"龘"})
	require.NoError(t, err)
	assert.Equal(t, fallbackSyllable, out[0])
}

func TestConcurrentTranslateBatchPreservesOrder(t *testing.T) {
	c := NewConcurrent(func(_ context.Context, f string) (string, error) {
		return f + "-done", nil
	}, 2)
	out, err := c.TranslateBatch(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a-done", "b-done", "c-done"}, out)
}
