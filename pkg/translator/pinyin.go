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
	"strings"
)

// fallbackSyllable stands in for any Han character pinyinTable does not
// cover, so an unknown character never produces an empty token.
const fallbackSyllable = "zi"

// Pinyin is the default KeyTranslator: it runs entirely offline, mapping
// each fragment's Han characters through pinyinTable (space-joined
// syllables) and passing ASCII letters through unchanged.
type Pinyin struct{}

// TranslateBatch implements KeyTranslator.
func (Pinyin) TranslateBatch(_ context.Context, fragments []string) ([]string, error) {
	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = romanize(f)
	}
	return out, nil
}

// romanize turns fragment into a space-separated sequence of pinyin
// syllables and ASCII-letter runs, so the key synthesizer's camelCase step
// can join them as word boundaries (e.g. "提交" -> "ti jiao" -> "tiJiao").
func romanize(fragment string) string {
	var words []string
	var buf []rune
	flush := func() {
		if len(buf) > 0 {
			words = append(words, string(buf))
			buf = buf[:0]
		}
	}
	for _, r := range fragment {
		if isHan(r) {
			flush()
			syl, ok := pinyinTable[r]
			if !ok {
				syl = fallbackSyllable
			}
			words = append(words, syl)
			continue
		}
		buf = append(buf, r)
	}
	flush()
	return strings.Join(words, " ")
}
