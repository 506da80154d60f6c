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

// Package translator provides the KeyTranslator contract used to turn
// Chinese literal text into an English candidate token for key synthesis,
// plus a bundled no-network default implementation.
package translator

import (
	"context"
	"unicode"
)

// KeyTranslator romanizes or translates a batch of prepared fragments into
// candidate key tokens, one per input fragment, in the same order.
// Implementations are external collaborators: a real deployment might call
// out to Google/Baidu translation APIs. This repo ships only Pinyin, the
// one provider that needs no network access.
type KeyTranslator interface {
	TranslateBatch(ctx context.Context, fragments []string) ([]string, error)
}

// emptyFragmentSentinel stands in for a literal that contributes no Han
// characters or letters at all once punctuation and digits are stripped.
const emptyFragmentSentinel = "中文符号"

// maxFragmentRunes bounds how much of each literal is sent to a
// translation provider for key synthesis; only the token matters, not a
// faithful rendering of the whole string.
const maxFragmentRunes = 5

// PrepareFragment keeps only Han characters and ASCII letters from text,
// truncates to the first five resulting characters, and falls back to a
// fixed sentinel when nothing survives.
func PrepareFragment(text string) string {
	var kept []rune
	for _, r := range text {
		if len(kept) >= maxFragmentRunes {
			break
		}
		if isHan(r) || unicode.IsLetter(r) && r <= unicode.MaxASCII {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return emptyFragmentSentinel
	}
	return string(kept)
}

func isHan(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}
