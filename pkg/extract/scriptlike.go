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
	"strings"

	"github.com/kiwigo/extract/internal/jsscan"
	"github.com/kiwigo/extract/pkg/span"
)

// TypedScript extracts Chinese-bearing spans from the typed-script dialect
// (TypeScript plus its markup-expression extension, .ts/.tsx). offset is
// added to every reported range, letting callers embed a section of a
// larger file (a component's <script lang="ts"> block) without losing
// byte-accurate positions relative to the whole file.
func TypedScript(src []byte, offset int) ([]span.Record, error) {
	return scriptLikeSpans(src, offset), nil
}

// Script extracts Chinese-bearing spans from the plain script dialect
// (ECMAScript plus markup-expression and decorator syntax, .js/.jsx).
// Decorator syntax does not change how string/template/markup-text spans
// are found, so it shares TypedScript's scanner.
func Script(src []byte, offset int) ([]span.Record, error) {
	return scriptLikeSpans(src, offset), nil
}

func scriptLikeSpans(src []byte, offset int) []span.Record {
	res := jsscan.Scan(src)
	var out []span.Record

	for _, s := range res.Strings {
		if s.Range.Len() < 2 {
			continue
		}
		text := string(src[s.Range.Start+1 : s.Range.End-1])
		if !ContainsChinese(text) {
			continue
		}
		out = append(out, span.Record{
			Text:     text,
			Range:    shift(s.Range, offset),
			IsString: true,
		})
	}

	for _, t := range res.Templates {
		if t.Range.Len() < 2 {
			continue
		}
		whole := src[t.Range.Start:t.Range.End]
		if !ContainsChinese(string(whole)) {
			continue
		}
		inner := string(src[t.Range.Start+1 : t.Range.End-1])
		out = append(out, span.Record{
			Text:     inner,
			Range:    shift(t.Range, offset),
			IsString: true,
		})
	}

	for _, m := range res.MarkupText {
		raw := src[m.Range.Start:m.Range.End]
		testable := jsscan.StripComments(raw)
		if !ContainsChinese(string(testable)) {
			continue
		}
		trimmed := strings.TrimSpace(string(raw))
		if trimmed == "" {
			continue
		}
		out = append(out, span.Record{
			Text:     trimmed,
			Range:    shift(m.Range, offset),
			IsString: false,
		})
	}

	return out
}

func shift(r span.Range, offset int) span.Range {
	return span.Range{Start: r.Start + offset, End: r.End + offset}
}
