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
	"unicode/utf8"

	"github.com/kiwigo/extract/internal/jsscan"
	"github.com/kiwigo/extract/pkg/span"
)

// isBoundAttr reports whether an attribute name denotes a JS-expression
// binding in a Vue template, as opposed to a static attribute value.
func isBoundAttr(name string) bool {
	return strings.HasPrefix(name, ":") ||
		strings.HasPrefix(name, "v-bind:") ||
		strings.HasPrefix(name, "v-model")
}

// splitMustache splits raw into alternating static and expression segments
// on "{{ ... }}" boundaries. For each segment it reports whether it is an
// expression (interior only, delimiters excluded) and its range within raw.
type mustacheSegment struct {
	isExpr bool
	r      span.Range
}

func splitMustache(raw []byte) []mustacheSegment {
	locs := mustacheRe.FindAllIndex(raw, -1)
	if locs == nil {
		return []mustacheSegment{{isExpr: false, r: span.Range{Start: 0, End: len(raw)}}}
	}
	var out []mustacheSegment
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			out = append(out, mustacheSegment{isExpr: false, r: span.Range{Start: prev, End: loc[0]}})
		}
		out = append(out, mustacheSegment{isExpr: true, r: span.Range{Start: loc[0] + 2, End: loc[1] - 2}})
		prev = loc[1]
	}
	if prev < len(raw) {
		out = append(out, mustacheSegment{isExpr: false, r: span.Range{Start: prev, End: len(raw)}})
	}
	return out
}

// boundExpressionSpans extracts Chinese spans from a JS-expression slice of
// src at exprRange: string/template literal substrings first, falling back
// to maximal runs of bare Chinese code points when no literal matches.
func boundExpressionSpans(src []byte, exprRange span.Range) []span.Record {
	exprSrc := src[exprRange.Start:exprRange.End]
	scan := jsscan.Scan(exprSrc)

	var out []span.Record
	for _, s := range scan.Strings {
		if s.Range.Len() < 2 {
			continue
		}
		text := string(exprSrc[s.Range.Start+1 : s.Range.End-1])
		if ContainsChinese(text) {
			out = append(out, span.Record{Text: text, Range: shift(s.Range, exprRange.Start), IsString: true})
		}
	}
	for _, t := range scan.Templates {
		if t.Range.Len() < 2 {
			continue
		}
		text := string(exprSrc[t.Range.Start+1 : t.Range.End-1])
		if ContainsChinese(text) {
			out = append(out, span.Record{Text: text, Range: shift(t.Range, exprRange.Start), IsString: true})
		}
	}
	if len(out) > 0 {
		return out
	}
	return chineseRuns(exprSrc, exprRange.Start)
}

// chineseRuns reports one span.Record per maximal run of Han code points in
// src, as if locating each Chinese "token" by successive indexOf calls.
func chineseRuns(src []byte, base int) []span.Record {
	var out []span.Record
	runStart := -1
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRune(src[i:])
		isHan := r >= 0x4E00 && r <= 0x9FFF
		if isHan && runStart < 0 {
			runStart = i
		}
		if !isHan && runStart >= 0 {
			out = append(out, span.Record{
				Text:     string(src[runStart:i]),
				Range:    span.Range{Start: base + runStart, End: base + i},
				IsString: false,
			})
			runStart = -1
		}
		i += size
	}
	if runStart >= 0 {
		out = append(out, span.Record{
			Text:     string(src[runStart:]),
			Range:    span.Range{Start: base + runStart, End: base + len(src)},
			IsString: false,
		})
	}
	return out
}
