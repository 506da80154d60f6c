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
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/kiwigo/extract/internal/htmlscan"
	"github.com/kiwigo/extract/pkg/span"
)

var mustacheRe = regexp.MustCompile(`\{\{.*?\}\}`)

// HTML extracts Chinese-bearing spans from a standalone markup file by
// walking it as a DOM-like token stream (see internal/htmlscan).
func HTML(src []byte) ([]span.Record, error) {
	toks, err := htmlscan.Tokens(src)
	if err != nil {
		return nil, errors.Wrap(err, "extract: parse html")
	}

	var out []span.Record
	for _, tok := range toks {
		switch tok.Type {
		case html.StartTagToken, html.SelfClosingTagToken:
			out = append(out, attrRecords(src, tok.Attrs)...)
		case html.TextToken:
			out = append(out, textRecords(src, tok.Range)...)
		}
	}
	return out, nil
}

func attrRecords(src []byte, attrs []htmlscan.Attr) []span.Record {
	var out []span.Record
	for _, a := range attrs {
		raw := src[a.ValueRange.Start:a.ValueRange.End]
		text := unquote(raw)
		if !ContainsChinese(text) {
			continue
		}
		isString := len(raw) > 0 && (raw[0] == '"' || raw[0] == '\'')
		out = append(out, span.Record{Text: text, Range: a.ValueRange, IsString: isString})
	}
	return out
}

// textRecords splits a text node on "{{ ... }}" boundaries and reports a
// record per Chinese-bearing piece: an interpolation segment yields whatever
// boundExpressionSpans finds in its interior (a quoted literal substring, or
// else a bare run of Chinese code points), and a static segment yields its
// own trimmed span when it carries Chinese directly.
func textRecords(src []byte, r span.Range) []span.Record {
	raw := src[r.Start:r.End]

	var out []span.Record
	for _, seg := range splitMustache(raw) {
		segAbs := shift(seg.r, r.Start)
		if seg.isExpr {
			out = append(out, boundExpressionSpans(src, segAbs)...)
			continue
		}
		segText := strings.TrimSpace(string(src[segAbs.Start:segAbs.End]))
		if segText == "" || !ContainsChinese(segText) {
			continue
		}
		out = append(out, span.Record{Text: segText, Range: segAbs, IsString: false})
	}
	return out
}

func unquote(raw []byte) string {
	if len(raw) >= 2 {
		if (raw[0] == '"' && raw[len(raw)-1] == '"') || (raw[0] == '\'' && raw[len(raw)-1] == '\'') {
			return string(raw[1 : len(raw)-1])
		}
	}
	return string(raw)
}
