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

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/kiwigo/extract/internal/htmlscan"
	"github.com/kiwigo/extract/pkg/span"
)

// componentV2 is the version-2 component-file walker. The reference tool
// pre-replaces space entities (&ensp; &emsp; &nbsp;) with fixed-width
// sentinels before running its regex-based template walk, to keep stray '&'
// bytes from confusing those regexes. This walker uses a real tokenizer
// (internal/htmlscan) instead of regexes for structure, so it is not
// susceptible to that interference and the substitution step is unnecessary
// here; Chinese detection and reported text both read directly from src.
func componentV2(src []byte) ([]span.Record, error) {
	var out []span.Record

	if tpl, ok := htmlscan.FindTemplate(src); ok {
		recs, err := templateSpansV2(src, tpl.Range)
		if err != nil {
			return nil, errors.Wrap(err, "extract: component v2 template")
		}
		out = append(out, recs...)
	}

	for _, sc := range htmlscan.FindScripts(src) {
		recs, err := TypedScript(src[sc.Range.Start:sc.Range.End], sc.Range.Start)
		if err != nil {
			continue
		}
		out = append(out, recs...)
	}

	return out, nil
}

func templateSpansV2(src []byte, tplRange span.Range) ([]span.Record, error) {
	toks, err := htmlscan.Tokens(src[tplRange.Start:tplRange.End])
	if err != nil {
		return nil, err
	}

	var out []span.Record
	for _, tok := range toks {
		switch tok.Type {
		case html.StartTagToken, html.SelfClosingTagToken:
			for _, a := range tok.Attrs {
				abs := shift(a.ValueRange, tplRange.Start)
				raw := src[abs.Start:abs.End]
				if isBoundAttr(a.Name) {
					inner := abs
					if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') {
						inner = span.Range{Start: abs.Start + 1, End: abs.End - 1}
					}
					out = append(out, boundExpressionSpans(src, inner)...)
					continue
				}
				text := unquote(raw)
				if !ContainsChinese(text) {
					continue
				}
				isStr := len(raw) > 0 && (raw[0] == '"' || raw[0] == '\'')
				out = append(out, span.Record{Text: text, Range: abs, IsString: isStr})
			}
		case html.TextToken:
			abs := shift(tok.Range, tplRange.Start)
			raw := src[abs.Start:abs.End]
			for _, seg := range splitMustache(raw) {
				segAbs := shift(seg.r, abs.Start)
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
		}
	}
	return out, nil
}
