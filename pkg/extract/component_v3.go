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
	"github.com/kiwigo/extract/internal/jsscan"
	"github.com/kiwigo/extract/pkg/span"
)

// componentV3 is the version-3 component-file walker. No version-3
// single-file-component compiler exists anywhere in the available
// ecosystem reference set, so this walks the same tokenized structure as
// componentV2 but applies version-3 node-kind rules: interpolation and
// attribute payloads are always isString=true (the compiler always treats
// them as expressions, never raw text), and a compound expression is
// reported once for its whole span rather than per literal substring.
func componentV3(src []byte) ([]span.Record, error) {
	tpl, hasTpl := htmlscan.FindTemplate(src)
	if !hasTpl {
		return nil, errors.New("extract: component v3: no <template> block")
	}

	var out []span.Record
	recs, err := templateSpansV3(src, tpl.Range)
	if err != nil {
		return nil, errors.Wrap(err, "extract: component v3 template")
	}
	out = append(out, recs...)

	for _, sc := range htmlscan.FindScripts(src) {
		srecs, err := TypedScript(src[sc.Range.Start:sc.Range.End], sc.Range.Start)
		if err != nil {
			return nil, errors.Wrap(err, "extract: component v3 script")
		}
		out = append(out, srecs...)
	}

	return out, nil
}

func templateSpansV3(src []byte, tplRange span.Range) ([]span.Record, error) {
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
				text := unquote(src[abs.Start:abs.End])
				if !ContainsChinese(text) {
					continue
				}
				out = append(out, span.Record{Text: text, Range: abs, IsString: true})
			}
		case html.TextToken:
			abs := shift(tok.Range, tplRange.Start)
			raw := src[abs.Start:abs.End]
			for _, seg := range splitMustache(raw) {
				segAbs := shift(seg.r, abs.Start)
				if seg.isExpr {
					if rec, ok := interpolationSpanV3(src, segAbs); ok {
						out = append(out, rec)
					}
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

// interpolationSpanV3 evaluates one "{{ expr }}" payload. A simple literal
// payload ("{{ '你好' }}" or a template literal) is reported at its own
// range; anything more complex is treated as a compound expression and
// reported once, concatenated, over the whole payload.
func interpolationSpanV3(src []byte, payload span.Range) (span.Record, bool) {
	trimmed := trimRange(src, payload)
	if trimmed.Len() == 0 {
		return span.Record{}, false
	}
	inner := src[trimmed.Start:trimmed.End]
	scan := jsscan.Scan(inner)

	if len(scan.Strings) == 1 && scan.Strings[0].Range.Start == 0 && scan.Strings[0].Range.End == len(inner) {
		text := string(inner[1 : len(inner)-1])
		if !ContainsChinese(text) {
			return span.Record{}, false
		}
		return span.Record{Text: text, Range: trimmed, IsString: true}, true
	}
	if len(scan.Templates) == 1 && scan.Templates[0].Range.Start == 0 && scan.Templates[0].Range.End == len(inner) {
		text := string(inner[1 : len(inner)-1])
		if !ContainsChinese(text) {
			return span.Record{}, false
		}
		return span.Record{Text: text, Range: trimmed, IsString: true}, true
	}
	if !ContainsChinese(string(inner)) {
		return span.Record{}, false
	}
	return span.Record{Text: strings.TrimSpace(string(inner)), Range: trimmed, IsString: true}, true
}

func trimRange(src []byte, r span.Range) span.Range {
	start, end := r.Start, r.End
	for start < end && isASCIISpace(src[start]) {
		start++
	}
	for end > start && isASCIISpace(src[end-1]) {
		end--
	}
	return span.Range{Start: start, End: end}
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
