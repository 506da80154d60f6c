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

// Package htmlscan walks markup with golang.org/x/net/html's low-level
// Tokenizer rather than its DOM builder: Tokenizer.Raw preserves exactly the
// bytes consumed by each token, which lets this package report byte-accurate
// spans for every tag, attribute, and text run it sees. html.Parse builds a
// friendlier *html.Node tree but discards source offsets entirely, which the
// pipeline cannot afford to lose. Every downstream span here still walks
// the document in the same order a DOM tree would.
package htmlscan

import (
	"bytes"
	"io"
	"regexp"

	"golang.org/x/net/html"

	"github.com/kiwigo/extract/pkg/span"
)

// Attr is one attribute found on a start/self-closing tag. ValueRange
// includes the surrounding quotes when the attribute value is quoted.
type Attr struct {
	Name       string
	ValueRange span.Range
}

// Token is one markup token with its byte range in the original source.
type Token struct {
	Type  html.TokenType
	Range span.Range
	// TagName is set for tag tokens.
	TagName string
	// Attrs is set for start/self-closing tag tokens with attributes.
	Attrs []Attr
}

var attrValueRe = regexp.MustCompile(`(?s)([A-Za-z_:][-A-Za-z0-9_:.]*)\s*=\s*("[^"]*"|'[^']*'|[^\s"'=<>`+"`"+`]+)`)

// Tokens tokenizes src and returns every token with byte-accurate ranges.
func Tokens(src []byte) ([]Token, error) {
	z := html.NewTokenizer(bytes.NewReader(src))
	offset := 0
	var out []Token
	for {
		tt := z.Next()
		raw := z.Raw()
		start := offset
		end := offset + len(raw)
		offset = end

		if tt == html.ErrorToken {
			if err := z.Err(); err != nil && err != io.EOF {
				return out, err
			}
			break
		}

		tok := Token{Type: tt, Range: span.Range{Start: start, End: end}}
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, hasAttr := z.TagName()
			tok.TagName = string(name)
			if hasAttr {
				tok.Attrs = parseAttrSpans(raw, start)
			}
		}
		out = append(out, tok)
	}
	return out, nil
}

// parseAttrSpans locates each "name=value" attribute inside the raw bytes of
// a single tag token and reports its value's absolute byte range. The
// Tokenizer's own TagAttr accessor returns decoded values with no position
// information, so attribute spans are recovered textually from the tag's raw
// bytes instead.
func parseAttrSpans(raw []byte, base int) []Attr {
	matches := attrValueRe.FindAllSubmatchIndex(raw, -1)
	if matches == nil {
		return nil
	}
	attrs := make([]Attr, 0, len(matches))
	for _, m := range matches {
		name := string(raw[m[2]:m[3]])
		attrs = append(attrs, Attr{
			Name:       name,
			ValueRange: span.Range{Start: base + m[4], End: base + m[5]},
		})
	}
	return attrs
}
