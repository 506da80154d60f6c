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

package jsscan

import "github.com/kiwigo/extract/pkg/span"

// scanMarkupText finds text children of markup-expression elements (JSX/TSX
// style) embedded in a script. It is a best-effort tag matcher, not a
// grammar: markup expressions share the '<' token with the less-than and
// generic-argument operators, so a full disambiguation needs operator
// precedence the rest of this package deliberately does not model. The
// heuristic requires an opening tag to look like "<Name" or "<>" preceded
// by a byte that cannot start an identifier/number/string/closing-bracket,
// which rejects the common "a < b" and "a<B>()" false positives while
// accepting "return <div>...", "=> <Foo>...", "(<span>...", etc.
func scanMarkupText(src []byte, masked []span.Range) []MarkupText {
	n := len(src)
	var out []MarkupText
	var stack []string
	textStart := -1

	flush := func(end int) {
		if textStart >= 0 && end > textStart {
			out = append(out, MarkupText{Range: span.Range{Start: textStart, End: end}})
		}
		textStart = -1
	}

	i := 0
	for i < n {
		if end, ok := maskedEnd(masked, i); ok {
			i = end
			continue
		}
		c := src[i]
		if c != '<' {
			i++
			continue
		}

		// Closing tag: </Name>
		if i+1 < n && src[i+1] == '/' {
			if len(stack) == 0 {
				i++
				continue
			}
			flush(i)
			j := i + 2
			for j < n && isNameByte(src[j]) {
				j++
			}
			for j < n && src[j] != '>' {
				j++
			}
			if j < n {
				j++
			}
			stack = stack[:len(stack)-1]
			i = j
			if len(stack) > 0 {
				textStart = i
			}
			continue
		}

		// Fragment shorthand <>...</>
		if i+1 < n && src[i+1] == '>' {
			if !canPrecedeMarkup(src, i) && len(stack) == 0 {
				i++
				continue
			}
			flush(i)
			stack = append(stack, "")
			i += 2
			textStart = i
			continue
		}

		if i+1 >= n || !isNameStartByte(src[i+1]) {
			i++
			continue
		}
		if len(stack) == 0 && !canPrecedeMarkup(src, i) {
			i++
			continue
		}

		start := i + 1
		j := start
		for j < n && isNameByte(src[j]) {
			j++
		}
		name := string(src[start:j])

		selfClosing := false
		k := j
		for k < n {
			if end, ok := maskedEnd(masked, k); ok {
				k = end
				continue
			}
			if src[k] == '/' && k+1 < n && src[k+1] == '>' {
				selfClosing = true
				k += 2
				break
			}
			if src[k] == '>' {
				k++
				break
			}
			k++
		}

		flush(i)
		if !selfClosing {
			stack = append(stack, name)
			textStart = k
		}
		i = k
	}
	flush(n)
	return out
}

func maskedEnd(masked []span.Range, pos int) (int, bool) {
	for _, r := range masked {
		if pos >= r.Start && pos < r.End {
			return r.End, true
		}
	}
	return 0, false
}

func isNameStartByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '$'
}

func isNameByte(b byte) bool {
	return isNameStartByte(b) || (b >= '0' && b <= '9') || b == '.' || b == '-' || b == ':'
}

// canPrecedeMarkup reports whether the byte immediately before src[pos]
// (skipping whitespace) is one that can legally precede a markup-expression
// node in expression position: start of file, an opening bracket, a comma,
// an assignment/arrow, a logical operator, or a keyword like return.
func canPrecedeMarkup(src []byte, pos int) bool {
	j := pos - 1
	for j >= 0 && (src[j] == ' ' || src[j] == '\t' || src[j] == '\n' || src[j] == '\r') {
		j--
	}
	if j < 0 {
		return true
	}
	switch src[j] {
	case '(', '{', '[', ',', '=', '>', '&', '|', '!', ':', ';', '?':
		return true
	}
	// "return <div>" / "=> <div>"
	if j >= 5 && string(src[j-5:j+1]) == "return" {
		return true
	}
	return false
}
