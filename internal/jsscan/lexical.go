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

// scanLexical walks src once, identifying string literals, template
// literals (with their "${...}" interpolation interiors), and comments. It
// does not attempt to understand anything else about the grammar: regular
// expression literals are not distinguished from division operators, which
// is harmless here since neither produces a Chinese-bearing string/template
// span.
func scanLexical(src []byte) (strs []StringLit, tmpls []TemplateLit, comments []span.Range) {
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch {
		case c == '/' && i+1 < n && src[i+1] == '/':
			start := i
			i += 2
			for i < n && src[i] != '\n' {
				i++
			}
			comments = append(comments, span.Range{Start: start, End: i})

		case c == '/' && i+1 < n && src[i+1] == '*':
			start := i
			i += 2
			for i+1 < n && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			if i+1 < n {
				i += 2
			} else {
				i = n
			}
			comments = append(comments, span.Range{Start: start, End: i})

		case c == '"' || c == '\'':
			start := i
			i = skipQuoted(src, i, c)
			strs = append(strs, StringLit{Range: span.Range{Start: start, End: i}})

		case c == '`':
			start := i
			i++
			var interps []span.Range
			for i < n && src[i] != '`' {
				if src[i] == '\\' && i+1 < n {
					i += 2
					continue
				}
				if src[i] == '$' && i+1 < n && src[i+1] == '{' {
					exprStart := i + 2
					exprEnd := skipBraceExpr(src, i+2)
					interps = append(interps, span.Range{Start: exprStart, End: exprEnd})
					i = exprEnd + 1
					continue
				}
				i++
			}
			if i < n {
				i++ // consume closing backtick
			}
			tmpls = append(tmpls, TemplateLit{Range: span.Range{Start: start, End: i}, Interps: interps})

		default:
			i++
		}
	}
	return strs, tmpls, comments
}

// skipQuoted returns the index just past the closing quote matching the
// opening quote at src[start].
func skipQuoted(src []byte, start int, quote byte) int {
	n := len(src)
	i := start + 1
	for i < n && src[i] != quote {
		if src[i] == '\\' && i+1 < n {
			i += 2
			continue
		}
		i++
	}
	if i < n {
		i++
	}
	return i
}

// skipBraceExpr returns the index of the '}' that closes the brace opened
// just before start (start points at the first byte of the expression
// interior), tolerating nested braces, strings, and template literals
// inside the expression.
func skipBraceExpr(src []byte, start int) int {
	n := len(src)
	depth := 1
	i := start
	for i < n && depth > 0 {
		switch src[i] {
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
		case '"', '\'':
			i = skipQuoted(src, i, src[i])
		case '`':
			i = skipTemplateRaw(src, i)
		default:
			i++
		}
	}
	if depth == 0 {
		return i - 1
	}
	return i
}

// skipTemplateRaw returns the index just past a nested template literal's
// closing backtick, without recording its interpolations (nested templates
// inside an outer interpolation are rare in i18n-bearing code and are still
// covered when that inner literal is visited directly elsewhere in the tree
// by a recursive extractor pass, if any).
func skipTemplateRaw(src []byte, start int) int {
	n := len(src)
	i := start + 1
	for i < n && src[i] != '`' {
		if src[i] == '\\' && i+1 < n {
			i += 2
			continue
		}
		if src[i] == '$' && i+1 < n && src[i+1] == '{' {
			i = skipBraceExpr(src, i+2) + 1
			continue
		}
		i++
	}
	if i < n {
		i++
	}
	return i
}
