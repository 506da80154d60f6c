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

// Package jsscan is a narrow, single-purpose lexical scanner over the
// ECMAScript-superset dialects (plain script, typed script, and their
// markup-expression extensions). It does not build a full AST: the pipeline
// only ever needs byte-accurate spans of string literals, template
// literals, comments, and markup-expression text children, so this package
// reports exactly those, in the style pkg/definition/ast's narrow adapters
// report CUE field paths without modeling all of CUE.
package jsscan

import "github.com/kiwigo/extract/pkg/span"

// StringLit is a quoted string literal, range inclusive of both quotes.
type StringLit struct {
	Range span.Range
}

// TemplateLit is a backtick template literal, range inclusive of both
// backticks. Interps holds the byte range of each "${...}" substitution's
// interior expression (excluding the "${" and "}" delimiters), in source
// order.
type TemplateLit struct {
	Range   span.Range
	Interps []span.Range
}

// MarkupText is a text child of a markup-expression element, e.g. the "Hi"
// in "<span>Hi</span>". Range is tight around the raw text, not trimmed.
type MarkupText struct {
	Range span.Range
}

// Result is everything one Scan call found.
type Result struct {
	Strings    []StringLit
	Templates  []TemplateLit
	Comments   []span.Range
	MarkupText []MarkupText
}

// Scan tokenizes src and returns every string literal, template literal,
// comment, and markup-expression text child it finds. Offsets are relative
// to src; callers embedding a section of a larger file (a component file's
// <script> block, for instance) add their own base offset afterward.
func Scan(src []byte) Result {
	strs, tmpls, comments := scanLexical(src)
	masked := make([]span.Range, 0, len(strs)+len(tmpls)+len(comments))
	for _, s := range strs {
		masked = append(masked, s.Range)
	}
	for _, t := range tmpls {
		masked = append(masked, t.Range)
	}
	masked = append(masked, comments...)

	texts := scanMarkupText(src, masked)
	return Result{Strings: strs, Templates: tmpls, Comments: comments, MarkupText: texts}
}

// StripComments returns a copy of src with every line/block comment's bytes
// replaced by spaces (newlines preserved inside block comments), so a
// caller can test the result for Chinese without being fooled by Chinese
// that appears only inside a comment.
func StripComments(src []byte) []byte {
	_, _, comments := scanLexical(src)
	out := make([]byte, len(src))
	copy(out, src)
	for _, c := range comments {
		for i := c.Start; i < c.End; i++ {
			if out[i] != '\n' {
				out[i] = ' '
			}
		}
	}
	return out
}
