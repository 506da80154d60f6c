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

// Package rewrite applies a keyed span list to a file's bytes, choosing the
// wrapping form from syntactic context, and injects the lookup symbol's
// import when it is missing.
package rewrite

import (
	"fmt"
	"strings"

	"github.com/kiwigo/extract/internal/jsscan"
	"github.com/kiwigo/extract/pkg/span"
)

// Edit is one span.Record bound to its synthesized key.
type Edit struct {
	Record    span.Record
	Key       string
	NeedWrite bool
}

// Options configures wrap selection.
type Options struct {
	// LookupSymbol is the configured lookup identifier (e.g. "I18N").
	LookupSymbol string
	// IsMarkupFile is true for .html/.vue files, where non-expression
	// contexts wrap with "{{ }}" instead of "{ }".
	IsMarkupFile bool
}

// Result is the rewritten source plus, per synthesized key, the value that
// must end up in the catalog (equal to the span's original text, except for
// template-literal spans with interpolations, where it is the interior text
// with each "${expr}" replaced by "{valN}").
type Result struct {
	Src           []byte
	CatalogValues map[string]string
}

// Apply rewrites src in place of every edit. edits MUST already be in
// descending range.Start order (span.Normalize's output order): each
// replacement is applied before any edit to its left is examined, so every
// edit still being processed sees unmodified original bytes at its own
// range and everything before it (K3).
func Apply(src []byte, edits []Edit, opts Options) (Result, error) {
	buf := append([]byte(nil), src...)
	values := make(map[string]string, len(edits))

	for _, e := range edits {
		target, repl, catalogValue, err := buildReplacement(buf, e, opts)
		if err != nil {
			return Result{}, err
		}
		values[e.Key] = catalogValue
		buf = splice(buf, target, []byte(repl))
	}
	return Result{Src: buf, CatalogValues: values}, nil
}

func splice(buf []byte, r span.Range, repl []byte) []byte {
	out := make([]byte, 0, len(buf)-r.Len()+len(repl))
	out = append(out, buf[:r.Start]...)
	out = append(out, repl...)
	out = append(out, buf[r.End:]...)
	return out
}

func buildReplacement(buf []byte, e Edit, opts Options) (target span.Range, repl string, catalogValue string, err error) {
	rec := e.Record
	ref := opts.LookupSymbol + "." + e.Key

	if !rec.IsString {
		return rec.Range, markupWrap(ref, opts.IsMarkupFile), rec.Text, nil
	}

	if isAttributeAssignment(buf, rec.Range) {
		return rec.Range, markupWrap(ref, opts.IsMarkupFile), rec.Text, nil
	}

	if isTemplateLiteral(buf, rec.Range) {
		return buildTemplateReplacement(buf, e, opts)
	}

	if enclosing, ok := enclosingMustache(buf, rec.Range); ok {
		return enclosing, ref, rec.Text, nil
	}

	return rec.Range, ref, rec.Text, nil
}

func markupWrap(ref string, isMarkupFile bool) string {
	if isMarkupFile {
		return "{{" + ref + "}}"
	}
	return "{" + ref + "}"
}

func isAttributeAssignment(buf []byte, r span.Range) bool {
	return r.Start > 0 && buf[r.Start-1] == '='
}

func isTemplateLiteral(buf []byte, r span.Range) bool {
	return r.Start < len(buf) && buf[r.Start] == '`'
}

// buildTemplateReplacement handles a template-literal span: with
// interpolations, it builds "<LOOKUP>.template(ref, { val1: expr1, ... })"
// and a catalog value with each "${expr}" swapped for "{valN}"; without
// interpolations, ref is used directly.
func buildTemplateReplacement(buf []byte, e Edit, opts Options) (span.Range, string, string, error) {
	rec := e.Record
	ref := opts.LookupSymbol + "." + e.Key
	literal := buf[rec.Range.Start:rec.Range.End]

	scan := jsscan.Scan(literal)
	if len(scan.Templates) != 1 ||
		scan.Templates[0].Range.Start != 0 ||
		scan.Templates[0].Range.End != len(literal) ||
		len(scan.Templates[0].Interps) == 0 {
		return rec.Range, ref, rec.Text, nil
	}

	interps := scan.Templates[0].Interps
	lb := append([]byte(nil), literal...)
	params := make([]string, len(interps))

	for i := len(interps) - 1; i >= 0; i-- {
		ip := interps[i]
		valName := fmt.Sprintf("val%d", i+1)
		expr := string(literal[ip.Start:ip.End])
		params[i] = fmt.Sprintf("%s: %s", valName, expr)

		delimStart, delimEnd := ip.Start-2, ip.End+1
		placeholder := "{" + valName + "}"
		lb = append(lb[:delimStart], append([]byte(placeholder), lb[delimEnd:]...)...)
	}

	catalogValue := string(lb[1 : len(lb)-1])
	replacement := fmt.Sprintf("%s.template(%s, { %s })", opts.LookupSymbol, ref, strings.Join(params, ", "))
	return rec.Range, replacement, catalogValue, nil
}
