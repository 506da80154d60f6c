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

package catalog

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/pkg/errors"

	"github.com/kiwigo/extract/pkg/span"
)

var aggregatorImportRe = regexp.MustCompile(`import\s+(\w+)\s+from\s+['"]\./`)

// AggregatorNamespaces returns the namespace import names already present
// in an aggregator file body, in source order.
func AggregatorNamespaces(src []byte) []string {
	matches := aggregatorImportRe.FindAllSubmatch(src, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, string(m[1]))
	}
	return out
}

// NewAggregator renders a fresh aggregator file body exporting a single
// namespace member.
func NewAggregator(namespace string) []byte {
	return []byte(fmt.Sprintf(
		"import %s from './%s'\n\nexport default {\n  %s,\n}\n",
		namespace, namespace, namespace,
	))
}

// PatchAggregator adds one namespace import and one corresponding default
// export member to an existing aggregator file body. It tolerates both the
// bare-object default export form ("export default { a, b }") and the
// Object.assign form ("export default Object.assign({}, { a, b })").
func PatchAggregator(existing []byte, namespace string) ([]byte, error) {
	if bytes.Contains(existing, []byte(fmt.Sprintf("from './%s'", namespace))) {
		return existing, nil
	}

	importLine := []byte(fmt.Sprintf("import %s from './%s'\n", namespace, namespace))
	withImport := insertImportLine(existing, importLine)

	body, err := locateExportBody(withImport)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: patch aggregator")
	}
	member := []byte(fmt.Sprintf("  %s,\n", namespace))
	insertAt := body.End - 1
	out := make([]byte, 0, len(withImport)+len(member))
	out = append(out, withImport[:insertAt]...)
	out = append(out, member...)
	out = append(out, withImport[insertAt:]...)
	return out, nil
}

func insertImportLine(src []byte, importLine []byte) []byte {
	idx := bytes.Index(src, []byte("import "))
	if idx < 0 {
		out := make([]byte, 0, len(src)+len(importLine))
		out = append(out, importLine...)
		out = append(out, src...)
		return out
	}
	lineEnd := bytes.IndexByte(src[idx:], '\n')
	insertAt := len(src)
	if lineEnd >= 0 {
		insertAt = idx + lineEnd + 1
	}
	out := make([]byte, 0, len(src)+len(importLine))
	out = append(out, src[:insertAt]...)
	out = append(out, importLine...)
	out = append(out, src[insertAt:]...)
	return out
}

// locateExportBody finds the member-list object literal of a default
// export: the bare object itself, or the second argument of an
// Object.assign(...) call.
func locateExportBody(src []byte) (span.Range, error) {
	idx := bytes.Index(src, []byte("export default"))
	if idx < 0 {
		return span.Range{}, errors.New("no \"export default\" found")
	}
	j := idx + len("export default")
	for j < len(src) && isASCIISpaceByte(src[j]) {
		j++
	}
	if bytes.HasPrefix(src[j:], []byte("Object.assign(")) {
		k := j + len("Object.assign(")
		for k < len(src) && isASCIISpaceByte(src[k]) {
			k++
		}
		if k < len(src) && src[k] == '{' {
			k = matchBrace(src, k)
		}
		for k < len(src) && (isASCIISpaceByte(src[k]) || src[k] == ',') {
			k++
		}
		if k < len(src) && src[k] == '{' {
			end := matchBrace(src, k)
			return span.Range{Start: k, End: end}, nil
		}
		return span.Range{}, errors.New("malformed Object.assign default export")
	}
	for j < len(src) && src[j] != '{' {
		j++
	}
	if j >= len(src) {
		return span.Range{}, errors.New("no object literal in default export")
	}
	end := matchBrace(src, j)
	return span.Range{Start: j, End: end}, nil
}

// matchBrace returns the index just past the '}' matching the '{' at
// src[open], skipping over quoted strings.
func matchBrace(src []byte, open int) int {
	depth := 0
	i := open
	n := len(src)
	for i < n {
		switch src[i] {
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
			if depth == 0 {
				return i
			}
		case '"', '\'':
			i = skipQuotedLocal(src, i, src[i])
		default:
			i++
		}
	}
	return n
}

func isASCIISpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
