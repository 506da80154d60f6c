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

package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kiwigo/extract/internal/jsscan"
)

var (
	importStmtRe    = regexp.MustCompile(`\bimport\b[\s\S]*?\bfrom\b`)
	defaultBindRe   = regexp.MustCompile(`^import\s+([A-Za-z_$][\w$]*)\s*(?:,|\s+from)`)
	namespaceBindRe = regexp.MustCompile(`\*\s+as\s+([A-Za-z_$][\w$]*)`)
	namedBindRe     = regexp.MustCompile(`\{([^}]*)\}`)
)

// HasImport reports whether script's import declarations already bind
// symbol, via a default import, a named specifier, or a namespace import.
// Candidate "import" keyword occurrences are found after masking out every
// string, template literal, and comment with internal/jsscan, so the
// search itself is parser-informed rather than a blind text scan; only the
// shallow statement-boundary and binding-name extraction is regex-based,
// since jsscan reports literal and comment spans, not import clause
// structure.
func HasImport(script []byte, symbol string) bool {
	masked := maskNonCode(script)
	for _, loc := range importStmtRe.FindAllString(string(masked), -1) {
		if importBindsSymbol(loc, symbol) {
			return true
		}
	}
	return false
}

func maskNonCode(src []byte) []byte {
	res := jsscan.Scan(src)
	out := make([]byte, len(src))
	copy(out, src)
	blank := func(start, end int) {
		for i := start; i < end && i < len(out); i++ {
			if out[i] != '\n' {
				out[i] = ' '
			}
		}
	}
	for _, s := range res.Strings {
		blank(s.Range.Start, s.Range.End)
	}
	for _, t := range res.Templates {
		blank(t.Range.Start, t.Range.End)
	}
	for _, c := range res.Comments {
		blank(c.Start, c.End)
	}
	return out
}

func importBindsSymbol(stmt, symbol string) bool {
	if m := defaultBindRe.FindStringSubmatch(stmt); m != nil && m[1] == symbol {
		return true
	}
	if m := namespaceBindRe.FindStringSubmatch(stmt); m != nil && m[1] == symbol {
		return true
	}
	if m := namedBindRe.FindStringSubmatch(stmt); m != nil {
		for _, part := range strings.Split(m[1], ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			name := part
			if idx := strings.Index(part, " as "); idx >= 0 {
				name = strings.TrimSpace(part[idx+4:])
			}
			if name == symbol {
				return true
			}
		}
	}
	return false
}

// ScriptInsertionPoint locates where a fresh import should be inserted in a
// standalone script file: immediately before the first top-level statement,
// skipping any leading comments.
func ScriptInsertionPoint(src []byte) int {
	masked := jsscan.StripComments(src)
	i := 0
	for i < len(masked) && isSpaceByte(masked[i]) {
		i++
	}
	return i
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// InjectImport inserts "import <symbol> from '<path>';\n" at byte offset
// at.
func InjectImport(src []byte, at int, symbol, path string) []byte {
	line := fmt.Sprintf("import %s from '%s';\n", symbol, path)
	out := make([]byte, 0, len(src)+len(line))
	out = append(out, src[:at]...)
	out = append(out, line...)
	out = append(out, src[at:]...)
	return out
}
