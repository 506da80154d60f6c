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

package htmlscan

import (
	"regexp"
	"strings"

	"github.com/kiwigo/extract/pkg/span"
)

// Section is one top-level block of a single-file component: the byte range
// covers the block's content only (between the opening tag's '>' and the
// matching closing tag's '<').
type Section struct {
	Range    span.Range
	RawAttrs string
	Setup    bool
}

var (
	openTemplateRe  = regexp.MustCompile(`(?is)<template(\s[^>]*)?>`)
	closeTemplateRe = regexp.MustCompile(`(?is)</template\s*>`)
	openScriptRe    = regexp.MustCompile(`(?is)<script(\s[^>]*)?>`)
	closeScriptRe   = regexp.MustCompile(`(?is)</script\s*>`)
)

// FindTemplate locates the single top-level <template> block, tolerating
// nested <template v-for="..."> children by depth-counting same-named tag
// pairs rather than trusting the first "</template>" seen.
func FindTemplate(src []byte) (Section, bool) {
	loc := openTemplateRe.FindIndex(src)
	if loc == nil {
		return Section{}, false
	}
	contentStart := loc[1]
	depth := 1
	pos := contentStart
	for depth > 0 {
		rest := src[pos:]
		oloc := openTemplateRe.FindIndex(rest)
		cloc := closeTemplateRe.FindIndex(rest)
		if cloc == nil {
			return Section{}, false
		}
		if oloc != nil && oloc[0] < cloc[0] {
			depth++
			pos += oloc[1]
			continue
		}
		depth--
		if depth == 0 {
			return Section{Range: span.Range{Start: contentStart, End: pos + cloc[0]}}, true
		}
		pos += cloc[1]
	}
	return Section{}, false
}

// FindScripts locates every top-level <script> block (plain and/or
// setup). Vue single-file components permit at most one of each.
func FindScripts(src []byte) []Section {
	opens := openScriptRe.FindAllSubmatchIndex(src, -1)
	out := make([]Section, 0, len(opens))
	for _, o := range opens {
		tagEnd := o[1]
		attrsRaw := ""
		if o[2] >= 0 {
			attrsRaw = string(src[o[2]:o[3]])
		}
		cloc := closeScriptRe.FindIndex(src[tagEnd:])
		if cloc == nil {
			continue
		}
		out = append(out, Section{
			Range:    span.Range{Start: tagEnd, End: tagEnd + cloc[0]},
			RawAttrs: attrsRaw,
			Setup:    strings.Contains(attrsRaw, "setup"),
		})
	}
	return out
}
