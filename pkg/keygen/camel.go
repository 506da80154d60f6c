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

package keygen

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

var wordSepRe = regexp.MustCompile(`[\s_\-]+`)

// toCamelCase normalizes a translator's output token (space, hyphen, or
// underscore separated words, or already-camelCased) into lowerCamelCase,
// the way go_gen.go's SplitComponents feeds camelcase.Split before
// rejoining words for generated identifiers.
func toCamelCase(token string) string {
	var parts []string
	if wordSepRe.MatchString(token) {
		parts = wordSepRe.Split(token, -1)
	} else {
		parts = camelcase.Split(token)
	}

	var b strings.Builder
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		lower := strings.ToLower(p)
		if first {
			b.WriteString(lower)
			first = false
			continue
		}
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
