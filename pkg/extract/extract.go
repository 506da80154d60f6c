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

// Package extract holds one adapter per supported source dialect. Each
// adapter parses/walks its own dialect and reports span.Record values; none
// of them share an AST. Each dialect gets its own narrow walker instead of
// one general-purpose parser underneath all of them.
package extract

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/kiwigo/extract/pkg/span"
)

// Dialect identifies which extractor a file's contents should be routed to.
type Dialect int

// Supported dialects.
const (
	DialectTypedScript Dialect = iota
	DialectScript
	DialectHTML
	DialectComponent
)

// Dispatch routes a path to its dialect by file extension.
func Dispatch(path string) Dialect {
	switch {
	case strings.HasSuffix(path, ".html"):
		return DialectHTML
	case strings.HasSuffix(path, ".vue"):
		return DialectComponent
	case strings.HasSuffix(path, ".js"), strings.HasSuffix(path, ".jsx"):
		return DialectScript
	default:
		return DialectTypedScript
	}
}

// ErrUnsupportedDialect is returned when a component-file variant cannot
// make sense of its input and no fallback applies.
var ErrUnsupportedDialect = errors.New("extract: unsupported dialect")

// VueVersion selects which component-file extractor variant runs.
type VueVersion string

// Supported component-framework versions.
const (
	Vue2 VueVersion = "vue2"
	Vue3 VueVersion = "vue3"
)

// File extracts every Chinese-bearing span from src, routing by path's
// extension to the matching dialect adapter.
func File(path string, src []byte, vueVersion VueVersion) ([]span.Record, error) {
	switch Dispatch(path) {
	case DialectHTML:
		return HTML(src)
	case DialectComponent:
		return Component(src, vueVersion)
	case DialectScript:
		return Script(src, 0)
	default:
		return TypedScript(src, 0)
	}
}

// ContainsChinese reports whether s contains at least one code point in
// U+4E00..U+9FFF.
func ContainsChinese(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}
