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

// Package pipeline wires the span, extract, keygen, rewrite, catalog and
// translator packages into one per-file orchestration: find literals,
// translate, synthesize keys, rewrite the source, persist the catalog.
package pipeline

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrUnknownProvider is returned by Config.Validate when
// DefaultTranslateKeyAPI names a provider the Orchestrator does not know
// how to build.
var ErrUnknownProvider = errors.New("pipeline: unknown translate-key-api provider")

// ErrTranslatorEmpty is returned when a KeyTranslator produces zero
// results for a non-empty batch: a per-file Translator error, not a
// Configuration error, so the Orchestrator skips the file and continues.
var ErrTranslatorEmpty = errors.New("pipeline: translator returned no results")

// Recognized values for Config.DefaultTranslateKeyAPI.
const (
	ProviderPinyin = "Pinyin"
	ProviderGoogle = "Google"
	ProviderBaidu  = "Baidu"
)

// Config is the Orchestrator's typed view of a project's configuration,
// assembled by a caller (the CLI, or any embedder) from whatever source it
// likes. internal/config loads it from a project file, but pipeline never
// imports that package, so a caller can also build one by hand.
type Config struct {
	// KiwiDir is the resource-directory root; namespace files live at
	// KiwiDir/SrcLang/<namespace><FileType>.
	KiwiDir string
	// SrcLang names the source-language subdirectory under KiwiDir (e.g.
	// "zh-CN").
	SrcLang string
	// FileType is the generated namespace/aggregator file extension,
	// ".ts" or ".js".
	FileType string
	// IgnoreDir/IgnoreFile are filepath.Match patterns passed to
	// pkg/walker.
	IgnoreDir  []string
	IgnoreFile []string
	// DefaultTranslateKeyAPI selects the key-synthesis translator:
	// "Pinyin", "Google", or "Baidu".
	DefaultTranslateKeyAPI string
	// LookupSymbol is the identifier the rewriter references and the
	// import injector binds, e.g. "I18N".
	LookupSymbol string
	// ImportI18N is the module specifier InjectImport writes into the
	// generated import statement, e.g. "@/i18n".
	ImportI18N string
	// VueVersion selects the component-file extractor variant: "vue2" or
	// "vue3".
	VueVersion string
	// Prefix overrides the path-derived namespace for every key
	// synthesized in this run; empty means derive it per file.
	Prefix string

	// IncludeHTML adds ".html" to the walked extension set; bare HTML
	// files carry no import mechanism, so the Orchestrator never injects
	// an import for them.
	IncludeHTML bool
	// ValidateDuplicate rejects a catalog write that would silently
	// rebind an existing key to a different value.
	ValidateDuplicate bool
	// DryRun runs extraction, translation, key synthesis and rewriting in
	// memory and reports what would change, without writing source files
	// or catalog entries to disk.
	DryRun bool
}

// Validate checks the fields the Orchestrator cannot proceed without.
func (c Config) Validate() error {
	switch c.DefaultTranslateKeyAPI {
	case ProviderPinyin, ProviderGoogle, ProviderBaidu:
	default:
		return errors.Wrapf(ErrUnknownProvider, "%q", c.DefaultTranslateKeyAPI)
	}
	if c.KiwiDir == "" {
		return errors.New("pipeline: kiwiDir is required")
	}
	if c.SrcLang == "" {
		return errors.New("pipeline: srcLang is required")
	}
	if c.FileType == "" {
		return errors.New("pipeline: fileType is required")
	}
	return nil
}

// CatalogDir is the resource directory this config's Store/Writer load
// from and persist to.
func (c Config) CatalogDir() string {
	return filepath.Join(c.KiwiDir, c.SrcLang)
}

// Extensions returns the walked extension allow-list for this config.
func (c Config) Extensions() []string {
	exts := []string{".ts", ".tsx", ".js", ".jsx", ".vue"}
	if c.IncludeHTML {
		exts = append(exts, ".html")
	}
	return exts
}
