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

package pipeline

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/kiwigo/extract/internal/htmlscan"
	"github.com/kiwigo/extract/pkg/catalog"
	"github.com/kiwigo/extract/pkg/extract"
	"github.com/kiwigo/extract/pkg/keygen"
	"github.com/kiwigo/extract/pkg/rewrite"
	"github.com/kiwigo/extract/pkg/span"
	"github.com/kiwigo/extract/pkg/translator"
	"github.com/kiwigo/extract/pkg/walker"
)

// Outcome classifies what happened to one file during a Run.
type Outcome int

// Possible FileResult outcomes.
const (
	// OutcomeClean means the file carried no Chinese literals worth
	// rewriting.
	OutcomeClean Outcome = iota
	// OutcomeRewritten means the file's bytes (and, unless DryRun, the
	// catalog) were updated.
	OutcomeRewritten
	// OutcomeFailed means the file was skipped after an error; Err
	// explains why.
	OutcomeFailed
)

// FileResult reports what one walked file did on a Run.
type FileResult struct {
	Path        string
	Outcome     Outcome
	KeysWritten int
	Err         error
}

// Orchestrator drives one configured extraction run end to end.
type Orchestrator struct {
	Config     Config
	Translator translator.KeyTranslator

	store  *catalog.Store
	writer *catalog.Writer
	synth  *keygen.Synthesizer
}

// New builds an Orchestrator, loading the existing catalog mirror from
// cfg.CatalogDir(). A Configuration error here (an unrecognized provider,
// or a missing required field) is returned before any file is touched.
func New(cfg Config, tr translator.KeyTranslator) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	store, err := catalog.Load(cfg.CatalogDir(), cfg.FileType)
	if err != nil {
		return nil, errors.Wrap(err, "pipeline: load catalog")
	}
	return &Orchestrator{
		Config:     cfg,
		Translator: tr,
		store:      store,
		writer:     catalog.NewWriter(cfg.CatalogDir(), cfg.FileType, cfg.ValidateDuplicate),
		synth:      keygen.New(store, cfg.Prefix),
	}, nil
}

// Run walks target and processes every matching file in turn. A per-file
// error (parse, translate, duplicate key, or I/O) is recorded in that
// file's FileResult and does not stop the run; only a Configuration error
// from New aborts before anything runs.
func (o *Orchestrator) Run(ctx context.Context, target string) ([]FileResult, error) {
	files, err := walker.Walk(target, walker.Options{
		IgnoreDirs:  o.Config.IgnoreDir,
		IgnoreFiles: o.Config.IgnoreFile,
		Extensions:  o.Config.Extensions(),
		CatalogDir:  o.Config.CatalogDir(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "pipeline: walk target")
	}

	results := make([]FileResult, 0, len(files))
	for _, path := range files {
		results = append(results, o.processFile(ctx, path))
	}
	return results, nil
}

func (o *Orchestrator) processFile(ctx context.Context, path string) FileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		klog.Warningf("pipeline: skipping %s: %v", path, err)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: err}
	}

	dialect := extract.Dispatch(path)
	recs, err := extract.File(path, src, extract.VueVersion(o.Config.VueVersion))
	if err != nil {
		klog.Warningf("pipeline: parse error in %s: %v", path, err)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: err}
	}
	recs = span.Normalize(recs)
	if len(recs) == 0 {
		return FileResult{Path: path, Outcome: OutcomeClean}
	}

	forward := reverseRecords(recs)
	fragments := make([]string, len(forward))
	for i, r := range forward {
		fragments[i] = translator.PrepareFragment(r.Text)
	}
	tokens, err := o.Translator.TranslateBatch(ctx, fragments)
	if err != nil {
		klog.Warningf("pipeline: translate error in %s: %v", path, err)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: err}
	}
	if len(tokens) == 0 {
		err := errors.Wrapf(ErrTranslatorEmpty, "file %s", path)
		klog.Warningf("pipeline: %v", err)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: err}
	}

	texts := make([]string, len(forward))
	for i, r := range forward {
		texts[i] = r.Text
	}
	assigns, err := o.synth.AssignFile(path, texts, tokens)
	if err != nil {
		klog.Warningf("pipeline: key synthesis error in %s: %v", path, err)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: err}
	}

	edits := make([]rewrite.Edit, len(recs))
	for i, a := range assigns {
		recIdx := len(recs) - 1 - i
		edits[recIdx] = rewrite.Edit{Record: recs[recIdx], Key: a.Key, NeedWrite: a.NeedWrite}
	}

	isMarkup := dialect == extract.DialectHTML || dialect == extract.DialectComponent
	result, err := rewrite.Apply(src, edits, rewrite.Options{
		LookupSymbol: o.Config.LookupSymbol,
		IsMarkupFile: isMarkup,
	})
	if err != nil {
		klog.Warningf("pipeline: rewrite error in %s: %v", path, err)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: err}
	}

	finalSrc := o.injectImportIfNeeded(dialect, result.Src)

	keysWritten := 0
	batch := o.writer.NewBatch(o.store)
	for _, e := range edits {
		if !e.NeedWrite {
			continue
		}
		batch.Stage(e.Key, result.CatalogValues[e.Key])
		keysWritten++
	}

	if o.Config.DryRun {
		return FileResult{Path: path, Outcome: OutcomeRewritten, KeysWritten: keysWritten}
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, finalSrc, mode); err != nil {
		klog.Warningf("pipeline: write error in %s: %v", path, err)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: err}
	}
	if err := batch.Commit(); err != nil {
		klog.Warningf("pipeline: catalog commit error for %s: %v", path, err)
		return FileResult{Path: path, Outcome: OutcomeFailed, Err: err}
	}

	return FileResult{Path: path, Outcome: OutcomeRewritten, KeysWritten: keysWritten}
}

// injectImportIfNeeded adds the lookup symbol's import to src if the file
// carries a script section that doesn't already bind it. Plain HTML files
// have no import mechanism and are left untouched.
func (o *Orchestrator) injectImportIfNeeded(dialect extract.Dialect, src []byte) []byte {
	switch dialect {
	case extract.DialectHTML:
		return src
	case extract.DialectComponent:
		sections := htmlscan.FindScripts(src)
		if len(sections) == 0 {
			klog.V(2).Infof("pipeline: component file has no script section, skipping import injection")
			return src
		}
		sec := sections[0]
		body := src[sec.Range.Start:sec.Range.End]
		if rewrite.HasImport(body, o.Config.LookupSymbol) {
			return src
		}
		at := sec.Range.Start + rewrite.ScriptInsertionPoint(body)
		return rewrite.InjectImport(src, at, o.Config.LookupSymbol, o.Config.ImportI18N)
	default:
		if rewrite.HasImport(src, o.Config.LookupSymbol) {
			return src
		}
		at := rewrite.ScriptInsertionPoint(src)
		return rewrite.InjectImport(src, at, o.Config.LookupSymbol, o.Config.ImportI18N)
	}
}

// reverseRecords returns recs in ascending Range.Start order (span.Normalize
// leaves them descending, for safe back-to-front editing; translation and
// key synthesis instead want document order, so that occurTime suffixes
// and camelCase suggestions read the same regardless of edit direction).
func reverseRecords(recs []span.Record) []span.Record {
	out := make([]span.Record, len(recs))
	for i, r := range recs {
		out[len(recs)-1-i] = r
	}
	return out
}
