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

// Package span defines the currency of the extract-and-rewrite pipeline: a
// byte-accurate record of one Chinese literal found in a source file, and
// the normalization pass that de-duplicates nested spans and orders them
// for safe back-to-front editing.
package span

import "sort"

// Range is a half-open byte interval [Start, End) into a source file.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Encloses reports whether r strictly contains other: both endpoints bracket
// other, with at least one strict.
func (r Range) Encloses(other Range) bool {
	if r == other {
		return false
	}
	return r.Start <= other.Start && other.End <= r.End
}

// Record is one occurrence of a Chinese literal in a source file.
type Record struct {
	// Text is the literal as it should appear in the catalog: outer
	// quotes/backticks stripped, whitespace trimmed for markup text nodes.
	Text string
	// Range is the byte span in the original, unmodified source.
	Range Range
	// IsString is true when the literal was already a quoted/backtick
	// string expression in its host language; false for naked markup text,
	// interpolation prose, or bare attribute values.
	IsString bool

	// Key and NeedWrite are not filled in by pkg/keygen or pkg/pipeline:
	// the key synthesizer returns keygen.Assignment values, and the
	// pipeline carries them to the rewriter in rewrite.Edit. Both fields
	// stay at their zero values unless a caller sets them itself.
	Key string
	// NeedWrite: see Key.
	NeedWrite bool
}

// WorkItem is one file's contribution to a pipeline run: its path and the
// spans found within it.
type WorkItem struct {
	Path  string
	Spans []Record
}

// Normalize keeps only the maximal spans in recs (drops any span strictly
// enclosed by another) and returns the survivors sorted by descending
// Range.Start, so that applying edits in list order never invalidates the
// offsets of spans still to come.
func Normalize(recs []Record) []Record {
	kept := make([]Record, 0, len(recs))
	for i, r := range recs {
		enclosed := false
		for j, other := range recs {
			if i == j {
				continue
			}
			if other.Range.Encloses(r.Range) {
				enclosed = true
				break
			}
		}
		if !enclosed {
			kept = append(kept, r)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Range.Start > kept[j].Range.Start
	})
	return kept
}
