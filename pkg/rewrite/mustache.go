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
	"bytes"

	"github.com/kiwigo/extract/pkg/span"
)

// enclosingMustache finds the nearest "{{ ... }}" pair that strictly
// encloses r, returning the range of its interior (the bytes between the
// two braces pairs, not including them). Used to replace a quoted-literal
// payload's whole surrounding interpolation body rather than just the
// literal itself.
func enclosingMustache(buf []byte, r span.Range) (span.Range, bool) {
	openIdx := bytes.LastIndex(buf[:r.Start], []byte("{{"))
	if openIdx < 0 {
		return span.Range{}, false
	}
	if bytes.Contains(buf[openIdx+2:r.Start], []byte("}}")) {
		return span.Range{}, false
	}

	closeRel := bytes.Index(buf[r.End:], []byte("}}"))
	if closeRel < 0 {
		return span.Range{}, false
	}
	closeIdx := r.End + closeRel
	if bytes.Contains(buf[r.End:closeIdx], []byte("{{")) {
		return span.Range{}, false
	}

	return span.Range{Start: openIdx + 2, End: closeIdx}, true
}
