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

package extract

import "github.com/kiwigo/extract/pkg/span"

// Component extracts Chinese-bearing spans from a single-file component
// (template + script [+ script setup] sections). Two sub-strategies coexist
// by configured component-framework version; the version-3 walker falls
// back to the version-2 walker on parse failure.
func Component(src []byte, version VueVersion) ([]span.Record, error) {
	if version == Vue3 {
		if recs, err := componentV3(src); err == nil {
			return span.Normalize(recs), nil
		}
	}
	recs, err := componentV2(src)
	if err != nil {
		return nil, err
	}
	return span.Normalize(recs), nil
}
