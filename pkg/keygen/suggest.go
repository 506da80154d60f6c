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
	"path/filepath"
	"strings"
)

// suggestPath derives a default key namespace path segment list from a
// source file's location: files under a "pages" directory use the page's
// own two path segments; everything else falls back to its directory name,
// plus its own base name when the two differ.
func suggestPath(file string) []string {
	norm := filepath.ToSlash(file)
	if idx := strings.Index(norm, "/pages/"); idx >= 0 {
		rest := norm[idx+len("/pages/"):]
		parts := strings.Split(rest, "/")
		if len(parts) >= 3 {
			segA := parts[1]
			segB := strings.TrimSuffix(parts[2], filepath.Ext(parts[2]))
			return []string{segA, segB}
		}
	}

	base := filepath.Base(norm)
	fileBase := strings.TrimSuffix(base, filepath.Ext(base))
	dirName := filepath.Base(filepath.Dir(norm))
	if dirName == fileBase || dirName == "." || dirName == "/" {
		return []string{fileBase}
	}
	return []string{dirName, fileBase}
}
