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

// Package keygen synthesizes stable, collision-free dotted catalog keys for
// newly discovered Chinese literals.
package keygen

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kiwigo/extract/pkg/catalog"
)

// Assignment is the key resolved for one literal, and whether a fresh
// catalog entry needs to be written for it.
type Assignment struct {
	Key       string
	NeedWrite bool
}

// Synthesizer assigns keys against a catalog.Store mirror. Prefix, if set,
// overrides the path-derived namespace/suggestion segments for every file.
type Synthesizer struct {
	Store  *catalog.Store
	Prefix string
}

// New builds a Synthesizer bound to store.
func New(store *catalog.Store, prefix string) *Synthesizer {
	return &Synthesizer{Store: store, Prefix: prefix}
}

// AssignFile resolves a key for every text in texts, given its
// already-translated token (tokens[i] corresponds to texts[i]). Identical
// texts within one call resolve to the same key without a second catalog
// lookup. Keys reserved for texts that need a fresh catalog entry are
// written into the Store's mirror immediately, so later literals in this
// same file, and files processed afterward, see them as occupied even
// before anything is persisted to disk.
func (k *Synthesizer) AssignFile(file string, texts, tokens []string) ([]Assignment, error) {
	if len(texts) != len(tokens) {
		return nil, errors.Errorf("keygen: %d texts but %d translated tokens", len(texts), len(tokens))
	}

	memo := map[string]Assignment{}
	out := make([]Assignment, len(texts))
	for i, text := range texts {
		if a, ok := memo[text]; ok {
			out[i] = Assignment{Key: a.Key, NeedWrite: false}
			continue
		}
		a := k.assignOne(file, text, tokens[i])
		memo[text] = a
		out[i] = a
	}
	return out, nil
}

func (k *Synthesizer) assignOne(file, text, token string) Assignment {
	if key, ok := k.Store.LookupByValue(text); ok {
		return Assignment{Key: key, NeedWrite: false}
	}

	base := k.baseKey(file, token)

	occurTime := 1
	var candidate string
	for {
		suffix := ""
		if occurTime >= 2 {
			suffix = strconv.Itoa(occurTime)
		}
		candidate = base + suffix
		val, hasKey := k.Store.LookupByKey(candidate)
		condA := !hasKey || val != text
		condB := hasKey
		if condA && condB {
			occurTime++
			continue
		}
		break
	}

	k.Store.Reserve(candidate, text)
	return Assignment{Key: candidate, NeedWrite: true}
}

func (k *Synthesizer) baseKey(file, token string) string {
	transText := toCamelCase(token)
	var prefix string
	if k.Prefix != "" {
		prefix = k.Prefix
	} else {
		prefix = strings.Join(suggestPath(file), ".")
	}
	base := prefix + "." + transText
	return strings.ReplaceAll(base, "-", "_")
}
