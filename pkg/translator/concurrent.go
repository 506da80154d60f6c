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

package translator

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SingleFunc translates one fragment in isolation, the shape a provider
// without native batch support exposes.
type SingleFunc func(ctx context.Context, fragment string) (string, error)

// Concurrent adapts a SingleFunc into a KeyTranslator by fanning a batch
// out over a bounded worker pool and collecting results back into order,
// for providers whose API is one call per fragment rather than one call
// per batch.
type Concurrent struct {
	Translate   SingleFunc
	Concurrency int
}

// NewConcurrent builds a Concurrent decorator. concurrency <= 0 defaults
// to 4.
func NewConcurrent(translate SingleFunc, concurrency int) *Concurrent {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Concurrent{Translate: translate, Concurrency: concurrency}
}

// TranslateBatch implements KeyTranslator.
func (c *Concurrent) TranslateBatch(ctx context.Context, fragments []string) ([]string, error) {
	out := make([]string, len(fragments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)
	for i, f := range fragments {
		i, f := i, f
		g.Go(func() error {
			tok, err := c.Translate(gctx, f)
			if err != nil {
				return err
			}
			out[i] = tok // stable order
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
