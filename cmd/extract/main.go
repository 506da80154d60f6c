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

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kiwigo/extract/internal/config"
	"github.com/kiwigo/extract/pkg/pipeline"
	"github.com/kiwigo/extract/pkg/translator"
)

var (
	red    = color.New(color.FgRed)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var configPath string
	var dryRun bool
	var validateDuplicate bool
	var validateDuplicateSet bool

	cmd := &cobra.Command{
		Use:   "extract [target] [prefix]",
		Short: "Find Chinese literals under target, replace them with I18N lookups, and grow the resource catalog",
		Long: `extract walks target (a directory, or a comma-separated explicit file list),
finds Chinese literals in .ts/.tsx/.js/.jsx/.vue (and, if enabled, .html)
files, synthesizes stable catalog keys, rewrites the source to reference
them, and writes the resource catalog to disk.

prefix, if given, overrides the path-derived key namespace for every
literal found in this run. A leading "<lookupSymbol>." segment (e.g.
"I18N.") is stripped automatically, since the rewriter adds it back.`,
		Args:         cobra.RangeArgs(0, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			validateDuplicateSet = cmd.Flags().Changed("validate-duplicate")
			return runExtract(cmd, args, configPath, dryRun, validateDuplicate, validateDuplicateSet)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to kiwi.config.yaml (default: ./kiwi.config.yaml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without touching disk")
	cmd.Flags().BoolVar(&validateDuplicate, "validate-duplicate", true, "fail a file when a key would silently rebind to a different value")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, configPath string, dryRun bool, validateDuplicate bool, validateDuplicateSet bool) error {
	target := "./"
	if len(args) > 0 {
		target = args[0]
	}
	prefix := ""
	if len(args) > 1 {
		prefix = args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "extract: load configuration")
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if validateDuplicateSet {
		cfg.ValidateDuplicate = validateDuplicate
	}
	cfg.Prefix = stripLookupPrefix(prefix, cfg.LookupSymbol)

	tr, err := buildTranslator(cfg)
	if err != nil {
		return err
	}

	orch, err := pipeline.New(cfg, tr)
	if err != nil {
		return errors.Wrap(err, "extract: configuration error")
	}

	s := newTrackingSpinner(fmt.Sprintf("scanning %s", target))
	s.Start()
	results, err := orch.Run(context.Background(), target)
	s.Stop()
	if err != nil {
		return errors.Wrap(err, "extract: run")
	}

	report(cmd, results)
	return nil
}

// buildTranslator resolves cfg.DefaultTranslateKeyAPI into a
// translator.KeyTranslator. Pinyin is the only provider this build ships
// without network access; Google/Baidu are recognized configuration
// values but have no bundled client, so selecting them is a hard-abort
// Configuration error rather than a silent fallback.
func buildTranslator(cfg pipeline.Config) (translator.KeyTranslator, error) {
	switch cfg.DefaultTranslateKeyAPI {
	case pipeline.ProviderPinyin:
		return translator.Pinyin{}, nil
	case pipeline.ProviderGoogle, pipeline.ProviderBaidu:
		return nil, errors.Errorf("extract: %s translate-key-api has no bundled client in this build", cfg.DefaultTranslateKeyAPI)
	default:
		return nil, errors.Wrapf(pipeline.ErrUnknownProvider, "%q", cfg.DefaultTranslateKeyAPI)
	}
}

// stripLookupPrefix removes a leading "<lookupSymbol>." segment from a
// user-supplied prefix argument, since the rewriter prepends the lookup
// symbol itself when it builds the final reference.
func stripLookupPrefix(prefix, lookupSymbol string) string {
	full := lookupSymbol + "."
	return strings.TrimPrefix(prefix, full)
}

func report(cmd *cobra.Command, results []pipeline.FileResult) {
	var rewritten, clean, failed int
	for _, r := range results {
		switch r.Outcome {
		case pipeline.OutcomeRewritten:
			rewritten++
			green.Fprintf(cmd.OutOrStdout(), "  rewrote %s (%d keys)\n", r.Path, r.KeysWritten)
		case pipeline.OutcomeClean:
			clean++
		case pipeline.OutcomeFailed:
			failed++
			red.Fprintf(cmd.OutOrStdout(), "  skipped %s: %v\n", r.Path, r.Err)
		}
	}
	yellow.Fprintf(cmd.OutOrStdout(), "%d rewritten, %d clean, %d failed\n", rewritten, clean, failed)
}

func newTrackingSpinner(suffix string) *spinner.Spinner {
	suffixColor := color.New(color.Bold, color.FgGreen)
	return spinner.New(
		spinner.CharSets[14],
		200*time.Millisecond,
		spinner.WithColor("green"),
		spinner.WithHiddenCursor(true),
		spinner.WithSuffix(suffixColor.Sprintf(" %s", suffix)),
	)
}
