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

// Package config loads a project's on-disk "kiwi.config.yaml" into a
// pkg/pipeline.Config, overlaying recognized environment variables.
// pkg/pipeline never imports this package: the Orchestrator takes a
// Config value built however its caller likes, and this loader is one way
// to build one, not a dependency of the core.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kiwigo/extract/pkg/pipeline"
)

// DefaultFileName is the project configuration file Load looks for when
// called with an empty path.
const DefaultFileName = "kiwi.config.yaml"

// file mirrors the recognized keys of a kiwi.config.yaml document. Field
// names follow the project-configuration key table: kiwiDir, srcLang,
// fileType, ignoreDir, ignoreFile, defaultTranslateKeyApi, lookupSymbol,
// importI18N, vueVersion, prefix, includeHTML, validateDuplicate, dryRun.
type file struct {
	KiwiDir                string   `yaml:"kiwiDir"`
	SrcLang                string   `yaml:"srcLang"`
	FileType               string   `yaml:"fileType"`
	IgnoreDir              []string `yaml:"ignoreDir"`
	IgnoreFile             []string `yaml:"ignoreFile"`
	DefaultTranslateKeyAPI string   `yaml:"defaultTranslateKeyApi"`
	LookupSymbol           string   `yaml:"lookupSymbol"`
	ImportI18N             string   `yaml:"importI18N"`
	VueVersion             string   `yaml:"vueVersion"`
	Prefix                 string   `yaml:"prefix"`
	IncludeHTML            bool     `yaml:"includeHTML"`
	ValidateDuplicate      bool     `yaml:"validateDuplicate"`
	DryRun                 bool     `yaml:"dryRun"`
}

// defaults mirrors what a fresh project gets when a key is absent from
// both the file and the environment.
func defaults() file {
	return file{
		KiwiDir:                "src/i18n",
		SrcLang:                "zh-CN",
		FileType:               ".ts",
		DefaultTranslateKeyAPI: pipeline.ProviderPinyin,
		LookupSymbol:           "I18N",
		ImportI18N:             "@/i18n",
		VueVersion:             "vue3",
		ValidateDuplicate:      true,
	}
}

// Load reads path (DefaultFileName if empty) and overlays recognized
// KIWI_* environment variables on top of it, then returns the resulting
// pkg/pipeline.Config. A missing file is not an error: the environment
// overlay and the built-in defaults are enough to run against.
func Load(path string) (pipeline.Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	f := defaults()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through with defaults only
	case err != nil:
		return pipeline.Config{}, errors.Wrapf(err, "config: read %s", path)
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return pipeline.Config{}, errors.Wrapf(err, "config: parse %s", path)
		}
	}

	overlayEnv(&f)

	return pipeline.Config{
		KiwiDir:                f.KiwiDir,
		SrcLang:                f.SrcLang,
		FileType:               f.FileType,
		IgnoreDir:              f.IgnoreDir,
		IgnoreFile:             f.IgnoreFile,
		DefaultTranslateKeyAPI: f.DefaultTranslateKeyAPI,
		LookupSymbol:           f.LookupSymbol,
		ImportI18N:             f.ImportI18N,
		VueVersion:             f.VueVersion,
		Prefix:                 f.Prefix,
		IncludeHTML:            f.IncludeHTML,
		ValidateDuplicate:      f.ValidateDuplicate,
		DryRun:                 f.DryRun,
	}, nil
}

// overlayEnv applies KIWI_* environment variables on top of f, for the
// handful of keys worth overriding without editing the project file:
// provider selection, the dry-run/duplicate-validation toggles, and the
// ignore-dir list.
func overlayEnv(f *file) {
	if v := os.Getenv("KIWI_DEFAULT_TRANSLATE_KEY_API"); v != "" {
		f.DefaultTranslateKeyAPI = v
	}
	if v := os.Getenv("KIWI_DRY_RUN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.DryRun = b
		}
	}
	if v := os.Getenv("KIWI_VALIDATE_DUPLICATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.ValidateDuplicate = b
		}
	}
	if v := os.Getenv("KIWI_IGNORE_DIR"); v != "" {
		f.IgnoreDir = splitCSV(v)
	}
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
