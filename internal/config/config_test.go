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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "src/i18n", cfg.KiwiDir)
	assert.Equal(t, "zh-CN", cfg.SrcLang)
	assert.Equal(t, "I18N", cfg.LookupSymbol)
}

func TestLoadParsesProjectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiwi.config.yaml")
	content := `
kiwiDir: assets/locales
srcLang: zh
fileType: .js
ignoreDir: [node_modules, dist]
ignoreFile: ["*.spec.js"]
defaultTranslateKeyApi: Pinyin
vueVersion: vue2
includeHTML: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "assets/locales", cfg.KiwiDir)
	assert.Equal(t, "zh", cfg.SrcLang)
	assert.Equal(t, ".js", cfg.FileType)
	assert.Equal(t, []string{"node_modules", "dist"}, cfg.IgnoreDir)
	assert.Equal(t, []string{"*.spec.js"}, cfg.IgnoreFile)
	assert.Equal(t, "vue2", cfg.VueVersion)
	assert.True(t, cfg.IncludeHTML)
}

func TestEnvOverlayOverridesFileAndDefaults(t *testing.T) {
	t.Setenv("KIWI_DEFAULT_TRANSLATE_KEY_API", "Baidu")
	t.Setenv("KIWI_DRY_RUN", "true")
	t.Setenv("KIWI_IGNORE_DIR", "node_modules, build")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Baidu", cfg.DefaultTranslateKeyAPI)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, []string{"node_modules", "build"}, cfg.IgnoreDir)
}
