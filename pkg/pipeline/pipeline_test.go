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
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kiwigo/extract/pkg/translator"
)

func TestPipeline(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pipeline Suite")
}

// stubTranslator returns one fixed token per fragment seen, regardless of
// content, so assertions don't depend on Pinyin's table.
type stubTranslator struct{ next int }

func (s *stubTranslator) TranslateBatch(_ context.Context, fragments []string) ([]string, error) {
	out := make([]string, len(fragments))
	for i := range fragments {
		out[i] = "tok" + string(rune('a'+s.next))
		s.next++
	}
	return out, nil
}

func baseConfig(dir string) Config {
	return Config{
		KiwiDir:                filepath.Join(dir, "i18n"),
		SrcLang:                "zh-CN",
		FileType:               ".ts",
		DefaultTranslateKeyAPI: ProviderPinyin,
		LookupSymbol:           "I18N",
		ImportI18N:             "@/i18n",
		VueVersion:             "vue3",
		ValidateDuplicate:      true,
	}
}

var _ = Describe("Orchestrator", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("rewrites a plain script file and persists a catalog entry", func() {
		src := filepath.Join(dir, "src", "login.ts")
		Expect(os.MkdirAll(filepath.Dir(src), 0o755)).To(Succeed())
		Expect(os.WriteFile(src, []byte("const msg = \"提交\"\n"), 0o644)).To(Succeed())

		o, err := New(baseConfig(dir), &stubTranslator{})
		Expect(err).NotTo(HaveOccurred())

		results, err := o.Run(context.Background(), filepath.Join(dir, "src"))
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(results[0].Outcome).To(Equal(OutcomeRewritten))
		Expect(results[0].KeysWritten).To(Equal(1))

		rewritten, err := os.ReadFile(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(rewritten)).To(ContainSubstring("I18N."))
		Expect(string(rewritten)).To(ContainSubstring(`import I18N from '@/i18n';`))

		nsFiles, err := filepath.Glob(filepath.Join(dir, "i18n", "zh-CN", "*.ts"))
		Expect(err).NotTo(HaveOccurred())
		Expect(nsFiles).NotTo(BeEmpty())
	})

	It("reports a file with no Chinese literals as clean", func() {
		src := filepath.Join(dir, "src", "plain.ts")
		Expect(os.MkdirAll(filepath.Dir(src), 0o755)).To(Succeed())
		Expect(os.WriteFile(src, []byte("const a = 1\n"), 0o644)).To(Succeed())

		o, err := New(baseConfig(dir), &stubTranslator{})
		Expect(err).NotTo(HaveOccurred())

		results, err := o.Run(context.Background(), filepath.Join(dir, "src"))
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(results[0].Outcome).To(Equal(OutcomeClean))
	})

	It("leaves disk untouched in dry-run mode", func() {
		src := filepath.Join(dir, "src", "login.ts")
		Expect(os.MkdirAll(filepath.Dir(src), 0o755)).To(Succeed())
		original := []byte("const msg = \"提交\"\n")
		Expect(os.WriteFile(src, original, 0o644)).To(Succeed())

		cfg := baseConfig(dir)
		cfg.DryRun = true
		o, err := New(cfg, &stubTranslator{})
		Expect(err).NotTo(HaveOccurred())

		results, err := o.Run(context.Background(), filepath.Join(dir, "src"))
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Outcome).To(Equal(OutcomeRewritten))

		untouched, err := os.ReadFile(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(untouched).To(Equal(original))

		_, err = os.Stat(filepath.Join(dir, "i18n", "zh-CN", "index.ts"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("rejects an unrecognized translate-key-api at construction", func() {
		cfg := baseConfig(dir)
		cfg.DefaultTranslateKeyAPI = "DeepL"
		_, err := New(cfg, &stubTranslator{})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown translate-key-api"))
	})

	It("continues past a file that fails to translate", func() {
		good := filepath.Join(dir, "src", "a.ts")
		bad := filepath.Join(dir, "src", "b.ts")
		Expect(os.MkdirAll(filepath.Dir(good), 0o755)).To(Succeed())
		Expect(os.WriteFile(good, []byte("const msg = \"提交\"\n"), 0o644)).To(Succeed())
		Expect(os.WriteFile(bad, []byte("const msg = \"取消\"\n"), 0o644)).To(Succeed())

		o, err := New(baseConfig(dir), failingTranslator{fail: "取消"})
		Expect(err).NotTo(HaveOccurred())

		results, err := o.Run(context.Background(), filepath.Join(dir, "src"))
		Expect(err).NotTo(HaveOccurred())

		byPath := map[string]FileResult{}
		for _, r := range results {
			byPath[r.Path] = r
		}
		Expect(byPath[good].Outcome).To(Equal(OutcomeRewritten))
		Expect(byPath[bad].Outcome).To(Equal(OutcomeFailed))
	})

	It("treats a zero-length translator result as a per-file failure", func() {
		src := filepath.Join(dir, "src", "login.ts")
		Expect(os.MkdirAll(filepath.Dir(src), 0o755)).To(Succeed())
		Expect(os.WriteFile(src, []byte("const msg = \"提交\"\n"), 0o644)).To(Succeed())

		o, err := New(baseConfig(dir), emptyTranslator{})
		Expect(err).NotTo(HaveOccurred())

		results, err := o.Run(context.Background(), filepath.Join(dir, "src"))
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(results[0].Outcome).To(Equal(OutcomeFailed))
		Expect(errors.Is(results[0].Err, ErrTranslatorEmpty)).To(BeTrue())
	})
})

// emptyTranslator always returns a zero-length, error-free result, the
// "zero-length result" half of the Translator error case.
type emptyTranslator struct{}

func (emptyTranslator) TranslateBatch(_ context.Context, _ []string) ([]string, error) {
	return nil, nil
}

// failingTranslator errors whenever a fragment derived from a matching
// literal is seen, so a single-file translator failure can be induced
// without depending on Pinyin's table contents.
type failingTranslator struct{ fail string }

func (f failingTranslator) TranslateBatch(_ context.Context, fragments []string) ([]string, error) {
	for _, frag := range fragments {
		if frag == translator.PrepareFragment(f.fail) {
			return nil, errTranslateFailed
		}
	}
	out := make([]string, len(fragments))
	for i := range fragments {
		out[i] = "tok"
	}
	return out, nil
}

var errTranslateFailed = &translateError{"induced translate failure"}

type translateError struct{ msg string }

func (e *translateError) Error() string { return e.msg }
