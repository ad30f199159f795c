package seed_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/seedgen/pkg/i18n"
	"github.com/dmitrymomot/seedgen/pkg/seed"
)

// newCatalog builds a catalog from inline JSON documents keyed by language.
// Languages mapped to an empty string behave as failed loads.
func newCatalog(t *testing.T, langs []string, docs map[string]string) *i18n.Catalog {
	t.Helper()

	opts := []i18n.Option{i18n.WithLanguages(langs...)}
	for lang, body := range docs {
		if body == "" {
			continue
		}
		doc, err := i18n.ParseDocument(lang+".json", []byte(body))
		require.NoError(t, err)
		opts = append(opts, i18n.WithDocument(lang, doc))
	}

	// Languages without a document fall through to an empty file system.
	catalog, err := i18n.Load(context.Background(), fstest.MapFS{}, opts...)
	require.NoError(t, err)
	return catalog
}

func render(t *testing.T, catalog *i18n.Catalog, opts ...seed.Option) string {
	t.Helper()
	emitter, err := seed.New(catalog, opts...)
	require.NoError(t, err)
	out, _ := emitter.Render()
	return out
}

func TestEmitterScenarios(t *testing.T) {
	t.Parallel()

	t.Run("single leaf in two languages", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en", "de"}, map[string]string{
			"en": `{"common": {"title": "Hi"}}`,
			"de": `{"common": {"title": "Hallo"}}`,
		})

		out := render(t, catalog, seed.WithSections("common"))
		require.Equal(t, `// Generated SEED DATA - Add to SeedData.tsx

const ADDITIONAL_SITE_CONTENT = {
    common: {
        title: { en: "Hi", de: "Hallo" },
    },
};


// To merge with existing SEED_SITE_CONTENT:
// const SEED_SITE_CONTENT = { ...SEED_SITE_CONTENT, ...ADDITIONAL_SITE_CONTENT };
`, out)
	})

	t.Run("nested group with missing translation", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en", "de"}, map[string]string{
			"en": `{"app": {"name": "X", "nested": {"a": "1"}}}`,
			"de": `{"app": {"name": "Y"}}`,
		})

		out := render(t, catalog, seed.WithSections("app"))
		require.Contains(t, out, `    app: {
        name: { en: "X", de: "Y" },
        nested: {
            a: { en: "1", de: "" },
        },
    },
`)
	})

	t.Run("non-string leaf is skipped but section is kept", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en", "de"}, map[string]string{
			"en": `{"stats": {"count": 5}}`,
		})

		out := render(t, catalog, seed.WithSections("stats"))
		require.Contains(t, out, "    stats: {\n    },\n")
		require.NotContains(t, out, "count")
	})

	t.Run("section absent from reference is emitted empty", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en"}, map[string]string{
			"en": `{"common": {"title": "Hi"}}`,
		})

		out := render(t, catalog, seed.WithSections("common", "missing"))
		require.Contains(t, out, "    missing: {\n    },\n")
	})

	t.Run("section that is a string in reference is emitted empty", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en"}, map[string]string{
			"en": `{"common": "flat"}`,
		})

		out := render(t, catalog, seed.WithSections("common"))
		require.Contains(t, out, "    common: {\n    },\n")
		require.NotContains(t, out, "flat")
	})

	t.Run("double quotes are escaped", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en"}, map[string]string{
			"en": `{"app": {"quote": "He said \"hi\"", "deep": {"q": "\"x\""}}}`,
		})

		out := render(t, catalog, seed.WithSections("app"))
		require.Contains(t, out, `quote: { en: "He said \"hi\"" },`)
		require.Contains(t, out, `q: { en: "\"x\"" },`)
	})
}

func TestEmitterStructure(t *testing.T) {
	t.Parallel()

	t.Run("preserves reference key order at every depth", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en", "de"}, map[string]string{
			"en": `{"s": {"zeta": "z", "group": {"y": "1", "b": "2"}, "alpha": "a"}}`,
			"de": `{"s": {"alpha": "A", "group": {"b": "B", "y": "Y"}, "zeta": "Z"}}`,
		})

		out := render(t, catalog, seed.WithSections("s"))
		idx := func(s string) int {
			i := strings.Index(out, s)
			require.GreaterOrEqual(t, i, 0, s)
			return i
		}
		assert.Less(t, idx("zeta:"), idx("group:"))
		assert.Less(t, idx("group:"), idx("alpha:"))
		assert.Less(t, idx("y:"), idx("b:"))
	})

	t.Run("shape comes only from the reference language", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en", "de"}, map[string]string{
			"en": `{"s": {"a": "A"}}`,
			"de": `{"s": {"a": "a", "extra": "nur Deutsch", "g": {"x": "y"}}}`,
		})

		out := render(t, catalog, seed.WithSections("s"))
		require.NotContains(t, out, "extra")
		require.NotContains(t, out, "g:")
	})

	t.Run("groups without string leaves are dropped", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en"}, map[string]string{
			"en": `{"s": {"empty": {}, "numbers": {"n": 1, "deeper": {"b": true}}, "keep": "k"}}`,
		})

		out := render(t, catalog, seed.WithSections("s"))
		require.NotContains(t, out, "empty")
		require.NotContains(t, out, "numbers")
		require.NotContains(t, out, "deeper")
		require.Contains(t, out, `keep: { en: "k" },`)
	})

	t.Run("every language is emitted even when all documents failed", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en", "de", "fr"}, map[string]string{})

		out := render(t, catalog, seed.WithSections("common", "app"))
		require.Contains(t, out, "    common: {\n    },\n    app: {\n    },\n")
	})

	t.Run("reference leaf that is empty in another language", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en", "de", "fr"}, map[string]string{
			"en": `{"s": {"k": "v"}}`,
			"de": `{"s": {"k": {"not": "a leaf"}}}`,
			"fr": `{"s": "flat"}`,
		})

		out := render(t, catalog, seed.WithSections("s"))
		require.Contains(t, out, `k: { en: "v", de: "", fr: "" },`)
	})

	t.Run("non-identifier keys are quoted", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en", "pt-BR"}, map[string]string{
			"en":    `{"contact-page": {"2fa": "Code", "ok_key": "OK"}}`,
			"pt-BR": `{"contact-page": {"2fa": "Código"}}`,
		})

		out := render(t, catalog, seed.WithSections("contact-page"))
		require.Contains(t, out, `"contact-page": {`)
		require.Contains(t, out, `"2fa": { en: "Code", "pt-BR": "Código" },`)
		require.Contains(t, out, `ok_key: { en: "OK", "pt-BR": "" },`)
	})

	t.Run("control characters stay on one line", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en"}, map[string]string{
			"en": `{"s": {"multi": "line one\nline two\ttab \\ slash"}}`,
		})

		out := render(t, catalog, seed.WithSections("s"))
		require.Contains(t, out, `multi: { en: "line one\nline two\ttab \\ slash" },`)
	})

	t.Run("deep nesting stays balanced", func(t *testing.T) {
		t.Parallel()
		catalog := newCatalog(t, []string{"en"}, map[string]string{
			"en": `{"s": {"a": {"b": {"c": {"d": "deep \"quoted\""}}}}}`,
		})

		out := render(t, catalog, seed.WithSections("s"))
		require.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
		require.Contains(t, out, "                    d: { en: \"deep \\\"quoted\\\"\" },\n")
	})
}

func TestEmitterOptions(t *testing.T) {
	t.Parallel()

	catalog := newCatalog(t, []string{"en"}, map[string]string{
		"en": `{"common": {"title": "Hi"}}`,
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		emitter, err := seed.New(catalog)
		require.NoError(t, err)
		require.Equal(t, seed.DefaultSections, emitter.Sections())
	})

	t.Run("custom names and indent", func(t *testing.T) {
		t.Parallel()
		out := render(t, catalog,
			seed.WithSections("common"),
			seed.WithVariable("EXTRA"),
			seed.WithMergeTarget("BASE"),
			seed.WithHeader("generated"),
			seed.WithIndent("\t"),
		)
		require.Equal(t, "// generated\n\nconst EXTRA = {\n\tcommon: {\n\t\ttitle: { en: \"Hi\" },\n\t},\n};\n\n\n"+
			"// To merge with existing BASE:\n// const BASE = { ...BASE, ...EXTRA };\n", out)
	})

	t.Run("no header and no merge hint", func(t *testing.T) {
		t.Parallel()
		out := render(t, catalog,
			seed.WithSections("common"),
			seed.WithHeader(""),
			seed.WithMergeTarget(""),
		)
		require.Equal(t, "const ADDITIONAL_SITE_CONTENT = {\n    common: {\n        title: { en: \"Hi\" },\n    },\n};\n", out)
	})

	tests := []struct {
		name string
		opt  seed.Option
		err  error
	}{
		{"empty section", seed.WithSections("a", ""), seed.ErrEmptySection},
		{"duplicate section", seed.WithSections("a", "a"), seed.ErrDuplicateSection},
		{"bad variable", seed.WithVariable("not valid"), seed.ErrInvalidIdentifier},
		{"empty variable", seed.WithVariable(""), seed.ErrInvalidIdentifier},
		{"bad merge target", seed.WithMergeTarget("1x"), seed.ErrInvalidIdentifier},
		{"empty indent", seed.WithIndent(""), seed.ErrInvalidIndent},
		{"non-space indent", seed.WithIndent("--"), seed.ErrInvalidIndent},
		{"newline indent", seed.WithIndent("\n"), seed.ErrInvalidIndent},
		{"space and newline indent", seed.WithIndent(" \n"), seed.ErrInvalidIndent},
		{"carriage return indent", seed.WithIndent("\r"), seed.ErrInvalidIndent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := seed.New(catalog, tt.opt)
			require.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("nil catalog", func(t *testing.T) {
		t.Parallel()
		_, err := seed.New(nil)
		require.ErrorIs(t, err, seed.ErrNilCatalog)
	})
}

func TestEmitterEmit(t *testing.T) {
	t.Parallel()

	catalog := newCatalog(t, []string{"en", "de", "fr"}, map[string]string{
		"en": `{"s": {"a": "A", "b": "B", "g": {"c": "C"}}}`,
		"de": `{"s": {"a": "a", "g": {"c": "c"}}}`,
	})

	t.Run("writes output and reports stats", func(t *testing.T) {
		t.Parallel()
		var missing []string
		emitter, err := seed.New(catalog,
			seed.WithSections("s"),
			seed.WithMissingHandler(func(lang string, path i18n.KeyPath) {
				missing = append(missing, lang+":"+path.String())
			}),
		)
		require.NoError(t, err)

		var buf bytes.Buffer
		stats, err := emitter.Emit(&buf)
		require.NoError(t, err)

		want, _ := emitter.Render()
		require.Equal(t, want, buf.String())
		require.Equal(t, 3, stats.Leaves)
		require.Equal(t, map[string]int{"de": 1, "fr": 3}, stats.Missing)
		require.Equal(t, []string{"fr:s.a", "de:s.b", "fr:s.b", "fr:s.g.c"}, missing)
	})

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()
		emitter, err := seed.New(catalog)
		require.NoError(t, err)

		_, err = emitter.Emit(failingWriter{})
		require.ErrorIs(t, err, seed.ErrWrite)
		require.ErrorIs(t, err, errBroken)
	})
}

var errBroken = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBroken }
