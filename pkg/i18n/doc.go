// Package i18n loads per-language translation documents and resolves keys
// across all of them at once.
//
// Documents are nested key/value trees. Unlike a plain map[string]any, a Tree
// keeps keys in the order they were written in the source file, so anything
// generated from it follows the same order as the translation files.
//
// # Loading
//
// Load reads one document per language from an fs.FS:
//
//	catalog, err := i18n.Load(ctx, os.DirFS("public/locales"),
//		i18n.WithLanguages("en", "de", "fr"),
//		i18n.WithReferenceLanguage("en"),
//		i18n.WithFailureHandler(func(e *i18n.LoadError) {
//			log.Printf("skipping %s: %v", e.Lang, e.Err)
//		}),
//	)
//
// File convention: {lang}/{namespace}.json, {lang}/{namespace}.yaml or
// {lang}/{namespace}.yml, where the namespace defaults to "translation".
//
// A missing or malformed document never aborts loading. The failure is logged,
// passed to the failure handler and recorded in Catalog.Failures, and that
// language behaves as an empty document afterwards. Load only returns an error
// for invalid options.
//
// # Resolving keys
//
// Localize collects one value per configured language:
//
//	v := catalog.Localize(i18n.ParseKeyPath("common.title"))
//	v.Get("de") // "Hallo"
//
// Lookups are total: a missing segment, or a segment that is not a string in
// some language, yields an empty string for that language.
//
// # Thread Safety
//
// A Catalog is immutable after Load returns and is safe for concurrent use.
package i18n
