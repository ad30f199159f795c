// Package seed turns selected sections of a translation catalog into a
// source-code object literal that carries every language per key.
//
// The reference language document decides the shape of the output. For each
// string leaf under a selected section, the emitter writes one entry holding
// the value of that key in every configured language:
//
//	const ADDITIONAL_SITE_CONTENT = {
//	    common: {
//	        title: { en: "Hi", de: "Hallo" },
//	    },
//	};
//
// Basic usage:
//
//	catalog, _ := i18n.Load(ctx, os.DirFS("public/locales"))
//	emitter, err := seed.New(catalog,
//		seed.WithSections("common", "app"),
//	)
//	if err != nil {
//		return err
//	}
//	stats, err := emitter.Emit(os.Stdout)
//
// Keys keep the order of the reference document. Nested groups with no string
// leaves are dropped, while a configured top-level section always gets a block.
// Values other than strings and groups (numbers, booleans, null, arrays) are
// skipped. A language that lacks a key gets an empty string.
//
// String values are escaped so that each entry stays a valid one-line
// double-quoted literal. Keys that are not identifiers are quoted.
package seed
