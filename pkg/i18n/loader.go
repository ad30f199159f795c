package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
)

// documentExtensions lists the file extensions tried for each language, in order.
var documentExtensions = []string{".json", ".yaml", ".yml"}

// Load reads one document per configured language from fsys.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{namespace}.json (or .yaml/.yml)
//
// Example structure:
//
//	en/translation.json
//	de/translation.json
//	fr/translation.yaml
//
// A document that is missing or malformed does not stop loading: the failure is
// reported and the language is treated as empty. Only invalid configuration
// returns an error.
func Load(ctx context.Context, fsys fs.FS, opts ...Option) (*Catalog, error) {
	c := newCatalog()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if !slices.Contains(c.languages, c.reference) {
		return nil, fmt.Errorf("%w: %q", ErrReferenceNotListed, c.reference)
	}

	for _, lang := range c.languages {
		if _, ok := c.documents[lang]; ok {
			continue
		}
		if fsys == nil {
			return nil, ErrNilFS
		}

		doc, err := loadDocument(fsys, lang, c.namespace)
		if err != nil {
			c.fail(ctx, err)
			continue
		}
		c.documents[lang] = doc
		c.log.DebugContext(ctx, "translation document loaded",
			slog.String("lang", lang),
			slog.Int("keys", doc.Len()),
		)
	}

	return c, nil
}

func (c *Catalog) fail(ctx context.Context, err *LoadError) {
	c.failures = append(c.failures, err)
	c.log.WarnContext(ctx, "failed to load translation document",
		slog.String("lang", err.Lang),
		slog.String("path", err.Path),
		slog.String("error", err.Err.Error()),
	)
	if c.failureHandler != nil {
		c.failureHandler(err)
	}
}

// loadDocument returns the first document found for lang among the supported extensions.
func loadDocument(fsys fs.FS, lang, namespace string) (*Tree, *LoadError) {
	for _, ext := range documentExtensions {
		filePath := path.Join(lang, namespace+ext)

		data, err := fs.ReadFile(fsys, filePath)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &LoadError{Lang: lang, Path: filePath, Err: fmt.Errorf("reading: %w", err)}
		}

		doc, err := ParseDocument(filePath, data)
		if err != nil {
			return nil, &LoadError{Lang: lang, Path: filePath, Err: err}
		}
		return doc, nil
	}

	return nil, &LoadError{
		Lang: lang,
		Path: path.Join(lang, namespace+".json"),
		Err:  ErrDocumentNotFound,
	}
}

// ParseDocument decodes a JSON or YAML document, chosen by the extension of name.
func ParseDocument(name string, data []byte) (*Tree, error) {
	var decode decodeFunc
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		decode = decodeJSON
	case ".yaml", ".yml":
		decode = decodeYAML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, name)
	}
	return decode(data)
}
