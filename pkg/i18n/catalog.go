package i18n

import (
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/seedgen/pkg/logger"
)

// DefaultLang is the reference language used when none is specified.
const DefaultLang = "en"

// DefaultNamespace is the document name looked up inside every language directory.
const DefaultNamespace = "translation"

// DefaultLanguages mirrors the locales shipped with the site.
var DefaultLanguages = []string{"en", "de", "es", "fr", "nl"}

// Catalog holds one translation document per configured language.
// It is immutable once Load returns, so it is safe for concurrent use.
type Catalog struct {
	documents map[string]*Tree

	// Called once per language that failed to load.
	failureHandler func(*LoadError)

	log       *slog.Logger
	reference string
	namespace string
	languages []string
	failures  []*LoadError
}

// Option configures the Catalog during loading.
type Option func(*Catalog) error

func newCatalog() *Catalog {
	return &Catalog{
		documents: make(map[string]*Tree),
		log:       logger.NewNope(),
		reference: DefaultLang,
		namespace: DefaultNamespace,
		languages: slices.Clone(DefaultLanguages),
	}
}

// WithLanguages sets the languages to load, in output order.
// Every code must be a well-formed BCP 47 tag and appear only once.
func WithLanguages(langs ...string) Option {
	return func(c *Catalog) error {
		if len(langs) == 0 {
			return nil
		}

		seen := make(map[string]bool, len(langs))
		for _, lang := range langs {
			if lang == "" {
				return ErrEmptyLanguage
			}
			if _, err := language.Parse(lang); err != nil {
				return fmt.Errorf("%w: %q: %s", ErrInvalidLanguage, lang, err)
			}
			if seen[lang] {
				return fmt.Errorf("%w: %q", ErrDuplicateLanguage, lang)
			}
			seen[lang] = true
		}

		c.languages = slices.Clone(langs)
		return nil
	}
}

// WithReferenceLanguage sets the language whose document shape drives the output.
func WithReferenceLanguage(lang string) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.reference = lang
		return nil
	}
}

// WithNamespace sets the document file name (without extension) inside each language directory.
func WithNamespace(namespace string) Option {
	return func(c *Catalog) error {
		if namespace == "" {
			return ErrEmptyNamespace
		}
		c.namespace = namespace
		return nil
	}
}

// WithFailureHandler sets a function called for every document that could not be loaded.
func WithFailureHandler(handler func(*LoadError)) Option {
	return func(c *Catalog) error {
		c.failureHandler = handler
		return nil
	}
}

// WithLogger sets the logger used to report load failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) error {
		if log != nil {
			c.log = log
		}
		return nil
	}
}

// WithDocument registers an already parsed document, skipping the file lookup for lang.
// Useful for tests and for callers that build documents in memory.
func WithDocument(lang string, doc *Tree) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if doc != nil {
			c.documents[lang] = doc
		}
		return nil
	}
}

// Languages returns the configured languages in output order.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.languages)
}

// ReferenceLanguage returns the language whose document shape drives the output.
func (c *Catalog) ReferenceLanguage() string {
	return c.reference
}

// Document returns the document for lang.
// Languages that failed to load yield an empty tree.
func (c *Catalog) Document(lang string) *Tree {
	if doc, ok := c.documents[lang]; ok {
		return doc
	}
	return NewTree()
}

// Reference returns the reference language document.
func (c *Catalog) Reference() *Tree {
	return c.Document(c.reference)
}

// Failures returns the load failures recorded while building the catalog.
func (c *Catalog) Failures() []*LoadError {
	return slices.Clone(c.failures)
}

// Localize collects the string at path from every configured language.
// Missing keys and non-string values resolve to an empty string.
func (c *Catalog) Localize(path KeyPath) LocalizedValue {
	value := make(LocalizedValue, 0, len(c.languages))
	for _, lang := range c.languages {
		value = append(value, Translation{
			Lang: lang,
			Text: c.documents[lang].String(path),
		})
	}
	return value
}
