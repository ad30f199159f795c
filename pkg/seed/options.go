package seed

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/seedgen/pkg/i18n"
)

// DefaultSections are the top-level keys extracted when no sections are configured.
var DefaultSections = []string{
	"common",
	"app",
	"portfolio",
	"stats",
	"projects_preview",
	"contact_page",
	"slogan_generator",
}

const (
	DefaultVariable    = "ADDITIONAL_SITE_CONTENT"
	DefaultMergeTarget = "SEED_SITE_CONTENT"
	DefaultHeader      = "Generated SEED DATA - Add to SeedData.tsx"
	DefaultIndent      = "    "
)

// Option configures the Emitter.
type Option func(*Emitter) error

// WithSections sets the top-level sections to extract, in output order.
func WithSections(sections ...string) Option {
	return func(e *Emitter) error {
		if len(sections) == 0 {
			return nil
		}
		seen := make(map[string]bool, len(sections))
		for _, s := range sections {
			if s == "" {
				return ErrEmptySection
			}
			if seen[s] {
				return fmt.Errorf("%w: %q", ErrDuplicateSection, s)
			}
			seen[s] = true
		}
		e.sections = slices.Clone(sections)
		return nil
	}
}

// WithVariable sets the name of the generated constant.
// Default: ADDITIONAL_SITE_CONTENT.
func WithVariable(name string) Option {
	return func(e *Emitter) error {
		if !isIdentifier(name) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
		e.variable = name
		return nil
	}
}

// WithMergeTarget sets the existing constant named in the trailing merge hint.
// An empty name drops the hint.
// Default: SEED_SITE_CONTENT.
func WithMergeTarget(name string) Option {
	return func(e *Emitter) error {
		if name != "" && !isIdentifier(name) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
		e.mergeTarget = name
		return nil
	}
}

// WithHeader sets the leading comment line. An empty header drops it.
func WithHeader(header string) Option {
	return func(e *Emitter) error {
		e.header = strings.ReplaceAll(header, "\n", " ")
		return nil
	}
}

// WithIndent sets the whitespace used per nesting level.
// Only spaces and tabs are accepted so every entry stays on its own line.
// Default: four spaces.
func WithIndent(unit string) Option {
	return func(e *Emitter) error {
		if unit == "" || strings.Trim(unit, " \t") != "" {
			return ErrInvalidIndent
		}
		e.indent = unit
		return nil
	}
}

// WithMissingHandler sets a function called for every emitted leaf that has
// no text in a non-reference language.
func WithMissingHandler(handler func(lang string, path i18n.KeyPath)) Option {
	return func(e *Emitter) error {
		e.missingHandler = handler
		return nil
	}
}
