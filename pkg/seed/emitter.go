package seed

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrymomot/seedgen/pkg/i18n"
)

// Emitter renders selected sections of a catalog as an object literal.
// It holds no mutable state and can be reused.
type Emitter struct {
	catalog        *i18n.Catalog
	missingHandler func(lang string, path i18n.KeyPath)

	variable    string
	mergeTarget string
	header      string
	indent      string
	sections    []string
}

// Stats summarizes a render.
type Stats struct {
	// Missing counts leaves without text per non-reference language.
	Missing map[string]int
	// Leaves is the number of localized entries emitted.
	Leaves int
}

// New creates an Emitter for catalog.
func New(catalog *i18n.Catalog, opts ...Option) (*Emitter, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	e := &Emitter{
		catalog:     catalog,
		variable:    DefaultVariable,
		mergeTarget: DefaultMergeTarget,
		header:      DefaultHeader,
		indent:      DefaultIndent,
		sections:    slices.Clone(DefaultSections),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return e, nil
}

// Sections returns the configured sections in output order.
func (e *Emitter) Sections() []string {
	return slices.Clone(e.sections)
}

// Emit writes the literal to w.
// Only write failures are reported; missing or mistyped data is omitted from the output.
func (e *Emitter) Emit(w io.Writer) (Stats, error) {
	out, stats := e.Render()
	if _, err := io.WriteString(w, out); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return stats, nil
}

// Render returns the literal as a string.
//
// Every configured section gets a block, even when the reference document
// lacks it. Nested groups without any string leaf are left out.
func (e *Emitter) Render() (string, Stats) {
	r := &renderer{
		emitter: e,
		stats:   Stats{Missing: make(map[string]int)},
	}
	reference := e.catalog.Reference()

	var b strings.Builder
	if e.header != "" {
		fmt.Fprintf(&b, "// %s\n\n", e.header)
	}
	fmt.Fprintf(&b, "const %s = {\n", e.variable)

	for _, section := range e.sections {
		fmt.Fprintf(&b, "%s%s: {\n", e.indent, formatKey(section))
		path := i18n.KeyPath{section}
		if tree := reference.Subtree(path); tree != nil {
			if body := r.group(tree, path, 1); body != "" {
				b.WriteString(body)
				b.WriteByte('\n')
			}
		}
		fmt.Fprintf(&b, "%s},\n", e.indent)
	}

	b.WriteString("};\n")

	if e.mergeTarget != "" {
		fmt.Fprintf(&b, "\n\n// To merge with existing %s:\n", e.mergeTarget)
		fmt.Fprintf(&b, "// const %[1]s = { ...%[1]s, ...%[2]s };\n", e.mergeTarget, e.variable)
	}

	return b.String(), r.stats
}

type renderer struct {
	emitter *Emitter
	stats   Stats
}

// group renders the entries of node, one per line, without a trailing newline.
// node is the already resolved reference subtree at path.
func (r *renderer) group(node *i18n.Tree, path i18n.KeyPath, depth int) string {
	indent := strings.Repeat(r.emitter.indent, depth+1)

	lines := make([]string, 0, node.Len())
	for _, entry := range node.Entries() {
		key := formatKey(entry.Key)

		switch v := entry.Value.(type) {
		case *i18n.Tree:
			nested := r.group(v, path.Child(entry.Key), depth+1)
			if nested == "" {
				continue
			}
			lines = append(lines, indent+key+": {\n"+nested+"\n"+indent+"},")
		case string:
			leafPath := path.Child(entry.Key)
			value := r.emitter.catalog.Localize(leafPath)
			r.track(leafPath, value)
			lines = append(lines, indent+key+": { "+formatLocalized(value)+" },")
		}
	}

	return strings.Join(lines, "\n")
}

func (r *renderer) track(path i18n.KeyPath, value i18n.LocalizedValue) {
	r.stats.Leaves++

	reference := r.emitter.catalog.ReferenceLanguage()
	for _, lang := range value.Missing() {
		if lang == reference {
			continue
		}
		r.stats.Missing[lang]++
		if r.emitter.missingHandler != nil {
			r.emitter.missingHandler(lang, path)
		}
	}
}
