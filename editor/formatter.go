package editor

import (
	"go.uber.org/zap"

	"stylekit/css"
	"stylekit/styles"
)

// Formatter is the named format registry of the formatting engine.
// It preserves registration order and is mutated only through Register,
// so redundant registration across menu rebuilds stays idempotent.
type Formatter struct {
	formats map[string]styles.Format
	order   []string

	parser *css.Parser
	log    *zap.Logger
}

func newFormatter(log *zap.Logger) *Formatter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Formatter{
		formats: make(map[string]styles.Format),
		parser:  css.NewParser(log),
		log:     log.Named("formatter"),
	}
}

// Has reports whether a format is registered under name.
func (fr *Formatter) Has(name string) bool {
	_, ok := fr.formats[name]
	return ok
}

// Register adds a format definition under name. Re-registering an existing
// name replaces the definition but keeps its original position in Names.
// Definition problems are advisory only - they are logged, never fatal.
func (fr *Formatter) Register(name string, def styles.Format) {
	fr.validate(name, def)
	if _, exists := fr.formats[name]; !exists {
		fr.order = append(fr.order, name)
	}
	fr.formats[name] = def
	fr.log.Debug("Registered format", zap.String("name", name))
}

// Get returns a format definition by name.
func (fr *Formatter) Get(name string) (styles.Format, bool) {
	def, ok := fr.formats[name]
	return def, ok
}

// Names returns all registered format names in registration order.
func (fr *Formatter) Names() []string {
	return fr.order
}

func (fr *Formatter) validate(name string, def styles.Format) {
	switch v := def.(type) {
	case styles.Inline:
		fr.checkStyles(name, v.Styles)
	case styles.Block:
		fr.checkStyles(name, v.Styles)
	case styles.SelectorStyle:
		if _, warnings := fr.parser.ParseSelector(v.Selector); len(warnings) > 0 {
			fr.log.Warn("Format selector not fully supported",
				zap.String("name", name), zap.Strings("warnings", warnings))
		}
		fr.checkStyles(name, v.Styles)
	}
}

func (fr *Formatter) checkStyles(name, block string) {
	if block == "" {
		return
	}
	if _, warnings := fr.parser.ParseDeclarations(block); len(warnings) > 0 {
		fr.log.Warn("Format styles not fully understood",
			zap.String("name", name), zap.Strings("warnings", warnings))
	}
}
