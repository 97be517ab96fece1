// Package css parses the small CSS subset carried by style format
// definitions: bare declaration blocks and simple selectors.
package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses declaration blocks and selectors of style format definitions.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css")}
}

// ParseDeclarations parses a bare declaration block such as
// "color: red; font-weight: bold" into ordered declarations.
// Parsing is permissive - anything that cannot be understood is reported
// as a warning and skipped, never as an error.
func (p *Parser) ParseDeclarations(text string) ([]Declaration, []string) {
	var (
		decls    []Declaration
		warnings []string
	)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	input := parse.NewInput(strings.NewReader(text))
	parser := css.NewParser(input, true)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return decls, warnings

		case css.DeclarationGrammar:
			prop := strings.ToLower(string(data))
			raw := rawValue(parser.Values())
			if raw == "" {
				warnings = append(warnings, "empty value for property: "+prop)
				continue
			}
			decls = append(decls, Declaration{Property: prop, Value: raw})

		case css.CustomPropertyGrammar:
			warnings = append(warnings, "custom property not supported: "+string(data))

		case css.CommentGrammar:
			// comments are legal in declaration blocks, nothing to keep

		default:
			// stray tokens in a declaration block
			warnings = append(warnings, "unexpected content: "+string(data))
		}
	}
}

// ParseSelector parses a simple selector (element, .class or element.class).
// Combinators, attribute selectors and pseudo elements are not meaningful for
// style formats and are reported as warnings, leaving only Raw populated.
func (p *Parser) ParseSelector(text string) (Selector, []string) {
	text = strings.TrimSpace(text)
	sel := Selector{Raw: text}

	var warnings []string
	switch {
	case text == "":
		return sel, nil
	case strings.ContainsAny(text, "+~>"):
		warnings = append(warnings, "unsupported combinator selector: "+text)
		p.log.Debug("Skipping combinator selector", zap.String("selector", text))
		return sel, warnings
	case strings.Contains(text, "["):
		warnings = append(warnings, "unsupported attribute selector: "+text)
		p.log.Debug("Skipping attribute selector", zap.String("selector", text))
		return sel, warnings
	case strings.Contains(text, ":"):
		warnings = append(warnings, "unsupported pseudo selector: "+text)
		p.log.Debug("Skipping pseudo selector", zap.String("selector", text))
		return sel, warnings
	case strings.ContainsAny(text, " \t\n,"):
		warnings = append(warnings, "unsupported compound selector: "+text)
		p.log.Debug("Skipping compound selector", zap.String("selector", text))
		return sel, warnings
	}

	if element, class, found := strings.Cut(text, "."); found {
		sel.Element = element
		sel.Class = class
	} else {
		sel.Element = text
	}
	return sel, warnings
}

// rawValue joins declaration value tokens back into a normalized string,
// collapsing whitespace runs into single spaces.
func rawValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
