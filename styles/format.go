// Package styles implements the style picker format model of the editor:
// the built-in format catalogue, normalization of user supplied format
// trees and naming of custom formats that have to be registered with the
// formatting engine before the menu can apply them.
package styles

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format is a single entry of a style menu tree. Exactly one of the
// concrete types below implements it; the set is closed.
type Format interface {
	isFormat()
}

// Inline applies an inline HTML element or style rule to the selection.
type Inline struct {
	Title  string
	Icon   string
	Tag    string // inline element name, e.g. "span" or "em"
	Styles string // optional CSS declaration block applied by the rule
}

// Block applies a block level HTML element or style rule.
type Block struct {
	Title  string
	Icon   string
	Tag    string // block element name, e.g. "h1" or "blockquote"
	Styles string
}

// SelectorStyle applies style rules to elements matched by a CSS selector.
type SelectorStyle struct {
	Title    string
	Icon     string
	Selector string
	Styles   string
}

// Reference points at a format already known to the formatting engine,
// either built-in or registered as a custom format.
type Reference struct {
	Title string
	Icon  string
	Name  string
}

// Separator is a menu divider with no formatting content.
type Separator struct{}

// Group is a named submenu of formats. Groups may nest without limit.
type Group struct {
	Title string
	Items []Format
}

func (Inline) isFormat()        {}
func (Block) isFormat()         {}
func (SelectorStyle) isFormat() {}
func (Reference) isFormat()     {}
func (Separator) isFormat()     {}
func (Group) isFormat()         {}

// CustomFormat pairs a generated format name with the definition it was
// derived from. Entries live only between one Resolve pass and the
// registration against the formatting engine.
type CustomFormat struct {
	Name string
	Def  Format
}

var lower = cases.Lower(language.Und)

// CustomName derives the engine format name for a user defined format.
// The title is lowercased verbatim - spaces and punctuation survive, so
// "Big Red" becomes "custom-big red". Menus never show these names.
func CustomName(title string) string {
	return "custom-" + lower.String(title)
}
