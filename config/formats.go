package config

import "stylekit/styles"

// FormatNode is a single entry of the style_formats configuration tree as
// it arrives from YAML - an untyped payload where the populated fields
// decide what the node is. See ToFormat for the classification rules.
type FormatNode struct {
	Title     string       `yaml:"title,omitempty"`
	Icon      string       `yaml:"icon,omitempty"`
	Inline    string       `yaml:"inline,omitempty"`
	Block     string       `yaml:"block,omitempty"`
	Selector  string       `yaml:"selector,omitempty"`
	Styles    string       `yaml:"styles,omitempty"`
	Format    string       `yaml:"format,omitempty"`
	Separator bool         `yaml:"separator,omitempty"`
	Items     []FormatNode `yaml:"items,omitempty"`
}

// ToFormat classifies the node by which shape-defining fields it carries.
// The checks are ordered: a child list wins over any leaf shape, then
// inline, block and selector in that order. Nodes matching none of those
// become separators or references - a node carrying nothing but a title
// still passes through as a reference with an empty format name, fields
// are not validated here.
func (n FormatNode) ToFormat() styles.Format {
	switch {
	case n.Items != nil:
		return styles.Group{Title: n.Title, Items: ToFormats(n.Items)}
	case n.Inline != "":
		return styles.Inline{Title: n.Title, Icon: n.Icon, Tag: n.Inline, Styles: n.Styles}
	case n.Block != "":
		return styles.Block{Title: n.Title, Icon: n.Icon, Tag: n.Block, Styles: n.Styles}
	case n.Selector != "":
		return styles.SelectorStyle{Title: n.Title, Icon: n.Icon, Selector: n.Selector, Styles: n.Styles}
	case n.Separator:
		return styles.Separator{}
	default:
		return styles.Reference{Title: n.Title, Icon: n.Icon, Name: n.Format}
	}
}

// ToFormats maps a configuration node list onto the typed format tree,
// preserving order. nil stays nil so "not configured" survives the trip.
func ToFormats(nodes []FormatNode) []styles.Format {
	if nodes == nil {
		return nil
	}
	formats := make([]styles.Format, 0, len(nodes))
	for _, n := range nodes {
		formats = append(formats, n.ToFormat())
	}
	return formats
}
