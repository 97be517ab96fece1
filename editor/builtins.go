package editor

import "stylekit/styles"

// registerBuiltins seeds a freshly constructed formatting engine with the
// formats it knows without registration. The default catalogue references
// these by name.
func registerBuiltins(fr *Formatter) {
	builtins := []struct {
		name string
		def  styles.Format
	}{
		{"h1", styles.Block{Title: "Heading 1", Tag: "h1"}},
		{"h2", styles.Block{Title: "Heading 2", Tag: "h2"}},
		{"h3", styles.Block{Title: "Heading 3", Tag: "h3"}},
		{"h4", styles.Block{Title: "Heading 4", Tag: "h4"}},
		{"h5", styles.Block{Title: "Heading 5", Tag: "h5"}},
		{"h6", styles.Block{Title: "Heading 6", Tag: "h6"}},

		{"bold", styles.Inline{Title: "Bold", Tag: "strong"}},
		{"italic", styles.Inline{Title: "Italic", Tag: "em"}},
		{"underline", styles.Inline{Title: "Underline", Tag: "span", Styles: "text-decoration: underline"}},
		{"strikethrough", styles.Inline{Title: "Strikethrough", Tag: "s"}},
		{"superscript", styles.Inline{Title: "Superscript", Tag: "sup"}},
		{"subscript", styles.Inline{Title: "Subscript", Tag: "sub"}},
		{"code", styles.Inline{Title: "Code", Tag: "code"}},

		{"p", styles.Block{Title: "Paragraph", Tag: "p"}},
		{"blockquote", styles.Block{Title: "Blockquote", Tag: "blockquote"}},
		{"div", styles.Block{Title: "Div", Tag: "div"}},
		{"pre", styles.Block{Title: "Pre", Tag: "pre"}},

		{"alignleft", styles.SelectorStyle{Title: "Left", Selector: "p", Styles: "text-align: left"}},
		{"aligncenter", styles.SelectorStyle{Title: "Center", Selector: "p", Styles: "text-align: center"}},
		{"alignright", styles.SelectorStyle{Title: "Right", Selector: "p", Styles: "text-align: right"}},
		{"alignjustify", styles.SelectorStyle{Title: "Justify", Selector: "p", Styles: "text-align: justify"}},
	}
	for _, b := range builtins {
		fr.Register(b.name, b.def)
	}
}
